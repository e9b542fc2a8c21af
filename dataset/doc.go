// Package dataset implements the Handler: the orchestrator that turns a
// heterogeneous raw table into one numeric matrix and back, and validates
// proposed record changes against per-feature and cross-feature rules.
//
// 🚀 What does the Handler do?
//
//	Built once from an ordered feature list, an optional target feature and
//	a constraint set, a Handler exposes:
//		• Encode / EncodeRow / EncodeFrame — raw rows → float64 matrix
//		• EncodeTarget / EncodeJoint       — target column handling
//		• Decode / DecodeMatrix            — matrix → labeled frame / numbers
//		• DecodeTarget                     — target inverse
//		• EncodingWidth                    — structural width bookkeeping
//		• AllowedChanges                   — before/after row validation
//
// Column bookkeeping:
//
//	The encoded column order always matches the feature order. Each feature
//	owns a contiguous block of EncodingWidth(oneHot) columns; the Handler
//	preallocates the full matrix from the width sum and fills blocks at a
//	running cursor, so encode and decode agree on slice boundaries by
//	construction.
//
// Change validation (AllowedChanges) is a strict AND over three layers in
// increasing-cost order: per-feature mutability/monotonicity, causal
// increase pairs (if the cause increased, the effect must have too;
// the rule is one-directional), and greater-than ordering pairs over the
// after-row. One violation anywhere vetoes the transition.
//
// A Handler is immutable after New; all methods are pure and safe for
// concurrent use.
package dataset
