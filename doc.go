// Package featmix converts heterogeneous tabular data — mixed binary,
// categorical and contiguous columns — into a single numeric matrix and
// back, and validates whether a change between two records of the same
// schema is permitted under domain rules.
//
// 🚀 What is featmix?
//
//	A small, synchronous, in-memory library that brings together:
//		• Feature codecs: binary, categorical (one-hot or signed codes),
//		  contiguous ([0,1] normalization) — feature/
//		• A labeled column table used on the decode path — frame/
//		• The Handler: matrix encode/decode with exact column bookkeeping,
//		  target handling, and change validation — dataset/
//		• Declarative YAML construction of a Handler — schema/
//
// ✨ Why choose featmix?
//
//   - Exact round-trips – decode(encode(X)) reproduces X for every flag combination
//   - Strict configuration – misconfigured schemas or constraints fail fast,
//     never silently corrupt encoded data
//   - Concurrency-safe – a Handler is immutable after construction; every
//     method is a pure function of its arguments
//
// Typical flow:
//
//	raw rows ──Encode──▶ float64 matrix ──(your optimizer / auditor)──▶
//	candidate matrix ──Decode──▶ raw rows ──AllowedChanges──▶ verdict
//
// See dataset/example_test.go for an end-to-end walkthrough.
package featmix
