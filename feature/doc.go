// Package feature defines the per-column contract consumed by
// dataset.Handler, and the three concrete feature kinds.
//
// 🚀 What is a Feature?
//
//	A single named column abstraction with:
//		• a declared Kind (Binary / Categorical / Contiguous)
//		• an encoding width that depends only on the one-hot flag
//		• encode/decode between raw values and numeric blocks
//		• mutability and monotonicity rules (AllowedChange)
//		• an optional declared order over values (GreaterThan)
//
// Encoding conventions:
//
//   - Binary      → one column of {0, 1}; flags are no-ops.
//   - Categorical → one-hot: K columns with a single 1;
//     plain: one column of negative codes −1, −2, … so that
//     categorical cells stay disjoint from normalized
//     contiguous cells in a mixed matrix.
//   - Contiguous  → one column; normalize maps [lo,hi] onto [0,1].
//
// Raw values are plain Go scalars (strings, bools, ints, floats). Numeric
// values are compared by magnitude, so a declared category int(3) matches
// an incoming float64(3). Out-of-domain values are errors, never coerced.
//
// All errors are package sentinels (errors.Is-matchable); see errors.go.
package feature
