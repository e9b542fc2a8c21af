// Package feature core types: raw values, kinds, monotonicity, options.
package feature

// Value is a raw table cell: a plain comparable Go scalar
// (string, bool, integer or float).
type Value = any

// Kind tags the three supported feature variants. The dataset package
// switches on Kind exactly once, inside causal-constraint validation,
// and fails hard on anything it does not recognize.
type Kind int

const (
	// KindBinary is a two-valued feature encoded as a single {0,1} column.
	KindBinary Kind = iota
	// KindCategorical is a finite declared value set, one-hot or code encoded.
	KindCategorical
	// KindContiguous is a bounded numeric feature, optionally normalized to [0,1].
	KindContiguous
)

// String returns the lower-case kind name used in errors and schemas.
func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindCategorical:
		return "categorical"
	case KindContiguous:
		return "contiguous"
	default:
		return "unknown"
	}
}

// Monotonicity restricts the permissible direction of a value change.
type Monotonicity int

const (
	// MonotoneNone places no directional restriction (default).
	MonotoneNone Monotonicity = iota
	// MonotoneIncreasing permits only equal-or-greater after-values.
	MonotoneIncreasing
	// MonotoneDecreasing permits only equal-or-smaller after-values.
	MonotoneDecreasing
)

// String returns the lower-case monotonicity name.
func (m Monotonicity) String() string {
	switch m {
	case MonotoneNone:
		return "none"
	case MonotoneIncreasing:
		return "increasing"
	case MonotoneDecreasing:
		return "decreasing"
	default:
		return "unknown"
	}
}

// Options tunes mutability and ordering of a single feature.
type Options struct {
	// Immutable rejects every change through AllowedChange.
	Immutable bool
	// Monotone restricts the direction of permitted changes.
	// Requires an ordered domain on categorical features.
	Monotone Monotonicity
	// Ordered declares the categorical value list as ranked
	// (first value lowest). Ignored by binary and contiguous features.
	Ordered bool
}

// DefaultOptions returns the zero policy: mutable, no monotonicity, unordered.
func DefaultOptions() Options {
	return Options{Monotone: MonotoneNone}
}
