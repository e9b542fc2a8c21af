package feature

import "gonum.org/v1/gonum/mat"

// Feature is the per-column contract consumed by dataset.Handler.
//
// A Feature is immutable after construction; every method is a pure
// function of the declared domain plus its arguments, so one Feature may
// serve any number of concurrent callers.
type Feature interface {
	// Name identifies the feature; it labels decoded columns and resolves
	// constraint pairs.
	Name() string

	// Kind reports the feature variant.
	Kind() Kind

	// EncodingWidth reports the number of encoded columns. Structural:
	// it depends on the one-hot flag only, never on data.
	EncodingWidth(oneHot bool) int

	// Encode maps raw values onto a len(values)×EncodingWidth(oneHot)
	// numeric block. Encoding with normalize=false, oneHot=false yields the
	// raw comparable form used by constraint validation.
	Encode(values []Value, normalize, oneHot bool) (*mat.Dense, error)

	// Decode inverts Encode under matching flags. The block width selects
	// the layout: EncodingWidth(true) columns decode as one-hot,
	// EncodingWidth(false) columns decode as plain codes/numbers.
	Decode(enc mat.Matrix, denormalize bool) ([]Value, error)

	// AllowedChange reports whether the before→after transition on this
	// single feature is permitted under its immutability and monotonicity
	// policy. Errors indicate out-of-domain values, not a rejection.
	AllowedChange(before, after Value) (bool, error)

	// GreaterThan returns the declared values strictly greater than v.
	// Defined for ordered categorical features; others return ErrUnordered.
	GreaterThan(v Value) ([]Value, error)
}

// AsFloat converts a raw numeric Value to float64.
// Non-numeric values return ErrNonNumeric.
func AsFloat(v Value) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, ErrNonNumeric
	}
}

// Equal compares two raw values: numerics by magnitude (int(3) equals
// float64(3)), everything else by direct comparison.
func Equal(a, b Value) bool {
	fa, errA := AsFloat(a)
	fb, errB := AsFloat(b)
	if errA == nil && errB == nil {
		return fa == fb
	}
	if errA != nil && errB != nil {
		return a == b
	}

	return false
}

// key canonicalizes a value for domain lookups, so that numerically equal
// values of different Go types hit the same map entry.
func key(v Value) Value {
	if f, err := AsFloat(v); err == nil {
		return f
	}

	return v
}
