package feature

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Binary is a two-valued feature encoded as a single {0, 1} column.
// The positive value ranks above the negative one for monotonicity.
// Normalization and one-hot expansion are no-ops: the width is always 1.
type Binary struct {
	name     string
	negative Value // encodes to 0
	positive Value // encodes to 1
	opts     Options
}

// NewBinary declares a binary feature over exactly two distinct values.
//
// Returns ErrEmptyName on a missing name and ErrBadDomain when the two
// values coincide.
func NewBinary(name string, negative, positive Value, opts Options) (*Binary, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if key(negative) == key(positive) {
		return nil, fmt.Errorf("binary %q: values must differ: %w", name, ErrBadDomain)
	}

	return &Binary{name: name, negative: negative, positive: positive, opts: opts}, nil
}

// Name returns the feature name.
func (b *Binary) Name() string { return b.name }

// Kind returns KindBinary.
func (b *Binary) Kind() Kind { return KindBinary }

// EncodingWidth is always 1; binary features do not expand under one-hot.
func (b *Binary) EncodingWidth(bool) int { return 1 }

// Encode maps each value onto 0 (negative) or 1 (positive).
// Both flags are no-ops. Unknown values return ErrUnknownCategory.
func (b *Binary) Encode(values []Value, _ bool, _ bool) (*mat.Dense, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("binary %q: %w", b.name, ErrNoValues)
	}
	out := mat.NewDense(len(values), 1, nil)
	for i, v := range values {
		code, err := b.code(v)
		if err != nil {
			return nil, err
		}
		out.Set(i, 0, float64(code))
	}

	return out, nil
}

// Decode maps each cell back onto the declared values: ≥ 0.5 decodes as the
// positive value, anything below as the negative one.
func (b *Binary) Decode(enc mat.Matrix, _ bool) ([]Value, error) {
	r, c := enc.Dims()
	if c != 1 {
		return nil, fmt.Errorf("binary %q: got %d columns, want 1: %w", b.name, c, ErrBadShape)
	}
	out := make([]Value, r)
	for i := 0; i < r; i++ {
		if enc.At(i, 0) >= 0.5 {
			out[i] = b.positive
		} else {
			out[i] = b.negative
		}
	}

	return out, nil
}

// AllowedChange enforces immutability and monotonicity, with the positive
// value ranking above the negative one.
func (b *Binary) AllowedChange(before, after Value) (bool, error) {
	pre, err := b.code(before)
	if err != nil {
		return false, err
	}
	pos, err := b.code(after)
	if err != nil {
		return false, err
	}
	if pre == pos {
		return true, nil
	}
	if b.opts.Immutable {
		return false, nil
	}
	switch b.opts.Monotone {
	case MonotoneIncreasing:
		return pos > pre, nil
	case MonotoneDecreasing:
		return pos < pre, nil
	default:
		return true, nil
	}
}

// GreaterThan is unsupported on binary features.
func (b *Binary) GreaterThan(Value) ([]Value, error) {
	return nil, fmt.Errorf("binary %q: %w", b.name, ErrUnordered)
}

func (b *Binary) code(v Value) (int, error) {
	switch key(v) {
	case key(b.negative):
		return 0, nil
	case key(b.positive):
		return 1, nil
	default:
		return 0, fmt.Errorf("binary %q: value %v: %w", b.name, v, ErrUnknownCategory)
	}
}
