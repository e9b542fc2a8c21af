package feature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Contiguous is a numeric feature over a closed interval [lo, hi].
// Normalization maps the interval affinely onto [0, 1]; denormalization is
// its exact inverse. Values outside the declared bounds are scaled with the
// same map: bounds describe the training domain, they are not clamps.
type Contiguous struct {
	name   string
	lo, hi float64
	opts   Options
}

// NewContiguous declares a contiguous feature with bounds lo < hi.
// Non-finite or inverted bounds return ErrBadDomain.
func NewContiguous(name string, lo, hi float64, opts Options) (*Contiguous, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return nil, fmt.Errorf("contiguous %q: bounds [%v, %v]: %w", name, lo, hi, ErrBadDomain)
	}

	return &Contiguous{name: name, lo: lo, hi: hi, opts: opts}, nil
}

// NewContiguousFromValues fits the bounds from observed data, taking the
// minimum and maximum of values. At least two distinct numeric values are
// required, otherwise the fitted interval would be degenerate.
func NewContiguousFromValues(name string, values []Value, opts Options) (*Contiguous, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("contiguous %q: %w", name, ErrNoValues)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		f, err := AsFloat(v)
		if err != nil {
			return nil, fmt.Errorf("contiguous %q: value %v: %w", name, v, err)
		}
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}

	return NewContiguous(name, lo, hi, opts)
}

// Name returns the feature name.
func (c *Contiguous) Name() string { return c.name }

// Kind returns KindContiguous.
func (c *Contiguous) Kind() Kind { return KindContiguous }

// Bounds returns the declared interval.
func (c *Contiguous) Bounds() (lo, hi float64) { return c.lo, c.hi }

// EncodingWidth is always 1.
func (c *Contiguous) EncodingWidth(bool) int { return 1 }

// Encode converts values to float64, normalizing onto [0,1] when requested.
// oneHot is a no-op. Non-numeric values return ErrNonNumeric.
func (c *Contiguous) Encode(values []Value, normalize bool, _ bool) (*mat.Dense, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("contiguous %q: %w", c.name, ErrNoValues)
	}
	out := mat.NewDense(len(values), 1, nil)
	for i, v := range values {
		f, err := AsFloat(v)
		if err != nil {
			return nil, fmt.Errorf("contiguous %q: value %v: %w", c.name, v, err)
		}
		if normalize {
			f = (f - c.lo) / (c.hi - c.lo)
		}
		out.Set(i, 0, f)
	}

	return out, nil
}

// Decode returns the float64 values, inverting normalization when requested.
func (c *Contiguous) Decode(enc mat.Matrix, denormalize bool) ([]Value, error) {
	r, cols := enc.Dims()
	if cols != 1 {
		return nil, fmt.Errorf("contiguous %q: got %d columns, want 1: %w", c.name, cols, ErrBadShape)
	}
	out := make([]Value, r)
	for i := 0; i < r; i++ {
		f := enc.At(i, 0)
		if denormalize {
			f = f*(c.hi-c.lo) + c.lo
		}
		out[i] = f
	}

	return out, nil
}

// AllowedChange enforces immutability and numeric monotonicity.
func (c *Contiguous) AllowedChange(before, after Value) (bool, error) {
	pre, err := AsFloat(before)
	if err != nil {
		return false, fmt.Errorf("contiguous %q: value %v: %w", c.name, before, err)
	}
	pos, err := AsFloat(after)
	if err != nil {
		return false, fmt.Errorf("contiguous %q: value %v: %w", c.name, after, err)
	}
	if pre == pos {
		return true, nil
	}
	if c.opts.Immutable {
		return false, nil
	}
	switch c.opts.Monotone {
	case MonotoneIncreasing:
		return pos > pre, nil
	case MonotoneDecreasing:
		return pos < pre, nil
	default:
		return true, nil
	}
}

// GreaterThan is unsupported: a contiguous domain has no finite value set.
// Constraint validation compares contiguous values numerically instead.
func (c *Contiguous) GreaterThan(Value) ([]Value, error) {
	return nil, fmt.Errorf("contiguous %q: %w", c.name, ErrUnordered)
}
