package feature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Categorical is a feature over a finite declared value list. The position
// of a value in the list is its code.
//
// Two encoded layouts exist:
//
//   - one-hot: K columns with a single 1 at the code position;
//   - plain:   one column holding −(code+1), so categorical cells occupy
//     the negative integers and never collide with normalized
//     contiguous cells in a mixed matrix.
//
// With Options.Ordered the list order is a ranking (first value lowest),
// enabling GreaterThan and monotonicity.
type Categorical struct {
	name   string
	values []Value
	index  map[Value]int // canonical key → code
	opts   Options
}

// NewCategorical declares a categorical feature over at least two distinct
// values, in rank order when opts.Ordered is set.
//
// Returns ErrEmptyName, ErrBadDomain (too few or duplicate values), or
// ErrBadMonotone (monotonicity without Ordered).
func NewCategorical(name string, values []Value, opts Options) (*Categorical, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("categorical %q: need at least 2 values, got %d: %w", name, len(values), ErrBadDomain)
	}
	if opts.Monotone != MonotoneNone && !opts.Ordered {
		return nil, fmt.Errorf("categorical %q: %w", name, ErrBadMonotone)
	}
	index := make(map[Value]int, len(values))
	for i, v := range values {
		k := key(v)
		if _, dup := index[k]; dup {
			return nil, fmt.Errorf("categorical %q: duplicate value %v: %w", name, v, ErrBadDomain)
		}
		index[k] = i
	}

	return &Categorical{
		name:   name,
		values: append([]Value(nil), values...),
		index:  index,
		opts:   opts,
	}, nil
}

// Name returns the feature name.
func (c *Categorical) Name() string { return c.name }

// Kind returns KindCategorical.
func (c *Categorical) Kind() Kind { return KindCategorical }

// Values returns a copy of the declared value list, in code order.
func (c *Categorical) Values() []Value { return append([]Value(nil), c.values...) }

// EncodingWidth is the category count under one-hot, 1 otherwise.
func (c *Categorical) EncodingWidth(oneHot bool) int {
	if oneHot {
		return len(c.values)
	}

	return 1
}

// Encode maps raw values onto a one-hot block or a signed-code column.
// normalize is a no-op for categorical codes.
func (c *Categorical) Encode(values []Value, _ bool, oneHot bool) (*mat.Dense, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("categorical %q: %w", c.name, ErrNoValues)
	}
	out := mat.NewDense(len(values), c.EncodingWidth(oneHot), nil)
	for i, v := range values {
		code, err := c.code(v)
		if err != nil {
			return nil, err
		}
		if oneHot {
			out.Set(i, code, 1)
		} else {
			out.Set(i, 0, -float64(code+1))
		}
	}

	return out, nil
}

// Decode inverts Encode; the block width selects the layout. One-hot rows
// decode by argmax, plain cells by the signed-code mapping.
func (c *Categorical) Decode(enc mat.Matrix, _ bool) ([]Value, error) {
	r, cols := enc.Dims()
	out := make([]Value, r)
	switch cols {
	case len(c.values):
		for i := 0; i < r; i++ {
			out[i] = c.values[argmaxRow(enc, i, cols)]
		}
	case 1:
		for i := 0; i < r; i++ {
			code := int(math.Round(-enc.At(i, 0))) - 1
			if code < 0 || code >= len(c.values) {
				return nil, fmt.Errorf("categorical %q: encoded code %v: %w", c.name, enc.At(i, 0), ErrUnknownCategory)
			}
			out[i] = c.values[code]
		}
	default:
		return nil, fmt.Errorf("categorical %q: got %d columns, want 1 or %d: %w", c.name, cols, len(c.values), ErrBadShape)
	}

	return out, nil
}

// AllowedChange enforces immutability, and monotonicity over declared ranks.
func (c *Categorical) AllowedChange(before, after Value) (bool, error) {
	pre, err := c.code(before)
	if err != nil {
		return false, err
	}
	pos, err := c.code(after)
	if err != nil {
		return false, err
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

// GreaterThan returns every declared value ranked strictly above v.
// Requires Options.Ordered; unordered features return ErrUnordered.
func (c *Categorical) GreaterThan(v Value) ([]Value, error) {
	if !c.opts.Ordered {
		return nil, fmt.Errorf("categorical %q: %w", c.name, ErrUnordered)
	}
	code, err := c.code(v)
	if err != nil {
		return nil, err
	}

	return append([]Value(nil), c.values[code+1:]...), nil
}

func (c *Categorical) code(v Value) (int, error) {
	code, ok := c.index[key(v)]
	if !ok {
		return 0, fmt.Errorf("categorical %q: value %v: %w", c.name, v, ErrUnknownCategory)
	}

	return code, nil
}

// argmaxRow returns the column index of the largest cell in row i.
func argmaxRow(m mat.Matrix, i, cols int) int {
	best, bestAt := m.At(i, 0), 0
	for j := 1; j < cols; j++ {
		if m.At(i, j) > best {
			best, bestAt = m.At(i, j), j
		}
	}

	return bestAt
}
