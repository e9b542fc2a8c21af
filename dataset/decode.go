package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/veltran/featmix/feature"
	"github.com/veltran/featmix/frame"
)

// Decode reconstructs the original table from an encoded matrix as a
// labeled frame with feature-named columns.
//
// encodedOneHot must match the flag the matrix was encoded with: it fixes
// each feature's width and therefore every slice boundary. A running
// cursor slices [cur, cur+width) per feature, in order, and each slice is
// handed to the feature's own Decode.
//
// A nil or zero-row matrix short-circuits to a zero-row frame carrying the
// correct column labels, without invoking any feature.
func (h *Handler) Decode(enc mat.Matrix, denormalize, encodedOneHot bool) (*frame.Frame, error) {
	names := h.FeatureNames()
	if enc == nil {
		return frame.New(names, make([][]feature.Value, len(names)))
	}
	r, c := enc.Dims()
	if r == 0 {
		return frame.New(names, make([][]feature.Value, len(names)))
	}
	if want := h.EncodingWidth(encodedOneHot); c != want {
		return nil, fmt.Errorf("matrix has %d columns, want %d: %w", c, want, ErrEncodedWidth)
	}

	d := asDense(enc)
	cols := make([][]feature.Value, len(h.features))
	cur := 0
	for i, f := range h.features {
		w := f.EncodingWidth(encodedOneHot)
		vals, err := f.Decode(d.Slice(0, r, cur, cur+w), denormalize)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", f.Name(), err)
		}
		cols[i] = vals
		cur += w
	}

	return frame.New(names, cols)
}

// DecodeMatrix reconstructs the original table as a numeric matrix of
// shape rows × NumFeatures. Every decoded cell must be numeric; string
// categories make the numeric form unrepresentable (ErrNonNumeric), so
// use Decode for those.
//
// A nil or zero-row input returns an empty matrix: a dense matrix cannot
// carry zero rows with labeled columns, so the labeled zero-row case is
// Decode's.
func (h *Handler) DecodeMatrix(enc mat.Matrix, denormalize, encodedOneHot bool) (*mat.Dense, error) {
	if enc == nil {
		return &mat.Dense{}, nil
	}
	if r, _ := enc.Dims(); r == 0 {
		return &mat.Dense{}, nil
	}

	f, err := h.Decode(enc, denormalize, encodedOneHot)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(f.NumRows(), f.NumCols(), nil)
	for j := 0; j < f.NumCols(); j++ {
		col, err := f.Col(j)
		if err != nil {
			return nil, err
		}
		for i, v := range col {
			x, err := feature.AsFloat(v)
			if err != nil {
				return nil, fmt.Errorf("feature %q: decoded value %v: %w", h.features[j].Name(), v, err)
			}
			out.Set(i, j, x)
		}
	}

	return out, nil
}

// DecodeTarget reconstructs target values, delegating entirely to the
// target feature. No slicing: there is exactly one target.
func (h *Handler) DecodeTarget(enc mat.Matrix, denormalize bool) ([]feature.Value, error) {
	if h.target == nil {
		return nil, ErrNoTarget
	}
	vals, err := h.target.Decode(enc, denormalize)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", h.target.Name(), err)
	}

	return vals, nil
}

// asDense returns enc as a *mat.Dense, copying only when the caller passed
// some other Matrix implementation.
func asDense(enc mat.Matrix) *mat.Dense {
	if d, ok := enc.(*mat.Dense); ok {
		return d
	}

	return mat.DenseCopyOf(enc)
}
