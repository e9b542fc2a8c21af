package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/veltran/featmix/feature"
	"github.com/veltran/featmix/frame"
)

// Encode turns a raw table (rows × features, in feature order) into one
// float64 matrix of shape rows × EncodingWidth(oneHot).
//
// Per feature, its column is encoded into a rows×width block and copied
// into the preallocated result at a running column cursor, so the output
// layout is the feature order with per-feature widths, the same layout
// Decode slices by.
//
// A row whose length differs from the feature list is ErrColumnCount; the
// table is never truncated or padded.
func (h *Handler) Encode(rows [][]feature.Value, normalize, oneHot bool) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	n := len(h.features)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrColumnCount)
		}
	}

	out := mat.NewDense(len(rows), h.EncodingWidth(oneHot), nil)
	col := make([]feature.Value, len(rows))
	cur := 0
	for fi, f := range h.features {
		for ri := range rows {
			col[ri] = rows[ri][fi]
		}
		block, err := f.Encode(col, normalize, oneHot)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", f.Name(), err)
		}
		w := f.EncodingWidth(oneHot)
		if br, bc := block.Dims(); br != len(rows) || bc != w {
			return nil, fmt.Errorf("feature %q produced %dx%d, want %dx%d: %w",
				f.Name(), br, bc, len(rows), w, ErrEncodedWidth)
		}
		out.Slice(0, len(rows), cur, cur+w).(*mat.Dense).Copy(block)
		cur += w
	}

	return out, nil
}

// EncodeRow is the single-sample convenience path: it promotes the row to a
// one-row table, encodes it, and returns the single resulting row.
func (h *Handler) EncodeRow(row []feature.Value, normalize, oneHot bool) ([]float64, error) {
	enc, err := h.Encode([][]feature.Value{row}, normalize, oneHot)
	if err != nil {
		return nil, err
	}

	return mat.Row(nil, 0, enc), nil
}

// EncodeFrame encodes a labeled frame. The frame's column names must match
// the feature list exactly and in order; encoding never reorders columns.
func (h *Handler) EncodeFrame(f *frame.Frame, normalize, oneHot bool) (*mat.Dense, error) {
	names := f.Names()
	if len(names) != len(h.features) {
		return nil, fmt.Errorf("frame has %d columns, want %d: %w", len(names), len(h.features), ErrColumnCount)
	}
	for i, name := range names {
		if want := h.features[i].Name(); name != want {
			return nil, fmt.Errorf("frame column %d is %q, want %q: %w", i, name, want, ErrColumnName)
		}
	}

	return h.Encode(f.Rows(), normalize, oneHot)
}

// EncodeTarget encodes target values, delegating entirely to the target
// feature. No column splitting: there is exactly one target.
func (h *Handler) EncodeTarget(values []feature.Value, normalize, oneHot bool) (*mat.Dense, error) {
	if h.target == nil {
		return nil, ErrNoTarget
	}
	enc, err := h.target.Encode(values, normalize, oneHot)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", h.target.Name(), err)
	}

	return enc, nil
}

// EncodeJoint encodes a combined table whose last cell in every row is the
// target value: inputs and target are encoded independently and the target
// encoding is augmented on the right as the final column.
//
// The target must encode to a single column (use oneHot=false or a width-1
// target); wider target blocks are ErrJointTarget, keeping the layout's
// "last column is the target" contract honest.
func (h *Handler) EncodeJoint(rows [][]feature.Value, normalize, oneHot bool) (*mat.Dense, error) {
	if h.target == nil {
		return nil, ErrNoTarget
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	n := len(h.features)
	inputs := make([][]feature.Value, len(rows))
	targets := make([]feature.Value, len(rows))
	for i, row := range rows {
		if len(row) != n+1 {
			return nil, fmt.Errorf("row %d has %d columns, want %d inputs + 1 target: %w", i, len(row), n, ErrColumnCount)
		}
		inputs[i] = row[:n]
		targets[i] = row[n]
	}

	encX, err := h.Encode(inputs, normalize, oneHot)
	if err != nil {
		return nil, err
	}
	encY, err := h.EncodeTarget(targets, normalize, oneHot)
	if err != nil {
		return nil, err
	}
	if _, yc := encY.Dims(); yc != 1 {
		return nil, fmt.Errorf("target %q encodes to %d columns: %w", h.target.Name(), yc, ErrJointTarget)
	}

	var out mat.Dense
	out.Augment(encX, encY)

	return &out, nil
}
