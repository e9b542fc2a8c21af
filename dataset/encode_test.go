package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/veltran/featmix/dataset"
	"github.com/veltran/featmix/feature"
	"github.com/veltran/featmix/frame"
)

var mixedRows = [][]feature.Value{
	{25.0, "secondary", "M"},
	{50.0, "primary", "F"},
	{75.0, "tertiary", "F"},
}

// TestEncode_Layout pins the exact column layout: feature order, one
// contiguous block per feature, float64 cells.
func TestEncode_Layout(t *testing.T) {
	h := mixedHandler(t)

	enc, err := h.Encode(mixedRows, true, true)
	require.NoError(t, err)
	r, c := enc.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, h.EncodingWidth(true), c)
	assert.Equal(t, []float64{0.25, 0, 1, 0, 1}, mat.Row(nil, 0, enc))
	assert.Equal(t, []float64{0.50, 1, 0, 0, 0}, mat.Row(nil, 1, enc))
	assert.Equal(t, []float64{0.75, 0, 0, 1, 0}, mat.Row(nil, 2, enc))

	enc, err = h.Encode(mixedRows, false, false)
	require.NoError(t, err)
	_, c = enc.Dims()
	assert.Equal(t, h.EncodingWidth(false), c)
	assert.Equal(t, []float64{25, -2, 1}, mat.Row(nil, 0, enc))
	assert.Equal(t, []float64{50, -1, 0}, mat.Row(nil, 1, enc))
	assert.Equal(t, []float64{75, -3, 0}, mat.Row(nil, 2, enc))
}

// TestEncode_Errors covers shape and domain failures.
func TestEncode_Errors(t *testing.T) {
	h := mixedHandler(t)

	_, err := h.Encode(nil, true, true)
	assert.ErrorIs(t, err, dataset.ErrNoRows)

	_, err = h.Encode([][]feature.Value{{25.0, "secondary"}}, true, true)
	assert.ErrorIs(t, err, dataset.ErrColumnCount, "short row must fail fast, not pad")

	_, err = h.Encode([][]feature.Value{{25.0, "doctorate", "M"}}, true, true)
	assert.ErrorIs(t, err, feature.ErrUnknownCategory, "feature errors pass through")
}

// TestEncodeRow verifies the single-sample path agrees with the matrix path
// for every flag combination.
func TestEncodeRow(t *testing.T) {
	h := mixedHandler(t)
	for _, normalize := range []bool{false, true} {
		for _, oneHot := range []bool{false, true} {
			enc, err := h.Encode(mixedRows, normalize, oneHot)
			require.NoError(t, err)
			row, err := h.EncodeRow(mixedRows[0], normalize, oneHot)
			require.NoError(t, err)
			assert.Equal(t, mat.Row(nil, 0, enc), row,
				"normalize=%v oneHot=%v", normalize, oneHot)
		}
	}
}

// TestEncodeFrame verifies name checking and delegation.
func TestEncodeFrame(t *testing.T) {
	h := mixedHandler(t)

	f, err := frame.New(
		[]string{"age", "education", "sex"},
		[][]feature.Value{{25.0, 50.0, 75.0}, {"secondary", "primary", "tertiary"}, {"M", "F", "F"}},
	)
	require.NoError(t, err)

	viaFrame, err := h.EncodeFrame(f, true, true)
	require.NoError(t, err)
	viaRows, err := h.Encode(mixedRows, true, true)
	require.NoError(t, err)
	assert.True(t, mat.Equal(viaFrame, viaRows))

	swapped, err := frame.New(
		[]string{"education", "age", "sex"},
		[][]feature.Value{{"secondary"}, {25.0}, {"M"}},
	)
	require.NoError(t, err)
	_, err = h.EncodeFrame(swapped, true, true)
	assert.ErrorIs(t, err, dataset.ErrColumnName, "column order is never fixed up silently")

	narrow, err := frame.New([]string{"age"}, [][]feature.Value{{25.0}})
	require.NoError(t, err)
	_, err = h.EncodeFrame(narrow, true, true)
	assert.ErrorIs(t, err, dataset.ErrColumnCount)
}

// TestEncodeTarget verifies delegation and the missing-target error.
func TestEncodeTarget(t *testing.T) {
	h := mixedHandler(t)

	enc, err := h.EncodeTarget([]feature.Value{"yes", "no"}, true, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, enc.At(0, 0))
	assert.Equal(t, 0.0, enc.At(1, 0))

	bare, err := dataset.New(mixedFeatures(t))
	require.NoError(t, err)
	_, err = bare.EncodeTarget([]feature.Value{"yes"}, true, false)
	assert.ErrorIs(t, err, dataset.ErrNoTarget)
}

// TestEncodeJoint verifies the last-column-is-target layout.
func TestEncodeJoint(t *testing.T) {
	h := mixedHandler(t)

	joint := [][]feature.Value{
		{25.0, "secondary", "M", "yes"},
		{50.0, "primary", "F", "no"},
	}
	enc, err := h.EncodeJoint(joint, true, true)
	require.NoError(t, err)
	r, c := enc.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, h.EncodingWidth(true)+1, c)
	assert.Equal(t, 1.0, enc.At(0, c-1), "yes encodes to 1 in the last column")
	assert.Equal(t, 0.0, enc.At(1, c-1))

	_, err = h.EncodeJoint([][]feature.Value{{25.0, "secondary", "M"}}, true, true)
	assert.ErrorIs(t, err, dataset.ErrColumnCount, "missing target cell")

	bare, err := dataset.New(mixedFeatures(t))
	require.NoError(t, err)
	_, err = bare.EncodeJoint(joint, true, true)
	assert.ErrorIs(t, err, dataset.ErrNoTarget)
}

// TestEncodeJoint_WideTarget verifies a multi-column target encoding is
// rejected rather than silently flattened.
func TestEncodeJoint_WideTarget(t *testing.T) {
	grade, err := feature.NewCategorical("grade", []feature.Value{"a", "b", "c"}, feature.DefaultOptions())
	require.NoError(t, err)
	h, err := dataset.New(mixedFeatures(t), dataset.WithTarget(grade))
	require.NoError(t, err)

	rows := [][]feature.Value{{25.0, "secondary", "M", "b"}}
	_, err = h.EncodeJoint(rows, true, true)
	assert.ErrorIs(t, err, dataset.ErrJointTarget, "one-hot target is 3 columns wide")

	enc, err := h.EncodeJoint(rows, true, false)
	require.NoError(t, err, "plain-coded target fits the single column")
	_, c := enc.Dims()
	assert.Equal(t, h.EncodingWidth(false)+1, c)
	assert.Equal(t, -2.0, enc.At(0, c-1))
}
