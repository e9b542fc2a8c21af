package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veltran/featmix/feature"
)

// TestAsFloat verifies numeric conversion across Go scalar types.
func TestAsFloat(t *testing.T) {
	for _, v := range []feature.Value{int(3), int8(3), int16(3), int32(3), int64(3), uint(3), uint8(3), uint16(3), uint32(3), uint64(3), float32(3), float64(3)} {
		f, err := feature.AsFloat(v)
		assert.NoError(t, err, "%T must convert", v)
		assert.Equal(t, 3.0, f)
	}

	_, err := feature.AsFloat("3")
	assert.ErrorIs(t, err, feature.ErrNonNumeric, "strings are not coerced")
	_, err = feature.AsFloat(true)
	assert.ErrorIs(t, err, feature.ErrNonNumeric, "bools are not coerced")
}

// TestEqual verifies magnitude comparison for numerics and direct
// comparison otherwise.
func TestEqual(t *testing.T) {
	assert.True(t, feature.Equal(3, 3.0))
	assert.True(t, feature.Equal("a", "a"))
	assert.False(t, feature.Equal(3, 4))
	assert.False(t, feature.Equal("a", "b"))
	assert.False(t, feature.Equal(3, "3"), "a number never equals a string")
}

// TestKindStrings pins the names used in errors and schemas.
func TestKindStrings(t *testing.T) {
	assert.Equal(t, "binary", feature.KindBinary.String())
	assert.Equal(t, "categorical", feature.KindCategorical.String())
	assert.Equal(t, "contiguous", feature.KindContiguous.String())
	assert.Equal(t, "unknown", feature.Kind(42).String())

	assert.Equal(t, "none", feature.MonotoneNone.String())
	assert.Equal(t, "increasing", feature.MonotoneIncreasing.String())
	assert.Equal(t, "decreasing", feature.MonotoneDecreasing.String())
}
