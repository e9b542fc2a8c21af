package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltran/featmix/dataset"
	"github.com/veltran/featmix/feature"
)

// TestNew_Validation covers every construction-time configuration error.
func TestNew_Validation(t *testing.T) {
	_, err := dataset.New(nil)
	assert.ErrorIs(t, err, dataset.ErrNoFeatures)

	a, err := feature.NewContiguous("a", 0, 1, feature.DefaultOptions())
	require.NoError(t, err)
	b, err := feature.NewContiguous("a", 0, 2, feature.DefaultOptions())
	require.NoError(t, err)
	_, err = dataset.New([]feature.Feature{a, b})
	assert.ErrorIs(t, err, dataset.ErrDupFeature, "two features named a")

	_, err = dataset.New(mixedFeatures(t), dataset.WithCausalIncrease("age", "salary"))
	assert.ErrorIs(t, err, dataset.ErrUnknownFeature, "causal effect not in the feature list")

	_, err = dataset.New(mixedFeatures(t), dataset.WithGreaterThan("salary", "age"))
	assert.ErrorIs(t, err, dataset.ErrUnknownFeature, "ordering endpoint not in the feature list")

	_, err = dataset.New(mixedFeatures(t), dataset.WithCausalIncrease("sex", "age"))
	assert.ErrorIs(t, err, dataset.ErrConstraintKind, "binary features cannot anchor causal pairs")

	_, err = dataset.New(mixedFeatures(t), dataset.WithCausalIncrease("age", "sex"))
	assert.ErrorIs(t, err, dataset.ErrConstraintKind, "rejected on the effect side too")
}

// TestAccessors verifies the configuration is exposed faithfully and in order.
func TestAccessors(t *testing.T) {
	h := mixedHandler(t,
		dataset.WithCausalIncrease("education", "age"),
		dataset.WithGreaterThan("age", "education"),
	)

	assert.Equal(t, 3, h.NumFeatures())
	assert.Equal(t, []string{"age", "education", "sex"}, h.FeatureNames())
	require.NotNil(t, h.Target())
	assert.Equal(t, "outcome", h.Target().Name())

	causal := h.CausalIncreases()
	require.Len(t, causal, 1)
	assert.Equal(t, "education", causal[0].Cause.Name())
	assert.Equal(t, "age", causal[0].Effect.Name())

	order := h.Orderings()
	require.Len(t, order, 1)
	assert.Equal(t, "age", order[0].Greater.Name())
	assert.Equal(t, "education", order[0].Smaller.Name())

	bare, err := dataset.New(mixedFeatures(t))
	require.NoError(t, err)
	assert.Nil(t, bare.Target())
	assert.Empty(t, bare.CausalIncreases())
	assert.Empty(t, bare.Orderings())
}

// TestEncodingWidth verifies width additivity for both one-hot flags:
// 1 (age) + 3 or 1 (education) + 1 (sex).
func TestEncodingWidth(t *testing.T) {
	h := mixedHandler(t)
	assert.Equal(t, 5, h.EncodingWidth(true))
	assert.Equal(t, 3, h.EncodingWidth(false))
}
