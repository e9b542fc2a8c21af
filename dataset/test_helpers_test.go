package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veltran/featmix/dataset"
	"github.com/veltran/featmix/feature"
)

// mixedFeatures builds the reference feature list used across the dataset
// tests: a contiguous age on [0,100], an ordered three-level education and
// an immutable binary sex.
func mixedFeatures(t *testing.T) []feature.Feature {
	t.Helper()

	age, err := feature.NewContiguous("age", 0, 100, feature.DefaultOptions())
	require.NoError(t, err)

	eduOpts := feature.DefaultOptions()
	eduOpts.Ordered = true
	edu, err := feature.NewCategorical("education", []feature.Value{"primary", "secondary", "tertiary"}, eduOpts)
	require.NoError(t, err)

	sexOpts := feature.DefaultOptions()
	sexOpts.Immutable = true
	sex, err := feature.NewBinary("sex", "F", "M", sexOpts)
	require.NoError(t, err)

	return []feature.Feature{age, edu, sex}
}

// mixedHandler builds a Handler over mixedFeatures with a binary target.
func mixedHandler(t *testing.T, opts ...dataset.Option) *dataset.Handler {
	t.Helper()

	outcome, err := feature.NewBinary("outcome", "no", "yes", feature.DefaultOptions())
	require.NoError(t, err)

	h, err := dataset.New(mixedFeatures(t), append([]dataset.Option{dataset.WithTarget(outcome)}, opts...)...)
	require.NoError(t, err)

	return h
}

// contiguousPair builds two plain contiguous features named c and e,
// the minimal fixture for causal-constraint scenarios.
func contiguousPair(t *testing.T) []feature.Feature {
	t.Helper()

	c, err := feature.NewContiguous("c", 0, 10, feature.DefaultOptions())
	require.NoError(t, err)
	e, err := feature.NewContiguous("e", 0, 10, feature.DefaultOptions())
	require.NoError(t, err)

	return []feature.Feature{c, e}
}
