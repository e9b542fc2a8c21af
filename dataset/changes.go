package dataset

import (
	"fmt"

	"github.com/veltran/featmix/feature"
)

// AllowedChanges reports whether the transition from the before row to the
// after row (both raw, in feature order) is permitted.
//
// Three layers are checked in increasing-cost order, each one a veto:
//
//  1. per-feature AllowedChange: immutability and monotonicity;
//  2. causal-increase pairs: if the cause increased, the effect must have
//     increased too. "Increased" is kind-dependent: categorical membership
//     in the declared GreaterThan set, contiguous strict numeric increase.
//     A non-increasing cause contributes no constraint; the rule is
//     one-directional and never binds decreases.
//  3. ordering pairs: the smaller feature's after-value must not exceed
//     the greater feature's after-value; equality is allowed.
//
// A false verdict is not an error. Errors indicate out-of-domain values or
// an unsupported kind in a causal pair, and carry the feature name.
func (h *Handler) AllowedChanges(before, after []feature.Value) (bool, error) {
	n := len(h.features)
	if len(before) != n || len(after) != n {
		return false, fmt.Errorf("rows have %d and %d columns, want %d: %w", len(before), len(after), n, ErrColumnCount)
	}

	for i, f := range h.features {
		ok, err := f.AllowedChange(before[i], after[i])
		if err != nil {
			return false, fmt.Errorf("feature %q: %w", f.Name(), err)
		}
		if !ok {
			return false, nil
		}
	}

	for _, p := range h.causal {
		applied, err := h.increased(p.a, before, after)
		if err != nil {
			return false, err
		}
		if !applied {
			continue
		}
		followed, err := h.increased(p.b, before, after)
		if err != nil {
			return false, err
		}
		if !followed {
			return false, nil
		}
	}

	for _, p := range h.order {
		greater, err := feature.AsFloat(after[p.a])
		if err != nil {
			return false, fmt.Errorf("feature %q: value %v: %w", h.features[p.a].Name(), after[p.a], err)
		}
		smaller, err := feature.AsFloat(after[p.b])
		if err != nil {
			return false, fmt.Errorf("feature %q: value %v: %w", h.features[p.b].Name(), after[p.b], err)
		}
		if smaller > greater {
			return false, nil
		}
	}

	return true, nil
}

// increased reports whether feature idx's value grew from before to after,
// under the kind-specific rule. The kind switch is the only place the
// Handler inspects feature kinds; anything but categorical or contiguous is
// ErrConstraintKind. New already rejects such pairs.
func (h *Handler) increased(idx int, before, after []feature.Value) (bool, error) {
	f := h.features[idx]
	switch f.Kind() {
	case feature.KindCategorical:
		gt, err := f.GreaterThan(before[idx])
		if err != nil {
			return false, fmt.Errorf("feature %q: %w", f.Name(), err)
		}
		for _, v := range gt {
			if feature.Equal(v, after[idx]) {
				return true, nil
			}
		}

		return false, nil

	case feature.KindContiguous:
		pre, err := h.rawCode(f, before[idx])
		if err != nil {
			return false, err
		}
		pos, err := h.rawCode(f, after[idx])
		if err != nil {
			return false, err
		}

		return pos > pre, nil

	default:
		return false, fmt.Errorf("feature %q is %s: %w", f.Name(), f.Kind(), ErrConstraintKind)
	}
}

// rawCode encodes a single value in raw comparable form: no normalization,
// no one-hot.
func (h *Handler) rawCode(f feature.Feature, v feature.Value) (float64, error) {
	enc, err := f.Encode([]feature.Value{v}, false, false)
	if err != nil {
		return 0, fmt.Errorf("feature %q: %w", f.Name(), err)
	}

	return enc.At(0, 0), nil
}
