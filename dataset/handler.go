package dataset

import (
	"fmt"

	"github.com/veltran/featmix/feature"
)

// Handler owns an ordered feature list, an optional target feature and the
// constraint set. It is immutable after New; every method is a pure
// function of the fixed configuration plus its arguments, so one Handler
// may serve any number of concurrent callers.
type Handler struct {
	features []feature.Feature
	index    map[string]int // feature name → column position
	target   feature.Feature

	causal []pair // cause → effect, by column position
	order  []pair // greater, smaller, by column position
}

// pair references two input features by column position. Positions are
// resolved once at construction, replacing repeated name scans.
type pair struct {
	a, b int
}

// CausalIncrease couples a cause feature with an effect feature: whenever
// the cause's value increases between two rows, the effect's must too.
type CausalIncrease struct {
	Cause, Effect feature.Feature
}

// Ordering couples two features: the Smaller feature's value must not
// exceed the Greater feature's value in a valid after-row.
type Ordering struct {
	Greater, Smaller feature.Feature
}

// Option configures a Handler before construction.
type Option func(*config)

type config struct {
	target feature.Feature
	causal [][2]string
	order  [][2]string
}

// WithTarget attaches a target feature. The target is held apart from the
// inputs: it never contributes to EncodingWidth, Encode, Decode or
// AllowedChanges over inputs.
func WithTarget(f feature.Feature) Option {
	return func(c *config) { c.target = f }
}

// WithCausalIncrease appends a causal-implication pair, referenced by
// feature name. Both names must belong to input features of categorical or
// contiguous kind; New fails otherwise.
func WithCausalIncrease(cause, effect string) Option {
	return func(c *config) { c.causal = append(c.causal, [2]string{cause, effect}) }
}

// WithGreaterThan appends an ordering pair, referenced by feature name:
// smaller's after-value must not exceed greater's. Both names must belong
// to input features; New fails otherwise.
func WithGreaterThan(greater, smaller string) Option {
	return func(c *config) { c.order = append(c.order, [2]string{greater, smaller}) }
}

// New builds a Handler over the given input features, in order. The order
// defines the column order of every encoded and decoded matrix.
//
// Configuration is validated eagerly: empty feature lists, duplicate names,
// constraint pairs naming unknown features, and causal pairs over kinds
// other than categorical/contiguous all fail here, not at call time.
func New(features []feature.Feature, opts ...Option) (*Handler, error) {
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	index := make(map[string]int, len(features))
	for i, f := range features {
		if _, dup := index[f.Name()]; dup {
			return nil, fmt.Errorf("feature %q: %w", f.Name(), ErrDupFeature)
		}
		index[f.Name()] = i
	}

	h := &Handler{
		features: append([]feature.Feature(nil), features...),
		index:    index,
		target:   cfg.target,
	}

	for _, p := range cfg.causal {
		cause, err := h.resolveCausal(p[0])
		if err != nil {
			return nil, err
		}
		effect, err := h.resolveCausal(p[1])
		if err != nil {
			return nil, err
		}
		h.causal = append(h.causal, pair{a: cause, b: effect})
	}
	for _, p := range cfg.order {
		greater, ok := index[p[0]]
		if !ok {
			return nil, fmt.Errorf("feature %q: %w", p[0], ErrUnknownFeature)
		}
		smaller, ok := index[p[1]]
		if !ok {
			return nil, fmt.Errorf("feature %q: %w", p[1], ErrUnknownFeature)
		}
		h.order = append(h.order, pair{a: greater, b: smaller})
	}

	return h, nil
}

// resolveCausal maps a causal endpoint name to its column position,
// rejecting unknown names and unsupported kinds.
func (h *Handler) resolveCausal(name string) (int, error) {
	i, ok := h.index[name]
	if !ok {
		return 0, fmt.Errorf("feature %q: %w", name, ErrUnknownFeature)
	}
	switch h.features[i].Kind() {
	case feature.KindCategorical, feature.KindContiguous:
		return i, nil
	default:
		return 0, fmt.Errorf("feature %q is %s: %w", name, h.features[i].Kind(), ErrConstraintKind)
	}
}

// NumFeatures returns the input feature count.
func (h *Handler) NumFeatures() int { return len(h.features) }

// Features returns a copy of the input feature list, in column order.
func (h *Handler) Features() []feature.Feature {
	return append([]feature.Feature(nil), h.features...)
}

// FeatureNames returns the input feature names, in column order.
func (h *Handler) FeatureNames() []string {
	names := make([]string, len(h.features))
	for i, f := range h.features {
		names[i] = f.Name()
	}

	return names
}

// Target returns the target feature, or nil when none is configured.
func (h *Handler) Target() feature.Feature { return h.target }

// CausalIncreases returns the causal-implication pairs, resolved to features.
func (h *Handler) CausalIncreases() []CausalIncrease {
	out := make([]CausalIncrease, len(h.causal))
	for i, p := range h.causal {
		out[i] = CausalIncrease{Cause: h.features[p.a], Effect: h.features[p.b]}
	}

	return out
}

// Orderings returns the greater-than pairs, resolved to features.
func (h *Handler) Orderings() []Ordering {
	out := make([]Ordering, len(h.order))
	for i, p := range h.order {
		out[i] = Ordering{Greater: h.features[p.a], Smaller: h.features[p.b]}
	}

	return out
}

// EncodingWidth returns the total encoded column count for the given
// one-hot flag: the sum of per-feature widths. Purely structural; it
// depends on the configuration only, never on data.
func (h *Handler) EncodingWidth(oneHot bool) int {
	total := 0
	for _, f := range h.features {
		total += f.EncodingWidth(oneHot)
	}

	return total
}
