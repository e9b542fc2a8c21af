package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veltran/featmix/dataset"
	"github.com/veltran/featmix/feature"
)

// Sentinel errors for schema parsing. Construction errors from the feature
// and dataset packages pass through wrapped and stay errors.Is-matchable.
var (
	// ErrBadDocument indicates YAML that does not parse or carries unknown fields.
	ErrBadDocument = errors.New("schema: invalid document")
	// ErrMissingName indicates a feature declaration without a name.
	ErrMissingName = errors.New("schema: feature declaration needs a name")
	// ErrBadKind indicates an unrecognized kind string.
	ErrBadKind = errors.New("schema: unknown feature kind")
	// ErrBadMonotone indicates an unrecognized monotone string.
	ErrBadMonotone = errors.New("schema: unknown monotone direction")
	// ErrBadValues indicates a declaration whose domain fields do not fit its
	// kind: binary without exactly two values, contiguous without min/max.
	ErrBadValues = errors.New("schema: declaration does not fit its kind")
)

// document mirrors the YAML layout.
type document struct {
	Features    []featureDecl   `yaml:"features"`
	Target      *featureDecl    `yaml:"target"`
	Constraints constraintsDecl `yaml:"constraints"`
}

type featureDecl struct {
	Name      string          `yaml:"name"`
	Kind      string          `yaml:"kind"`
	Values    []feature.Value `yaml:"values"`
	Min       *float64        `yaml:"min"`
	Max       *float64        `yaml:"max"`
	Ordered   bool            `yaml:"ordered"`
	Immutable bool            `yaml:"immutable"`
	Monotone  string          `yaml:"monotone"`
}

type constraintsDecl struct {
	CausalIncrease []causalDecl `yaml:"causal_increase"`
	GreaterThan    []orderDecl  `yaml:"greater_than"`
}

type causalDecl struct {
	Cause  string `yaml:"cause"`
	Effect string `yaml:"effect"`
}

type orderDecl struct {
	Greater string `yaml:"greater"`
	Smaller string `yaml:"smaller"`
}

// Parse builds a Handler from YAML bytes.
func Parse(b []byte) (*dataset.Handler, error) {
	return ParseReader(bytes.NewReader(b))
}

// ParseReader builds a Handler from a YAML stream. Unknown fields are
// rejected (ErrBadDocument).
func ParseReader(r io.Reader) (*dataset.Handler, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return build(&doc)
}

// ParseFile builds a Handler from a YAML file on disk.
func ParseFile(path string) (*dataset.Handler, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}

	return Parse(b)
}

func build(doc *document) (*dataset.Handler, error) {
	features := make([]feature.Feature, len(doc.Features))
	for i := range doc.Features {
		f, err := buildFeature(&doc.Features[i])
		if err != nil {
			return nil, err
		}
		features[i] = f
	}

	var opts []dataset.Option
	if doc.Target != nil {
		target, err := buildFeature(doc.Target)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dataset.WithTarget(target))
	}
	for _, c := range doc.Constraints.CausalIncrease {
		opts = append(opts, dataset.WithCausalIncrease(c.Cause, c.Effect))
	}
	for _, o := range doc.Constraints.GreaterThan {
		opts = append(opts, dataset.WithGreaterThan(o.Greater, o.Smaller))
	}

	return dataset.New(features, opts...)
}

func buildFeature(d *featureDecl) (feature.Feature, error) {
	if d.Name == "" {
		return nil, ErrMissingName
	}
	monotone, err := parseMonotone(d.Monotone)
	if err != nil {
		return nil, fmt.Errorf("feature %q: %w", d.Name, err)
	}
	opts := feature.DefaultOptions()
	opts.Immutable = d.Immutable
	opts.Ordered = d.Ordered
	opts.Monotone = monotone

	switch d.Kind {
	case "binary":
		if len(d.Values) != 2 {
			return nil, fmt.Errorf("feature %q: binary needs exactly 2 values, got %d: %w", d.Name, len(d.Values), ErrBadValues)
		}

		return feature.NewBinary(d.Name, d.Values[0], d.Values[1], opts)

	case "categorical":
		return feature.NewCategorical(d.Name, d.Values, opts)

	case "contiguous":
		if d.Min == nil || d.Max == nil {
			return nil, fmt.Errorf("feature %q: contiguous needs min and max: %w", d.Name, ErrBadValues)
		}
		if len(d.Values) != 0 {
			return nil, fmt.Errorf("feature %q: contiguous takes bounds, not values: %w", d.Name, ErrBadValues)
		}

		return feature.NewContiguous(d.Name, *d.Min, *d.Max, opts)

	default:
		return nil, fmt.Errorf("feature %q: kind %q: %w", d.Name, d.Kind, ErrBadKind)
	}
}

func parseMonotone(s string) (feature.Monotonicity, error) {
	switch s {
	case "", "none":
		return feature.MonotoneNone, nil
	case "increase", "increasing":
		return feature.MonotoneIncreasing, nil
	case "decrease", "decreasing":
		return feature.MonotoneDecreasing, nil
	default:
		return feature.MonotoneNone, fmt.Errorf("%q: %w", s, ErrBadMonotone)
	}
}
