package dataset

import "errors"

// Sentinel errors for Handler construction and operations. Configuration
// errors surface at New wherever possible, so a misconfigured constraint
// can never silently corrupt encoded data later.
var (
	// ErrNoFeatures indicates construction without input features.
	ErrNoFeatures = errors.New("dataset: need at least one input feature")

	// ErrDupFeature indicates two input features sharing a name.
	ErrDupFeature = errors.New("dataset: duplicate feature name")

	// ErrUnknownFeature indicates a constraint pair referencing a name that
	// is not in the input feature list.
	ErrUnknownFeature = errors.New("dataset: constraint references unknown feature")

	// ErrConstraintKind indicates a causal constraint endpoint whose kind is
	// neither categorical nor contiguous. Causal increase is only meaningful
	// for ordered types.
	ErrConstraintKind = errors.New("dataset: causal constraint requires a categorical or contiguous feature")

	// ErrNoTarget indicates a target operation on a Handler built without one.
	ErrNoTarget = errors.New("dataset: no target feature configured")

	// ErrNoRows indicates an encode call with zero rows.
	ErrNoRows = errors.New("dataset: no rows to encode")

	// ErrColumnCount indicates a row whose cell count does not match the
	// feature list.
	ErrColumnCount = errors.New("dataset: column count does not match feature list")

	// ErrColumnName indicates a frame whose column names do not match the
	// feature list in order.
	ErrColumnName = errors.New("dataset: column names do not match feature list")

	// ErrEncodedWidth indicates an encoded matrix whose width does not equal
	// the structural width sum for the given one-hot flag.
	ErrEncodedWidth = errors.New("dataset: encoded width does not match feature widths")

	// ErrJointTarget indicates a joint encoding whose target block is wider
	// than one column; the joint layout reserves exactly the last column for
	// the target.
	ErrJointTarget = errors.New("dataset: joint encoding requires a single-column target encoding")
)
