package feature

import "errors"

// Sentinel errors for feature construction and codec operations.
// Return values wrap these with fmt.Errorf("…: %w", Err) where context
// (feature name, offending value) helps diagnosis; match with errors.Is.
var (
	// ErrEmptyName indicates a feature was declared without a name.
	ErrEmptyName = errors.New("feature: name must be non-empty")

	// ErrBadDomain indicates an invalid value domain: bounds with lo >= hi,
	// fewer than two categories, or duplicate category values.
	ErrBadDomain = errors.New("feature: invalid value domain")

	// ErrBadMonotone indicates a monotonicity tag on a feature whose values
	// carry no declared order (an unordered categorical).
	ErrBadMonotone = errors.New("feature: monotonicity requires an ordered domain")

	// ErrUnknownCategory indicates a raw or encoded value outside the
	// declared category set.
	ErrUnknownCategory = errors.New("feature: value not in declared domain")

	// ErrNonNumeric indicates a value that must be numeric but is not.
	ErrNonNumeric = errors.New("feature: value is not numeric")

	// ErrUnordered indicates GreaterThan on a feature without a declared order.
	ErrUnordered = errors.New("feature: no declared order over values")

	// ErrNoValues indicates an encode call with an empty value slice.
	ErrNoValues = errors.New("feature: no values to encode")

	// ErrBadShape indicates a decode block whose width does not match the
	// feature's encoding width.
	ErrBadShape = errors.New("feature: encoded block has wrong shape")
)
