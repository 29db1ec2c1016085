package types

import "errors"

// Domain errors shared across components
var (
	// ErrInvalidPattern indicates a malformed rule pattern source, rejected at
	// registration time.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrMalformedInput indicates a null/empty MPN rejected at the API boundary.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNoMetadata indicates similarity was requested for a type with no
	// registered metadata even after base-type fallback.
	ErrNoMetadata = errors.New("no metadata registered for type")

	// ErrDuplicateAttribute indicates a type metadata bundle declared the same
	// attribute name twice.
	ErrDuplicateAttribute = errors.New("duplicate attribute name")

	// ErrInvalidImportance indicates an importance level outside the known set.
	ErrInvalidImportance = errors.New("invalid importance")

	// ErrUnknownProfile indicates a similarity profile name with no canonical
	// definition.
	ErrUnknownProfile = errors.New("unknown similarity profile")
)
