package types

// AttributeScore is the per-attribute contribution record inside a
// SimilarityResult, kept for explainability.
type AttributeScore struct {
	Name       string
	Importance Importance

	// Raw is the tolerance-rule score for the attribute pair, in [0, 1].
	Raw float64

	// Weight is baseWeight(importance) * profile multiplier.
	Weight float64

	// Contribution is Raw * Weight as accumulated into the total.
	Contribution float64

	// Missing is true when the attribute was absent on at least one side and
	// therefore skipped (or, for critical attributes, failed).
	Missing bool
}

// SimilarityResult is the outcome of comparing two parts under a profile.
// Immutable once constructed.
type SimilarityResult struct {
	// Score is the bounded similarity in [0, 1]. Exactly 0.0 means "known
	// incompatible" unless Unscored is set.
	Score float64

	// Acceptable reports whether Score clears the profile's minimum score.
	Acceptable bool

	// ShortCircuited is true when scoring ended early: differing base types,
	// a critical attribute mismatch, or missing data on a critical attribute.
	ShortCircuited bool

	// Unscored is true when no type metadata was available even after
	// base-type fallback. An unscored 0 is "no information", not "known
	// incompatible".
	Unscored bool

	// Reason describes a short-circuit or unscored outcome.
	Reason string

	// Profile is the name of the profile the comparison ran under.
	Profile string

	// Breakdown holds the per-attribute contributions, in metadata order.
	Breakdown []AttributeScore
}
