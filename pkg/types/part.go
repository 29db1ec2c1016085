package types

import "strings"

// NormalizeMPN canonicalizes a raw manufacturer part number for matching:
// surrounding whitespace is trimmed, the string is upper-cased, and a single
// trailing "+" lead-free marking is stripped so that the lead-free and plain
// markings of the same part classify identically.
func NormalizeMPN(mpn string) string {
	s := strings.ToUpper(strings.TrimSpace(mpn))
	s = strings.TrimSuffix(s, "+")
	return s
}

// ResolvedPart is the output of classifying one MPN. It is immutable once
// constructed and freely shareable across goroutines.
type ResolvedPart struct {
	// MPN is the normalized part number the classification was computed from.
	MPN string

	// Type is the resolved component type, or TypeUnknown when no rule matched.
	Type ComponentType

	// Manufacturer is the rule owner that claimed the part.
	Manufacturer RuleOwnerID

	// PackageCode is the physical package extracted from the MPN, if any.
	PackageCode string

	// Series is the product series extracted from the MPN, if any.
	Series string

	// Attributes holds the electrical attributes extracted from the MPN,
	// keyed by attribute name.
	Attributes map[string]AttributeValue
}

// IsUnknown reports whether classification found no match. Unknown is a normal
// outcome, not an error; the caller decides whether it is fatal.
func (p ResolvedPart) IsUnknown() bool {
	return p.Type.IsUnknown()
}

// Attribute returns the named extracted attribute value.
func (p ResolvedPart) Attribute(name string) (AttributeValue, bool) {
	v, ok := p.Attributes[name]
	return v, ok
}

// ConfidenceTier buckets classification candidates by how they were ranked.
type ConfidenceTier string

const (
	TierHigh   ConfidenceTier = "high"   // literal-prefix shortcut hit
	TierMedium ConfidenceTier = "medium" // manufacturer-specific pattern match
	TierLow    ConfidenceTier = "low"    // generic pattern match
)

// Candidate is one (owner, type) pair from ClassifyAll, ranked by the same
// shortcut and specificity logic that drives Classify.
type Candidate struct {
	Owner RuleOwnerID
	Type  ComponentType
	Tier  ConfidenceTier

	// Score is the specificity score used for ranking. Exposed so callers can
	// see why candidates ordered the way they did.
	Score int
}
