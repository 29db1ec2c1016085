package metadata

import (
	"fmt"
	"math"

	"github.com/dshills/partmatch-mcp/pkg/types"
)

// ToleranceRule scores a (required, candidate) attribute value pair in [0, 1].
// Rules are pure functions; some are directional (MinimumRequired,
// MaximumAllowed). The similarity engine symmetrizes by scoring both directions
// and taking the worse one, so engine-level similarity is always symmetric.
type ToleranceRule interface {
	// Name identifies the rule kind for breakdowns and dataset files.
	Name() string

	// Score compares required against candidate and returns a value in [0, 1].
	Score(required, candidate types.AttributeValue) float64
}

// PairScore is the symmetric pair score: the minimum of both directional
// scores. For symmetric rules it equals Score.
func PairScore(r ToleranceRule, a, b types.AttributeValue) float64 {
	return math.Min(r.Score(a, b), r.Score(b, a))
}

// ExactMatch scores 1.0 when the normalized values are equal, else 0.0.
type ExactMatch struct{}

func (ExactMatch) Name() string { return "exact" }

func (ExactMatch) Score(required, candidate types.AttributeValue) float64 {
	if required.Equal(candidate) {
		return 1.0
	}
	return 0.0
}

// PercentageTolerance scores 1.0 when the relative difference is within Pct,
// decaying linearly to 0 at twice Pct.
type PercentageTolerance struct {
	Pct float64
}

func (p PercentageTolerance) Name() string { return fmt.Sprintf("pct(%g)", p.Pct) }

func (p PercentageTolerance) Score(required, candidate types.AttributeValue) float64 {
	a, b, ok := scalarPair(required, candidate)
	if !ok {
		return ExactMatch{}.Score(required, candidate)
	}
	if a == b {
		return 1.0
	}
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		return 0.0
	}
	diff := math.Abs(a-b) / denom
	switch {
	case diff <= p.Pct:
		return 1.0
	case diff >= 2*p.Pct:
		return 0.0
	default:
		return 1.0 - (diff-p.Pct)/p.Pct
	}
}

// MinimumRequired scores 1.0 when the candidate meets or exceeds the required
// value (the substitute must not be less capable), with a decaying penalty for
// shortfalls: the score falls linearly and reaches 0 when the candidate is at
// half the required value.
type MinimumRequired struct{}

func (MinimumRequired) Name() string { return "min-required" }

func (MinimumRequired) Score(required, candidate types.AttributeValue) float64 {
	req, cand, ok := scalarPair(required, candidate)
	if !ok {
		return ExactMatch{}.Score(required, candidate)
	}
	if cand >= req {
		return 1.0
	}
	if req <= 0 {
		return 0.0
	}
	ratio := cand / req
	return clamp01((ratio - 0.5) * 2)
}

// MaximumAllowed scores 1.0 when the candidate is at or below the limit (the
// substitute must not be worse, e.g. on-resistance), with a decaying penalty
// reaching 0 when the candidate is double the limit.
type MaximumAllowed struct{}

func (MaximumAllowed) Name() string { return "max-allowed" }

func (MaximumAllowed) Score(required, candidate types.AttributeValue) float64 {
	limit, cand, ok := scalarPair(required, candidate)
	if !ok {
		return ExactMatch{}.Score(required, candidate)
	}
	if cand <= limit {
		return 1.0
	}
	if cand <= 0 {
		return 0.0
	}
	ratio := limit / cand
	return clamp01((ratio - 0.5) * 2)
}

// RangeOverlap scores 1.0 when the smaller range is fully contained in the
// larger, with partial credit proportional to the overlap fraction. Scalars are
// zero-width ranges: containment counts as full overlap.
type RangeOverlap struct{}

func (RangeOverlap) Name() string { return "range-overlap" }

func (RangeOverlap) Score(required, candidate types.AttributeValue) float64 {
	aLo, aHi, okA := required.Bounds()
	bLo, bHi, okB := candidate.Bounds()
	if !okA || !okB {
		return ExactMatch{}.Score(required, candidate)
	}

	lo := math.Max(aLo, bLo)
	hi := math.Min(aHi, bHi)
	if hi < lo {
		return 0.0
	}

	// Overlap fraction is measured against the narrower range so full
	// containment scores 1.0. Zero-width intersections of zero-width ranges
	// are exact hits.
	minWidth := math.Min(aHi-aLo, bHi-bLo)
	if minWidth == 0 {
		return 1.0
	}
	return clamp01((hi - lo) / minWidth)
}

// scalarPair extracts two numeric scalars, treating ranges by their lower
// bound. Returns ok=false when either side is non-numeric.
func scalarPair(a, b types.AttributeValue) (float64, float64, bool) {
	if !a.IsNumeric || !b.IsNumeric {
		return 0, 0, false
	}
	return a.Num, b.Num, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
