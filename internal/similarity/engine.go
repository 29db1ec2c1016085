package similarity

import (
	"fmt"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// Default scoring policy constants. Like the resolver's specificity constants
// these are tuned policy inputs, configurable rather than derived.
const (
	// DefaultLowSimilarityFloor is the score assigned on a critical
	// short-circuit. 0.0 keeps "known incompatible" unmistakable.
	DefaultLowSimilarityFloor = 0.0

	// DefaultCriticalThreshold is the pair score below which a critical
	// attribute counts as mismatched.
	DefaultCriticalThreshold = 0.5

	// DefaultEquivalenceBonus is the upward adjustment for documented
	// equivalent-part groups.
	DefaultEquivalenceBonus = 0.05
)

// Config holds the engine's scoring policy.
type Config struct {
	LowSimilarityFloor float64
	CriticalThreshold  float64
	EquivalenceBonus   float64
}

// DefaultConfig returns the standard scoring policy.
func DefaultConfig() Config {
	return Config{
		LowSimilarityFloor: DefaultLowSimilarityFloor,
		CriticalThreshold:  DefaultCriticalThreshold,
		EquivalenceBonus:   DefaultEquivalenceBonus,
	}
}

// CrossRef answers whether two MPNs belong to a documented equivalent-part
// group (manufacturer cross-reference lists). Implementations must be pure
// in-memory lookups: the engine performs no I/O.
type CrossRef interface {
	IsEquivalent(mpnA, mpnB string) bool
}

// CrossRefFunc adapts a function to the CrossRef interface.
type CrossRefFunc func(mpnA, mpnB string) bool

// IsEquivalent implements CrossRef.
func (f CrossRefFunc) IsEquivalent(mpnA, mpnB string) bool { return f(mpnA, mpnB) }

// Engine computes similarity scores over the frozen metadata registry.
// Immutable after construction; safe for concurrent use.
type Engine struct {
	meta *metadata.Registry
	xref CrossRef
	cfg  Config
}

// New creates an Engine. xref may be nil when no cross-reference data exists.
// A zero-value cfg means the standard policy; a cfg with any field set is
// taken as given, except that CriticalThreshold 0 is always backfilled (a
// threshold of zero would never trip the critical short-circuit).
func New(meta *metadata.Registry, xref CrossRef, cfg Config) *Engine {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	if cfg.CriticalThreshold == 0 {
		cfg.CriticalThreshold = DefaultCriticalThreshold
	}
	return &Engine{meta: meta, xref: xref, cfg: cfg}
}

// metadataFor resolves the metadata both parts are scored against. When the
// two types resolve to different entries (one vendor variant has its own
// table, the other falls back), the shared base-type table is used instead so
// the comparison stays symmetric and the attribute sets comparable.
func (e *Engine) metadataFor(a, b types.ComponentType) (metadata.TypeMetadata, bool) {
	mdA, okA := e.meta.Get(a)
	mdB, okB := e.meta.Get(b)
	if !okA || !okB {
		return metadata.TypeMetadata{}, false
	}
	if mdA.Type == mdB.Type {
		return mdA, true
	}
	return e.meta.Get(a.BaseType())
}

// Compare scores partA against partB under the profile. Symmetric: swapping
// the parts never changes the result.
func (e *Engine) Compare(partA, partB types.ResolvedPart, profile metadata.SimilarityProfile) types.SimilarityResult {
	// Different component families are never similar. Hard short-circuit,
	// not a weighted outcome.
	if partA.Type.BaseType() != partB.Type.BaseType() {
		return types.SimilarityResult{
			Score:          0,
			ShortCircuited: true,
			Reason:         fmt.Sprintf("different component families: %s vs %s", partA.Type.BaseType(), partB.Type.BaseType()),
			Profile:        profile.Name,
		}
	}

	md, ok := e.metadataFor(partA.Type, partB.Type)
	if !ok {
		return types.SimilarityResult{
			Score:    0,
			Unscored: true,
			Reason:   fmt.Sprintf("no metadata registered for %s or its base types", partA.Type),
			Profile:  profile.Name,
		}
	}

	specs := md.Specs()
	breakdown := make([]types.AttributeScore, 0, len(specs))

	// Critical attributes first: a categorical mismatch ends scoring before
	// any weighted accumulation.
	for _, spec := range specs {
		if spec.Importance != types.ImportanceCritical {
			continue
		}
		va, okA := partA.Attribute(spec.Name)
		vb, okB := partB.Attribute(spec.Name)

		if !okA || !okB {
			// Cannot determine a mandatory attribute: conservative low
			// score, never a silent pass.
			return types.SimilarityResult{
				Score:          e.cfg.LowSimilarityFloor,
				Acceptable:     false,
				ShortCircuited: true,
				Reason:         fmt.Sprintf("critical attribute %q missing: cannot determine compatibility", spec.Name),
				Profile:        profile.Name,
				Breakdown:      []types.AttributeScore{{Name: spec.Name, Importance: spec.Importance, Missing: true}},
			}
		}

		raw := metadata.PairScore(spec.Rule, va, vb)
		if raw < e.cfg.CriticalThreshold {
			return types.SimilarityResult{
				Score:          e.cfg.LowSimilarityFloor,
				Acceptable:     false,
				ShortCircuited: true,
				Reason:         fmt.Sprintf("critical attribute %q mismatch: %s vs %s", spec.Name, va.Raw, vb.Raw),
				Profile:        profile.Name,
				Breakdown:      []types.AttributeScore{{Name: spec.Name, Importance: spec.Importance, Raw: raw}},
			}
		}
	}

	// Weighted accumulation over every attribute present on both sides.
	var total, maxPossible float64
	for _, spec := range specs {
		va, okA := partA.Attribute(spec.Name)
		vb, okB := partB.Attribute(spec.Name)

		entry := types.AttributeScore{Name: spec.Name, Importance: spec.Importance}
		if !okA || !okB {
			// Non-critical missing values are skipped, not penalized.
			entry.Missing = true
			breakdown = append(breakdown, entry)
			continue
		}

		entry.Raw = metadata.PairScore(spec.Rule, va, vb)
		entry.Weight = spec.Importance.BaseWeight() * profile.Multiplier(spec.Importance)
		entry.Contribution = entry.Raw * entry.Weight
		total += entry.Contribution
		maxPossible += entry.Weight
		breakdown = append(breakdown, entry)
	}

	var score float64
	if maxPossible > 0 {
		score = total / maxPossible
	}

	// Documented equivalence earns a bounded bump. Never over a
	// short-circuit (handled above by early returns), always capped.
	if e.xref != nil && e.xref.IsEquivalent(partA.MPN, partB.MPN) {
		score += e.cfg.EquivalenceBonus
		if score > 1.0 {
			score = 1.0
		}
	}

	return types.SimilarityResult{
		Score:      score,
		Acceptable: score >= profile.MinimumScore,
		Profile:    profile.Name,
		Breakdown:  breakdown,
	}
}
