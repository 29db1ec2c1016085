package resolver

import (
	"sort"
	"strings"

	"github.com/dshills/partmatch-mcp/internal/pattern"
	"github.com/dshills/partmatch-mcp/internal/provider"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// Specificity scoring constants. Empirically tuned policy inputs carried over
// from the original rule set; override them through Config, do not derive them.
const (
	DefaultSpecificBonus  = 150
	DefaultGenericPenalty = -50
)

// Config holds the resolver's scoring policy.
type Config struct {
	// SpecificBonus is the score for a manufacturer-specific variant match.
	SpecificBonus int

	// GenericPenalty is the score for a generic/base type match. Negative:
	// generic matches lose to specific ones and rank below shortcut hits.
	GenericPenalty int
}

// DefaultConfig returns the standard scoring policy.
func DefaultConfig() Config {
	return Config{
		SpecificBonus:  DefaultSpecificBonus,
		GenericPenalty: DefaultGenericPenalty,
	}
}

// Resolver picks the best (manufacturer, component type) pair for an MPN.
// Immutable after construction; safe for concurrent use.
type Resolver struct {
	registry  *pattern.Registry
	providers map[types.RuleOwnerID]provider.RuleProvider
	owners    []types.RuleOwnerID // deterministic scan order
	shortcuts []types.PrefixRule
	cfg       Config
}

// New creates a Resolver over a frozen registry. The shortcut list is checked
// in the order given. Owner scan order comes from the registry's sorted owner
// list, never from map iteration. A zero-value cfg means the standard policy.
func New(reg *pattern.Registry, providers []provider.RuleProvider, shortcuts []types.PrefixRule, cfg Config) *Resolver {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return &Resolver{
		registry:  reg,
		providers: provider.ByOwner(providers),
		owners:    reg.Owners(),
		shortcuts: shortcuts,
		cfg:       cfg,
	}
}

// Classify resolves the single best classification for the MPN, or an Unknown
// ResolvedPart when no rule matches. Pure function over the frozen registries.
func (r *Resolver) Classify(mpn string) types.ResolvedPart {
	norm := types.NormalizeMPN(mpn)
	if norm == "" {
		return types.ResolvedPart{MPN: norm}
	}

	candidates := r.rank(norm)
	if len(candidates) == 0 {
		return types.ResolvedPart{MPN: norm}
	}
	return r.resolve(norm, candidates[0])
}

// ClassifyAll resolves every (owner, type) candidate for the MPN, ordered by
// the same shortcut and specificity ranking Classify uses and tiered by
// confidence. Needed for second-sourced parts that legitimately match more
// than one manufacturer.
func (r *Resolver) ClassifyAll(mpn string) []types.Candidate {
	norm := types.NormalizeMPN(mpn)
	if norm == "" {
		return nil
	}
	return r.rank(norm)
}

// resolve builds the immutable ResolvedPart for a ranked candidate using the
// owning provider's extraction functions.
func (r *Resolver) resolve(norm string, c types.Candidate) types.ResolvedPart {
	part := types.ResolvedPart{
		MPN:          norm,
		Type:         c.Type,
		Manufacturer: c.Owner,
	}
	if p, ok := r.providers[c.Owner]; ok {
		part.PackageCode = p.ExtractPackageCode(norm)
		part.Series = p.ExtractSeries(norm)
		part.Attributes = p.ExtractAttributes(norm, c.Type)
	}
	return part
}

// rank produces the ordered candidate list: shortcut hits first, then pattern
// matches by specificity score, ties broken by owner order then type name.
func (r *Resolver) rank(norm string) []types.Candidate {
	var out []types.Candidate
	seen := make(map[types.RuleOwnerID]map[types.ComponentType]bool)

	mark := func(owner types.RuleOwnerID, t types.ComponentType) {
		ot, ok := seen[owner]
		if !ok {
			ot = make(map[types.ComponentType]bool)
			seen[owner] = ot
		}
		ot[t] = true
	}

	// Stage 1: shortcut prefixes, in list order. The first hit is the
	// definitive top candidate; later shortcuts still contribute candidates
	// for ClassifyAll callers.
	for _, sc := range r.shortcuts {
		if !strings.HasPrefix(norm, sc.Prefix) || seen[sc.Owner][sc.Type] {
			continue
		}
		mark(sc.Owner, sc.Type)
		out = append(out, types.Candidate{
			Owner: sc.Owner,
			Type:  sc.Type,
			Tier:  types.TierHigh,
			Score: r.cfg.SpecificBonus,
		})
	}

	// Stage 2: deterministic owner-ordered scan. Each provider is consulted
	// through its own namespace only.
	var scanned []types.Candidate
	for _, owner := range r.owners {
		p, ok := r.providers[owner]
		if !ok {
			continue
		}
		for _, t := range r.registry.OwnerTypes(owner) {
			if seen[owner][t] || !p.Matches(norm, t, r.registry) {
				continue
			}
			mark(owner, t)

			c := types.Candidate{Owner: owner, Type: t}
			if t.IsSpecific() {
				c.Score = r.cfg.SpecificBonus
				c.Tier = types.TierMedium
			} else {
				c.Score = r.cfg.GenericPenalty
				c.Tier = types.TierLow
			}
			scanned = append(scanned, c)
		}
	}

	// Scanned candidates order by score descending; the input order already
	// encodes the owner/type tie-break, and SliceStable preserves it.
	sort.SliceStable(scanned, func(i, j int) bool { return scanned[i].Score > scanned[j].Score })

	return append(out, scanned...)
}
