package provider

import (
	"github.com/dshills/partmatch-mcp/internal/pattern"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// tableRule is one (type, pattern source) row of a provider rule table.
type tableRule struct {
	Type   types.ComponentType
	Source string
}

// baseProvider carries the registry-facing plumbing shared by the builtin
// providers: the pattern table, prefix shortcuts, and the documented
// replacement pairs. Vendor-specific extraction lives in the embedding type.
type baseProvider struct {
	owner        types.RuleOwnerID
	rules        []tableRule
	prefixes     []types.PrefixRule
	supported    []types.ComponentType
	replacements pairSet
}

// OwnerID implements RuleProvider.
func (p *baseProvider) OwnerID() types.RuleOwnerID {
	return p.owner
}

// RegisterPatterns implements RuleProvider by registering the rule table in
// declaration order.
func (p *baseProvider) RegisterPatterns(r *Registrar) error {
	for _, rule := range p.rules {
		r.Add(rule.Type, rule.Source)
	}
	return nil
}

// SupportedTypes implements RuleProvider. The returned slice is a copy.
func (p *baseProvider) SupportedTypes() []types.ComponentType {
	out := make([]types.ComponentType, len(p.supported))
	copy(out, p.supported)
	return out
}

// Matches implements RuleProvider. Self-membership is decided from this
// owner's rules only; MatchesAny would let another provider's generic pattern
// override a negative judgment here.
func (p *baseProvider) Matches(mpn string, t types.ComponentType, reg *pattern.Registry) bool {
	return reg.MatchesOwner(types.NormalizeMPN(mpn), t, p.owner)
}

// IsOfficialReplacement implements RuleProvider over the documented pair set.
func (p *baseProvider) IsOfficialReplacement(mpnA, mpnB string) bool {
	return p.replacements.contains(types.NormalizeMPN(mpnA), types.NormalizeMPN(mpnB))
}

// PrefixRules implements RuleProvider. The returned slice is a copy.
func (p *baseProvider) PrefixRules() []types.PrefixRule {
	out := make([]types.PrefixRule, len(p.prefixes))
	copy(out, p.prefixes)
	return out
}
