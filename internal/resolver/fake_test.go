package resolver

import (
	"github.com/dshills/partmatch-mcp/internal/pattern"
	"github.com/dshills/partmatch-mcp/internal/provider"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// fakeProvider is a minimal RuleProvider for second-source and ordering tests:
// one specific type plus its generic base, both matched by the same pattern.
type fakeProvider struct {
	owner    types.RuleOwnerID
	specific types.ComponentType
	source   string
}

func newFakeProvider(owner types.RuleOwnerID, specific types.ComponentType, source string) *fakeProvider {
	return &fakeProvider{owner: owner, specific: specific, source: source}
}

func (f *fakeProvider) OwnerID() types.RuleOwnerID { return f.owner }

func (f *fakeProvider) RegisterPatterns(r *provider.Registrar) error {
	r.Add(f.specific, f.source)
	r.Add(f.specific.BaseType(), f.source)
	return nil
}

func (f *fakeProvider) SupportedTypes() []types.ComponentType {
	return []types.ComponentType{f.specific, f.specific.BaseType()}
}

func (f *fakeProvider) Matches(mpn string, t types.ComponentType, reg *pattern.Registry) bool {
	return reg.MatchesOwner(types.NormalizeMPN(mpn), t, f.owner)
}

func (f *fakeProvider) ExtractPackageCode(string) string { return "" }
func (f *fakeProvider) ExtractSeries(string) string      { return "" }

func (f *fakeProvider) ExtractAttributes(string, types.ComponentType) map[string]types.AttributeValue {
	return nil
}

func (f *fakeProvider) IsOfficialReplacement(string, string) bool { return false }
func (f *fakeProvider) PrefixRules() []types.PrefixRule           { return nil }
