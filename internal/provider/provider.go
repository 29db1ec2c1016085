package provider

import (
	"fmt"
	"sort"

	"github.com/dshills/partmatch-mcp/internal/pattern"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// RuleProvider supplies one manufacturer's identification rules and extraction
// functions. Implementations must be stateless after construction; all methods
// are safe for concurrent use once the build phase is over.
type RuleProvider interface {
	// OwnerID is the provider's namespace in the pattern registry.
	OwnerID() types.RuleOwnerID

	// RegisterPatterns registers the provider's rules during the build phase.
	// Individual rule rejections are recorded by the registrar and do not
	// abort the build; the returned error is for failures that invalidate the
	// whole provider (e.g. an unloadable rule table).
	RegisterPatterns(r *Registrar) error

	// SupportedTypes lists the component types the provider registers rules
	// for, most specific first.
	SupportedTypes() []types.ComponentType

	// Matches reports whether the provider claims the MPN as the given type.
	// Must use reg.MatchesOwner with its own ID for self-membership checks.
	Matches(mpn string, t types.ComponentType, reg *pattern.Registry) bool

	// ExtractPackageCode returns the physical package encoded in the MPN, or
	// empty when not derivable.
	ExtractPackageCode(mpn string) string

	// ExtractSeries returns the product series encoded in the MPN, or empty.
	ExtractSeries(mpn string) string

	// ExtractAttributes returns the electrical attributes derivable from the
	// MPN for the given type, keyed by metadata attribute name.
	ExtractAttributes(mpn string, t types.ComponentType) map[string]types.AttributeValue

	// IsOfficialReplacement reports whether the provider documents mpnB as an
	// official replacement for mpnA (or vice versa).
	IsOfficialReplacement(mpnA, mpnB string) bool

	// PrefixRules returns the provider's high-confidence literal-prefix
	// shortcuts, in priority order.
	PrefixRules() []types.PrefixRule
}

// RuleError records one rejected rule from the build phase.
type RuleError struct {
	Owner types.RuleOwnerID
	Err   error
}

func (e RuleError) Error() string {
	return fmt.Sprintf("owner %s: %v", e.Owner, e.Err)
}

func (e RuleError) Unwrap() error { return e.Err }

// BuildReport summarizes one registry build phase. Rejected rules are surfaced
// here so the caller running the build can log or fail on them as it sees fit.
type BuildReport struct {
	Providers  int
	Rules      int
	RuleErrors []RuleError
}

// Registrar is the owner-scoped registration handle handed to a provider
// during the build phase. Rule rejections are recorded, not propagated, so one
// bad pattern cannot halt the rest of a provider's table.
type Registrar struct {
	b      *pattern.Builder
	owner  types.RuleOwnerID
	report *BuildReport
}

// Add registers one rule under the registrar's owner.
func (r *Registrar) Add(t types.ComponentType, source string) {
	if err := r.b.Register(t, r.owner, source); err != nil {
		r.report.RuleErrors = append(r.report.RuleErrors, RuleError{Owner: r.owner, Err: err})
	}
}

// Build runs the registration phase over the providers in a deterministic
// order (sorted by owner ID, regardless of input order) and freezes the
// result. Per-rule failures are collected in the report and do not abort the
// build; a provider-level failure does abort, since it means a rule table
// could not be loaded at all.
func Build(providers []RuleProvider) (*pattern.Registry, *BuildReport, error) {
	ordered := sortedByOwner(providers)

	report := &BuildReport{Providers: len(ordered)}
	b := pattern.NewBuilder()
	for _, p := range ordered {
		reg := &Registrar{b: b, owner: p.OwnerID(), report: report}
		if err := p.RegisterPatterns(reg); err != nil {
			return nil, report, fmt.Errorf("provider %s: %w", p.OwnerID(), err)
		}
	}

	frozen := b.Freeze()
	report.Rules = frozen.RuleCount()
	return frozen, report, nil
}

// Shortcuts collects the providers' prefix rules in deterministic owner order,
// preserving each provider's internal priority order.
func Shortcuts(providers []RuleProvider) []types.PrefixRule {
	var out []types.PrefixRule
	for _, p := range sortedByOwner(providers) {
		out = append(out, p.PrefixRules()...)
	}
	return out
}

// ByOwner indexes providers by owner ID.
func ByOwner(providers []RuleProvider) map[types.RuleOwnerID]RuleProvider {
	out := make(map[types.RuleOwnerID]RuleProvider, len(providers))
	for _, p := range providers {
		out[p.OwnerID()] = p
	}
	return out
}

func sortedByOwner(providers []RuleProvider) []RuleProvider {
	out := make([]RuleProvider, len(providers))
	copy(out, providers)
	sort.Slice(out, func(i, j int) bool { return out[i].OwnerID() < out[j].OwnerID() })
	return out
}

// Builtin returns the built-in manufacturer providers.
func Builtin() []RuleProvider {
	return []RuleProvider{
		NewYageo(),
		NewVishay(),
		NewOnsemi(),
		NewTI(),
		NewMicrochip(),
		NewMurata(),
	}
}
