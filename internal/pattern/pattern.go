package pattern

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dshills/partmatch-mcp/pkg/types"
)

// MatchRule is one compiled matching rule. Immutable once registered.
type MatchRule struct {
	Type    types.ComponentType
	Owner   types.RuleOwnerID
	Source  string
	pattern *regexp.Regexp
}

// Matches reports whether the rule's pattern matches the text.
func (r *MatchRule) Matches(text string) bool {
	return r.pattern.MatchString(text)
}

// Builder accumulates rules during the single-threaded build phase. It is an
// append-only store; Freeze transforms it into the immutable read-phase Registry.
type Builder struct {
	rules  []MatchRule
	frozen bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Register compiles and adds one rule. Empty or malformed pattern sources are
// rejected here so that a bad rule table fails fast instead of at match time.
// A rejected rule does not invalidate rules already registered.
func (b *Builder) Register(t types.ComponentType, owner types.RuleOwnerID, source string) error {
	if b.frozen {
		return fmt.Errorf("register %q for %s: builder is frozen", source, owner)
	}
	if t.IsUnknown() {
		return fmt.Errorf("%w: component type is required", types.ErrInvalidPattern)
	}
	if owner == "" {
		return fmt.Errorf("%w: rule owner is required", types.ErrInvalidPattern)
	}
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("%w: empty pattern source", types.ErrInvalidPattern)
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", types.ErrInvalidPattern, source, err)
	}

	b.rules = append(b.rules, MatchRule{
		Type:    t,
		Owner:   owner,
		Source:  source,
		pattern: re,
	})
	return nil
}

// Len returns the number of rules registered so far.
func (b *Builder) Len() int {
	return len(b.rules)
}

// Freeze converts the accumulated rules into an immutable Registry and marks the
// builder frozen. Call exactly once, after all providers have registered.
func (b *Builder) Freeze() *Registry {
	b.frozen = true

	byOwner := make(map[types.RuleOwnerID]map[types.ComponentType][]*MatchRule)
	byType := make(map[types.ComponentType][]*MatchRule)

	for i := range b.rules {
		r := &b.rules[i]
		ot, ok := byOwner[r.Owner]
		if !ok {
			ot = make(map[types.ComponentType][]*MatchRule)
			byOwner[r.Owner] = ot
		}
		ot[r.Type] = append(ot[r.Type], r)
		byType[r.Type] = append(byType[r.Type], r)
	}

	owners := make([]types.RuleOwnerID, 0, len(byOwner))
	for owner := range byOwner {
		owners = append(owners, owner)
	}
	// Owner order must be deterministic: resolver iteration and tie-breaking
	// depend on it. Map iteration order is never used for anything observable.
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })

	return &Registry{
		byOwner: byOwner,
		byType:  byType,
		owners:  owners,
	}
}

// Registry is the frozen, read-only rule store. Safe for concurrent use.
type Registry struct {
	byOwner map[types.RuleOwnerID]map[types.ComponentType][]*MatchRule
	byType  map[types.ComponentType][]*MatchRule
	owners  []types.RuleOwnerID
}

// MatchesAny reports whether ANY owner's pattern for the type matches the text.
func (r *Registry) MatchesAny(text string, t types.ComponentType) bool {
	for _, rule := range r.byType[t] {
		if rule.Matches(text) {
			return true
		}
	}
	return false
}

// MatchesOwner restricts matching to rules registered by the given owner.
func (r *Registry) MatchesOwner(text string, t types.ComponentType, owner types.RuleOwnerID) bool {
	for _, rule := range r.byOwner[owner][t] {
		if rule.Matches(text) {
			return true
		}
	}
	return false
}

// HasType reports whether any rule is registered for the type.
func (r *Registry) HasType(t types.ComponentType) bool {
	return len(r.byType[t]) > 0
}

// Owners returns all rule owners in deterministic (sorted) order. The returned
// slice is a copy.
func (r *Registry) Owners() []types.RuleOwnerID {
	out := make([]types.RuleOwnerID, len(r.owners))
	copy(out, r.owners)
	return out
}

// OwnerTypes returns the component types the owner registered rules for, in
// deterministic (sorted) order.
func (r *Registry) OwnerTypes(owner types.RuleOwnerID) []types.ComponentType {
	ot := r.byOwner[owner]
	out := make([]types.ComponentType, 0, len(ot))
	for t := range ot {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RuleCount returns the total number of registered rules.
func (r *Registry) RuleCount() int {
	n := 0
	for _, rules := range r.byType {
		n += len(rules)
	}
	return n
}
