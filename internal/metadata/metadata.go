package metadata

import (
	"fmt"

	"github.com/dshills/partmatch-mcp/pkg/types"
)

// AttributeSpec declares how one logical attribute of a component type is
// compared: its name, its importance level, and its tolerance rule.
type AttributeSpec struct {
	Name       string
	Importance types.Importance
	Rule       ToleranceRule
}

// TypeMetadata bundles the ordered attribute specs for one component type plus
// the default comparison profile for that type.
type TypeMetadata struct {
	Type           types.ComponentType
	DefaultProfile SimilarityProfile

	specs []AttributeSpec
}

// NewTypeMetadata builds a TypeMetadata, enforcing unique attribute names and
// valid importance levels. Spec order is preserved: breakdowns report
// attributes in declaration order.
func NewTypeMetadata(t types.ComponentType, defaultProfile SimilarityProfile, specs ...AttributeSpec) (TypeMetadata, error) {
	if t.IsUnknown() {
		return TypeMetadata{}, fmt.Errorf("type metadata requires a component type")
	}
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.Name == "" {
			return TypeMetadata{}, fmt.Errorf("type metadata for %s: attribute name is required", t)
		}
		if seen[s.Name] {
			return TypeMetadata{}, fmt.Errorf("%w: %q in metadata for %s", types.ErrDuplicateAttribute, s.Name, t)
		}
		if err := s.Importance.Validate(); err != nil {
			return TypeMetadata{}, fmt.Errorf("attribute %q: %w", s.Name, err)
		}
		if s.Rule == nil {
			return TypeMetadata{}, fmt.Errorf("attribute %q: tolerance rule is required", s.Name)
		}
		seen[s.Name] = true
	}

	out := TypeMetadata{Type: t, DefaultProfile: defaultProfile}
	out.specs = append(out.specs, specs...)
	return out, nil
}

// MustTypeMetadata is NewTypeMetadata for static tables; it panics on invalid
// input, which can only happen from a programming error in a builtin table.
func MustTypeMetadata(t types.ComponentType, defaultProfile SimilarityProfile, specs ...AttributeSpec) TypeMetadata {
	md, err := NewTypeMetadata(t, defaultProfile, specs...)
	if err != nil {
		panic(fmt.Sprintf("invalid builtin metadata: %v", err))
	}
	return md
}

// Specs returns the attribute specs in declaration order. The returned slice
// is a copy.
func (m TypeMetadata) Specs() []AttributeSpec {
	out := make([]AttributeSpec, len(m.specs))
	copy(out, m.specs)
	return out
}

// Len returns the number of attribute specs.
func (m TypeMetadata) Len() int {
	return len(m.specs)
}

// Registry is the process-wide lookup from component type to TypeMetadata.
//
// Lifecycle: register everything at startup, then treat the registry as
// read-only. Lookups hold no locks; registration interleaved with active
// lookups is undefined behavior by contract.
type Registry struct {
	entries map[types.ComponentType]TypeMetadata
}

// NewRegistry creates an empty metadata registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[types.ComponentType]TypeMetadata)}
}

// Register installs metadata for its type, overwriting any existing entry
// wholesale. There is no partial merge.
func (r *Registry) Register(md TypeMetadata) {
	r.entries[md.Type] = md
}

// Get resolves metadata for the type, falling back one level at a time from a
// manufacturer-specific variant to its base type. Returns ok=false only when
// the root itself is unregistered.
func (r *Registry) Get(t types.ComponentType) (TypeMetadata, bool) {
	for {
		if md, ok := r.entries[t]; ok {
			return md, true
		}
		base := t.BaseType()
		if base == t {
			return TypeMetadata{}, false
		}
		t = base
	}
}

// Types returns the component types with a direct (non-fallback) entry.
func (r *Registry) Types() []types.ComponentType {
	out := make([]types.ComponentType, 0, len(r.entries))
	for t := range r.entries {
		out = append(out, t)
	}
	return out
}
