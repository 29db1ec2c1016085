package classifier

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/internal/provider"
	"github.com/dshills/partmatch-mcp/internal/resolver"
	"github.com/dshills/partmatch-mcp/internal/similarity"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// DefaultCacheSize is the resolved-part memo capacity. BOM runs hit the same
// handful of jellybean parts over and over, so even a modest cache carries
// most of the load.
const DefaultCacheSize = 4096

// Options configures a Classifier. The zero value gives the built-in
// providers, the built-in metadata tables, and default scoring policy.
type Options struct {
	// Providers supplies the rule providers. Nil means provider.Builtin().
	Providers []provider.RuleProvider

	// Metadata supplies the scoring tables. Nil means the built-in tables.
	Metadata *metadata.Registry

	// CrossRefs are extra equivalence sources consulted in addition to the
	// providers' documented replacement lists.
	CrossRefs []similarity.CrossRef

	ResolverConfig resolver.Config
	EngineConfig   similarity.Config

	// CacheSize bounds the resolved-part memo. Zero means DefaultCacheSize.
	CacheSize int
}

// Classifier ties the pattern registry, resolver and similarity engine
// together behind the two operations callers actually want: classify an MPN
// and compare two MPNs.
type Classifier struct {
	resolver  *resolver.Resolver
	engine    *similarity.Engine
	meta      *metadata.Registry
	providers []provider.RuleProvider
	report    *provider.BuildReport
	cache     *lru.Cache[string, types.ResolvedPart]
}

// Status is a point-in-time snapshot for health reporting.
type Status struct {
	Providers     int `json:"providers"`
	Rules         int `json:"rules"`
	RuleErrors    int `json:"rule_errors"`
	MetadataTypes int `json:"metadata_types"`
	CachedParts   int `json:"cached_parts"`
}

// New builds a Classifier: registers every provider's patterns, freezes the
// registry, and wires the resolver and engine over it. Individual bad rules
// are recorded in the returned BuildReport rather than failing the build;
// only a structural failure (duplicate freeze, nil provider) returns an error.
func New(opts Options) (*Classifier, error) {
	providers := opts.Providers
	if providers == nil {
		providers = provider.Builtin()
	}
	meta := opts.Metadata
	if meta == nil {
		meta = metadata.NewBuiltinRegistry()
	}
	cacheSize := opts.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	registry, report, err := provider.Build(providers)
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern registry: %w", err)
	}

	cache, err := lru.New[string, types.ResolvedPart](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification cache: %w", err)
	}

	xref := make(multiCrossRef, 0, len(opts.CrossRefs)+1)
	xref = append(xref, providerCrossRef{providers: providers})
	xref = append(xref, opts.CrossRefs...)

	return &Classifier{
		resolver:  resolver.New(registry, providers, provider.Shortcuts(providers), opts.ResolverConfig),
		engine:    similarity.New(meta, xref, opts.EngineConfig),
		meta:      meta,
		providers: providers,
		report:    report,
		cache:     cache,
	}, nil
}

// Classify resolves the best classification for the MPN. Blank input is a
// caller error; an MPN no rule recognizes is not, it resolves to an Unknown
// part.
func (c *Classifier) Classify(mpn string) (types.ResolvedPart, error) {
	norm := types.NormalizeMPN(mpn)
	if norm == "" {
		return types.ResolvedPart{}, fmt.Errorf("%w: empty MPN", types.ErrMalformedInput)
	}

	if part, ok := c.cache.Get(norm); ok {
		return part, nil
	}

	part := c.resolver.Classify(norm)
	c.cache.Add(norm, part)
	return part, nil
}

// ClassifyAll returns every candidate classification for the MPN, ranked.
func (c *Classifier) ClassifyAll(mpn string) ([]types.Candidate, error) {
	norm := types.NormalizeMPN(mpn)
	if norm == "" {
		return nil, fmt.Errorf("%w: empty MPN", types.ErrMalformedInput)
	}
	return c.resolver.ClassifyAll(norm), nil
}

// Compare classifies both MPNs and scores them under the named profile.
func (c *Classifier) Compare(mpnA, mpnB, profileName string) (types.SimilarityResult, error) {
	profile, err := metadata.ProfileByName(profileName)
	if err != nil {
		return types.SimilarityResult{}, err
	}

	partA, err := c.Classify(mpnA)
	if err != nil {
		return types.SimilarityResult{}, err
	}
	partB, err := c.Classify(mpnB)
	if err != nil {
		return types.SimilarityResult{}, err
	}

	return c.engine.Compare(partA, partB, profile), nil
}

// CompareResolved scores two already-resolved parts. Used when the caller has
// enriched attributes beyond what classification extracts.
func (c *Classifier) CompareResolved(a, b types.ResolvedPart, profile metadata.SimilarityProfile) types.SimilarityResult {
	return c.engine.Compare(a, b, profile)
}

// Report returns the registry build report, including per-rule rejections.
func (c *Classifier) Report() *provider.BuildReport {
	return c.report
}

// Status reports registry and cache statistics.
func (c *Classifier) Status() Status {
	return Status{
		Providers:     c.report.Providers,
		Rules:         c.report.Rules,
		RuleErrors:    len(c.report.RuleErrors),
		MetadataTypes: len(c.meta.Types()),
		CachedParts:   c.cache.Len(),
	}
}
