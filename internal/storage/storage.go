package storage

import (
	"context"
	"time"

	"github.com/dshills/partmatch-mcp/pkg/types"
)

// Storage persists cross-reference data and the classification audit trail.
type Storage interface {
	// Cross-reference operations
	AddCrossReference(ctx context.Context, xref *CrossReference) error
	ImportCrossReferences(ctx context.Context, xrefs []*CrossReference) (added int, err error)
	ListCrossReferences(ctx context.Context) ([]*CrossReference, error)
	DeleteCrossReference(ctx context.Context, mpnA, mpnB string) error

	// Audit operations
	RecordClassification(ctx context.Context, rec *ClassificationRecord) error
	ListClassifications(ctx context.Context, mpn string, limit int) ([]*ClassificationRecord, error)
	RecordComparison(ctx context.Context, rec *ComparisonRecord) error
	ListComparisons(ctx context.Context, limit int) ([]*ComparisonRecord, error)

	// Status operations
	GetStatus(ctx context.Context) (*StoreStatus, error)

	// Database operations
	Close() error
}

// CrossReference is one documented equivalent-part pair. MPNs are stored
// normalized and in canonical (lexicographic) order so a pair exists once
// regardless of insertion order.
type CrossReference struct {
	ID        int64
	MPNA      string
	MPNB      string
	Source    string // where the equivalence was documented, e.g. "vendor-xref"
	Note      string
	CreatedAt time.Time
}

// Canonicalize normalizes both MPNs and swaps them into canonical order.
func (x *CrossReference) Canonicalize() {
	x.MPNA = types.NormalizeMPN(x.MPNA)
	x.MPNB = types.NormalizeMPN(x.MPNB)
	if x.MPNA > x.MPNB {
		x.MPNA, x.MPNB = x.MPNB, x.MPNA
	}
}

// ClassificationRecord is one audit-trail entry for a classification.
type ClassificationRecord struct {
	ID           int64
	MPN          string
	Type         types.ComponentType
	Manufacturer types.RuleOwnerID
	PackageCode  string
	Series       string
	Tier         types.ConfidenceTier
	CreatedAt    time.Time
}

// ComparisonRecord is one audit-trail entry for a similarity comparison.
type ComparisonRecord struct {
	ID             int64
	MPNA           string
	MPNB           string
	Profile        string
	Score          float64
	Acceptable     bool
	ShortCircuited bool
	Unscored       bool
	Reason         string
	CreatedAt      time.Time
}

// StoreStatus contains statistics about the store.
type StoreStatus struct {
	DatabaseAccessible bool
	CrossReferences    int
	Classifications    int
	Comparisons        int
	SchemaVersion      string
	BuildMode          string
}

// FromResolvedPart builds an audit record for a resolved part.
func FromResolvedPart(part types.ResolvedPart, tier types.ConfidenceTier) *ClassificationRecord {
	return &ClassificationRecord{
		MPN:          part.MPN,
		Type:         part.Type,
		Manufacturer: part.Manufacturer,
		PackageCode:  part.PackageCode,
		Series:       part.Series,
		Tier:         tier,
	}
}

// FromSimilarityResult builds an audit record for a comparison result.
func FromSimilarityResult(mpnA, mpnB string, res types.SimilarityResult) *ComparisonRecord {
	return &ComparisonRecord{
		MPNA:           types.NormalizeMPN(mpnA),
		MPNB:           types.NormalizeMPN(mpnB),
		Profile:        res.Profile,
		Score:          res.Score,
		Acceptable:     res.Acceptable,
		ShortCircuited: res.ShortCircuited,
		Unscored:       res.Unscored,
		Reason:         res.Reason,
	}
}
