package metadata

import (
	"fmt"

	"github.com/dshills/partmatch-mcp/pkg/types"
)

// SimilarityProfile is a named strictness configuration: an acceptance
// threshold plus per-importance weighting multipliers in [0, 1].
type SimilarityProfile struct {
	Name         string
	MinimumScore float64

	multipliers map[types.Importance]float64
}

// Multiplier returns the profile's weighting multiplier for the importance
// level. Unknown levels weigh nothing.
func (p SimilarityProfile) Multiplier(imp types.Importance) float64 {
	return p.multipliers[imp]
}

// Canonical profile names.
const (
	ProfileNameDesignPhase        = "design-phase"
	ProfileNameReplacement        = "replacement"
	ProfileNamePerformanceUpgrade = "performance-upgrade"
	ProfileNameCostOptimization   = "cost-optimization"
	ProfileNameEmergencySourcing  = "emergency-sourcing"
)

// The five canonical profiles, strictly ordered by MinimumScore from most to
// least strict. The multiplier tables are policy constants from the original
// substitution rule set, not derived values.
var (
	ProfileDesignPhase = SimilarityProfile{
		Name:         ProfileNameDesignPhase,
		MinimumScore: 0.90,
		multipliers: map[types.Importance]float64{
			types.ImportanceCritical: 1.0,
			types.ImportanceHigh:     1.0,
			types.ImportanceMedium:   1.0,
			types.ImportanceLow:      1.0,
			types.ImportanceOptional: 0.5,
		},
	}

	ProfileReplacement = SimilarityProfile{
		Name:         ProfileNameReplacement,
		MinimumScore: 0.85,
		multipliers: map[types.Importance]float64{
			types.ImportanceCritical: 1.0,
			types.ImportanceHigh:     0.9,
			types.ImportanceMedium:   0.7,
			types.ImportanceLow:      0.5,
			types.ImportanceOptional: 0.2,
		},
	}

	ProfilePerformanceUpgrade = SimilarityProfile{
		Name:         ProfileNamePerformanceUpgrade,
		MinimumScore: 0.75,
		multipliers: map[types.Importance]float64{
			types.ImportanceCritical: 1.0,
			types.ImportanceHigh:     0.8,
			types.ImportanceMedium:   0.5,
			types.ImportanceLow:      0.2,
			types.ImportanceOptional: 0.0,
		},
	}

	ProfileCostOptimization = SimilarityProfile{
		Name:         ProfileNameCostOptimization,
		MinimumScore: 0.65,
		multipliers: map[types.Importance]float64{
			types.ImportanceCritical: 1.0,
			types.ImportanceHigh:     0.7,
			types.ImportanceMedium:   0.4,
			types.ImportanceLow:      0.1,
			types.ImportanceOptional: 0.0,
		},
	}

	ProfileEmergencySourcing = SimilarityProfile{
		Name:         ProfileNameEmergencySourcing,
		MinimumScore: 0.50,
		multipliers: map[types.Importance]float64{
			types.ImportanceCritical: 1.0,
			types.ImportanceHigh:     0.6,
			types.ImportanceMedium:   0.3,
			types.ImportanceLow:      0.1,
			types.ImportanceOptional: 0.0,
		},
	}
)

// Profiles returns the canonical profiles ordered from most to least strict.
func Profiles() []SimilarityProfile {
	return []SimilarityProfile{
		ProfileDesignPhase,
		ProfileReplacement,
		ProfilePerformanceUpgrade,
		ProfileCostOptimization,
		ProfileEmergencySourcing,
	}
}

// ProfileByName looks up a canonical profile.
func ProfileByName(name string) (SimilarityProfile, error) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, nil
		}
	}
	return SimilarityProfile{}, fmt.Errorf("%w: %q", types.ErrUnknownProfile, name)
}
