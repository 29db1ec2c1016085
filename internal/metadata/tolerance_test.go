package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/partmatch-mcp/pkg/types"
)

func TestExactMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b types.AttributeValue
		want float64
	}{
		{"equal strings", types.StringValue("X7R"), types.StringValue("X7R"), 1.0},
		{"case normalized", types.StringValue("x7r"), types.StringValue("X7R"), 1.0},
		{"different strings", types.StringValue("N"), types.StringValue("P"), 0.0},
		{"equal numbers", types.NumericValue(10000), types.NumericValue(10000), 1.0},
		{"different numbers", types.NumericValue(10000), types.NumericValue(22000), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExactMatch{}.Score(tt.a, tt.b))
		})
	}
}

func TestPercentageTolerance(t *testing.T) {
	rule := PercentageTolerance{Pct: 0.05}

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"identical", 10000, 10000, 1.0},
		{"within tolerance", 10000, 9800, 1.0},
		{"at twice tolerance", 10000, 9000, 0.0},
		{"far beyond", 10000, 22000, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.Score(types.NumericValue(tt.a), types.NumericValue(tt.b))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	// Linear decay between p and 2p: 7.5% off with p=5% lands at 0.5.
	got := rule.Score(types.NumericValue(10000), types.NumericValue(9250))
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestMinimumRequired(t *testing.T) {
	rule := MinimumRequired{}

	// Candidate meets or exceeds the requirement: full score.
	assert.Equal(t, 1.0, rule.Score(types.NumericValue(60), types.NumericValue(60)))
	assert.Equal(t, 1.0, rule.Score(types.NumericValue(60), types.NumericValue(100)))

	// Shortfall decays and bottoms out at half the requirement.
	assert.InDelta(t, 0.5, rule.Score(types.NumericValue(60), types.NumericValue(45)), 1e-9)
	assert.Equal(t, 0.0, rule.Score(types.NumericValue(60), types.NumericValue(30)))
	assert.Equal(t, 0.0, rule.Score(types.NumericValue(60), types.NumericValue(10)))
}

func TestMaximumAllowed(t *testing.T) {
	rule := MaximumAllowed{}

	assert.Equal(t, 1.0, rule.Score(types.NumericValue(0.1), types.NumericValue(0.1)))
	assert.Equal(t, 1.0, rule.Score(types.NumericValue(0.1), types.NumericValue(0.05)))

	// Candidate worse than the limit decays, reaching 0 at double the limit.
	assert.Equal(t, 0.0, rule.Score(types.NumericValue(0.1), types.NumericValue(0.2)))
	assert.Greater(t, rule.Score(types.NumericValue(0.1), types.NumericValue(0.12)), 0.0)
}

func TestRangeOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b types.AttributeValue
		want float64
	}{
		{"identical ranges", types.RangeValue(2.7, 5.5), types.RangeValue(2.7, 5.5), 1.0},
		{"full containment", types.RangeValue(2.7, 5.5), types.RangeValue(1.8, 6.0), 1.0},
		{"half overlap", types.RangeValue(0, 10), types.RangeValue(5, 15), 0.5},
		{"disjoint", types.RangeValue(0, 5), types.RangeValue(6, 10), 0.0},
		{"scalar inside range", types.NumericValue(3.3), types.RangeValue(2.7, 5.5), 1.0},
		{"scalar outside range", types.NumericValue(12), types.RangeValue(2.7, 5.5), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RangeOverlap{}.Score(tt.a, tt.b), 1e-9)
		})
	}
}

func TestPairScore_SymmetricForAllRules(t *testing.T) {
	rules := []ToleranceRule{
		ExactMatch{},
		PercentageTolerance{Pct: 0.05},
		MinimumRequired{},
		MaximumAllowed{},
		RangeOverlap{},
	}

	pairs := [][2]types.AttributeValue{
		{types.NumericValue(60), types.NumericValue(30)},
		{types.NumericValue(30), types.NumericValue(60)},
		{types.NumericValue(10000), types.NumericValue(9500)},
		{types.RangeValue(0, 10), types.RangeValue(5, 15)},
		{types.StringValue("N"), types.StringValue("P")},
		{types.NumericValue(0.1), types.NumericValue(0.15)},
	}

	for _, rule := range rules {
		for _, p := range pairs {
			ab := PairScore(rule, p[0], p[1])
			ba := PairScore(rule, p[1], p[0])
			assert.Equal(t, ab, ba, "rule %s not symmetric for %v vs %v", rule.Name(), p[0], p[1])
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}

func TestPairScore_DirectionalRuleTakesWorseDirection(t *testing.T) {
	// 60V required vs 30V candidate is a hard downgrade in one direction; the
	// symmetric pair score must reflect the failing direction.
	got := PairScore(MinimumRequired{}, types.NumericValue(60), types.NumericValue(30))
	assert.Equal(t, 0.0, got)
}

func TestToleranceRules_NonNumericFallsBackToExact(t *testing.T) {
	a := types.StringValue("SOT-23")
	b := types.StringValue("SOT-23")
	c := types.StringValue("TO-220")

	for _, rule := range []ToleranceRule{PercentageTolerance{Pct: 0.05}, MinimumRequired{}, MaximumAllowed{}, RangeOverlap{}} {
		assert.Equal(t, 1.0, rule.Score(a, b), "rule %s", rule.Name())
		assert.Equal(t, 0.0, rule.Score(a, c), "rule %s", rule.Name())
	}
}
