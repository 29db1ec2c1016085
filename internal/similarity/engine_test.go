package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

func makePart(mpn string, t types.ComponentType, attrs map[string]types.AttributeValue) types.ResolvedPart {
	return types.ResolvedPart{
		MPN:        types.NormalizeMPN(mpn),
		Type:       t,
		Attributes: attrs,
	}
}

func resistorPart(mpn string, ohms, tolPct, watts float64, pkg string) types.ResolvedPart {
	return makePart(mpn, types.TypeResistor, map[string]types.AttributeValue{
		metadata.AttrResistance: types.NumericValue(ohms),
		metadata.AttrTolerance:  types.NumericValue(tolPct),
		metadata.AttrPower:      types.NumericValue(watts),
		metadata.AttrPackage:    types.StringValue(pkg),
	})
}

func mosfetPart(mpn, channel string, vds, id float64) types.ResolvedPart {
	return makePart(mpn, types.TypeMOSFET, map[string]types.AttributeValue{
		metadata.AttrChannel: types.StringValue(channel),
		metadata.AttrVdsMax:  types.NumericValue(vds),
		metadata.AttrIdMax:   types.NumericValue(id),
		metadata.AttrPackage: types.StringValue("TO-220"),
	})
}

func newEngine(xref CrossRef) *Engine {
	return New(metadata.NewBuiltinRegistry(), xref, DefaultConfig())
}

func TestCompare_IdenticalResistors(t *testing.T) {
	e := newEngine(nil)

	a := resistorPart("RC0805FR-0710KL", 10000, 5, 0.125, "0805")
	b := resistorPart("CRCW080510K0JNEA", 10000, 5, 0.125, "0805")

	res := e.Compare(a, b, metadata.ProfileReplacement)
	assert.False(t, res.ShortCircuited)
	assert.False(t, res.Unscored)
	assert.GreaterOrEqual(t, res.Score, 0.9)
	assert.True(t, res.Acceptable)
	assert.NotEmpty(t, res.Breakdown)
}

func TestCompare_ChannelMismatchIsCategorical(t *testing.T) {
	e := newEngine(nil)

	// Identical ratings, opposite polarity: never substitutable.
	n := mosfetPart("FQP30N06L", "N", 60, 30)
	p := mosfetPart("FQP27P06", "P", 60, 30)

	for _, profile := range metadata.Profiles() {
		res := e.Compare(n, p, profile)
		assert.Equal(t, 0.0, res.Score, "profile %s", profile.Name)
		assert.True(t, res.ShortCircuited)
		assert.False(t, res.Unscored)
		assert.Contains(t, res.Reason, metadata.AttrChannel)
	}
}

func TestCompare_VoltageDowngradeFailsCritical(t *testing.T) {
	e := newEngine(nil)

	// 60V requirement vs 30V candidate: vds_max is critical MinimumRequired
	// and the downgrade direction must fail regardless of argument order.
	big := mosfetPart("FQP30N06L", "N", 60, 30)
	small := mosfetPart("NTD4906N", "N", 30, 30)

	res := e.Compare(big, small, metadata.ProfileReplacement)
	assert.True(t, res.ShortCircuited)
	assert.Equal(t, 0.0, res.Score)

	swapped := e.Compare(small, big, metadata.ProfileReplacement)
	assert.Equal(t, res.Score, swapped.Score)
	assert.Equal(t, res.ShortCircuited, swapped.ShortCircuited)
}

func TestCompare_DifferentBaseTypesAlwaysZero(t *testing.T) {
	e := newEngine(nil)

	r := resistorPart("RC0805FR-0710KL", 10000, 5, 0.125, "0805")
	m := mosfetPart("FQP30N06L", "N", 60, 30)

	for _, profile := range metadata.Profiles() {
		res := e.Compare(r, m, profile)
		assert.Equal(t, 0.0, res.Score, "profile %s", profile.Name)
		assert.True(t, res.ShortCircuited)
		assert.Contains(t, res.Reason, "different component families")
	}
}

func TestCompare_Symmetric(t *testing.T) {
	e := newEngine(nil)

	pairs := [][2]types.ResolvedPart{
		{resistorPart("A", 10000, 5, 0.125, "0805"), resistorPart("B", 10200, 1, 0.25, "0805")},
		{mosfetPart("A", "N", 60, 30), mosfetPart("B", "N", 100, 20)},
		{resistorPart("A", 10000, 5, 0.125, "0805"), mosfetPart("B", "N", 60, 30)},
	}

	for _, profile := range metadata.Profiles() {
		for _, pair := range pairs {
			ab := e.Compare(pair[0], pair[1], profile)
			ba := e.Compare(pair[1], pair[0], profile)
			assert.Equal(t, ab.Score, ba.Score, "profile %s: %s vs %s", profile.Name, pair[0].MPN, pair[1].MPN)
			assert.Equal(t, ab.Acceptable, ba.Acceptable)
			assert.Equal(t, ab.ShortCircuited, ba.ShortCircuited)
		}
	}
}

func TestCompare_MissingCriticalIsCannotDetermine(t *testing.T) {
	e := newEngine(nil)

	full := mosfetPart("FQP30N06L", "N", 60, 30)
	bare := makePart("MYSTERYFET", types.TypeMOSFET, map[string]types.AttributeValue{
		metadata.AttrPackage: types.StringValue("TO-220"),
	})

	res := e.Compare(full, bare, metadata.ProfileEmergencySourcing)
	assert.Equal(t, DefaultLowSimilarityFloor, res.Score)
	assert.True(t, res.ShortCircuited)
	assert.False(t, res.Acceptable)
	assert.Contains(t, res.Reason, "cannot determine")
	require.NotEmpty(t, res.Breakdown)
	assert.True(t, res.Breakdown[0].Missing)
}

func TestCompare_MissingNonCriticalIsSkippedNotPenalized(t *testing.T) {
	e := newEngine(nil)

	a := resistorPart("A", 10000, 5, 0.125, "0805")
	b := makePart("B", types.TypeResistor, map[string]types.AttributeValue{
		metadata.AttrResistance: types.NumericValue(10000),
		metadata.AttrPackage:    types.StringValue("0805"),
		// tolerance and power absent
	})

	res := e.Compare(a, b, metadata.ProfileReplacement)
	assert.False(t, res.ShortCircuited)
	// Matching attributes all score 1.0; the absent ones must not drag the
	// normalized score down.
	assert.InDelta(t, 1.0, res.Score, 1e-9)

	var missing int
	for _, entry := range res.Breakdown {
		if entry.Missing {
			missing++
			assert.Zero(t, entry.Weight)
		}
	}
	assert.Equal(t, 2, missing)
}

func TestCompare_NoMetadataIsUnscored(t *testing.T) {
	e := New(metadata.NewRegistry(), nil, DefaultConfig()) // empty registry

	a := resistorPart("A", 10000, 5, 0.125, "0805")
	b := resistorPart("B", 10000, 5, 0.125, "0805")

	res := e.Compare(a, b, metadata.ProfileReplacement)
	assert.Equal(t, 0.0, res.Score)
	assert.True(t, res.Unscored)
	assert.False(t, res.Acceptable)
}

func TestCompare_BaseTypeFallbackForVariants(t *testing.T) {
	e := newEngine(nil)

	a := resistorPart("RC0805FR-0710KL", 10000, 1, 0.125, "0805")
	a.Type = types.TypeResistorYageoChip
	b := resistorPart("CRCW080510K0FKEA", 10000, 1, 0.125, "0805")
	b.Type = types.TypeResistorVishayChip

	// Neither variant has a direct entry; both fall back to the resistor
	// table and score normally.
	res := e.Compare(a, b, metadata.ProfileReplacement)
	assert.False(t, res.Unscored)
	assert.InDelta(t, 1.0, res.Score, 1e-9)
}

func TestCompare_EquivalenceBonus(t *testing.T) {
	xref := CrossRefFunc(func(a, b string) bool {
		return (a == "RC1" && b == "CR1") || (a == "CR1" && b == "RC1")
	})
	e := newEngine(xref)

	// Slightly imperfect match: bonus lifts but never exceeds 1.0.
	a := resistorPart("RC1", 10000, 5, 0.125, "0805")
	b := resistorPart("CR1", 10000, 1, 0.125, "0805")

	plain := newEngine(nil).Compare(a, b, metadata.ProfileReplacement)
	boosted := e.Compare(a, b, metadata.ProfileReplacement)
	assert.InDelta(t, plain.Score+DefaultEquivalenceBonus, boosted.Score, 1e-9)
	assert.LessOrEqual(t, boosted.Score, 1.0)

	// Perfect match stays capped at 1.0.
	perfect := e.Compare(a, resistorPart("CR1", 10000, 5, 0.125, "0805"), metadata.ProfileReplacement)
	assert.Equal(t, 1.0, perfect.Score)
}

func TestNew_ZeroConfigUsesDefaultPolicy(t *testing.T) {
	xref := CrossRefFunc(func(a, b string) bool { return true })
	e := New(metadata.NewBuiltinRegistry(), xref, Config{})

	// Zero-value config must mean the standard policy, bonus included: a
	// documented equivalent pair scores above the unassisted comparison.
	a := resistorPart("RC1", 10000, 5, 0.125, "0805")
	b := resistorPart("CR1", 10000, 1, 0.125, "0805")

	plain := New(metadata.NewBuiltinRegistry(), nil, Config{}).Compare(a, b, metadata.ProfileReplacement)
	boosted := e.Compare(a, b, metadata.ProfileReplacement)
	assert.InDelta(t, plain.Score+DefaultEquivalenceBonus, boosted.Score, 1e-9)

	// A config with any field set is taken as given: bonus deliberately off.
	muted := New(metadata.NewBuiltinRegistry(), xref, Config{CriticalThreshold: DefaultCriticalThreshold})
	assert.InDelta(t, plain.Score, muted.Compare(a, b, metadata.ProfileReplacement).Score, 1e-9)
}

func TestCompare_BonusNeverOverridesShortCircuit(t *testing.T) {
	xref := CrossRefFunc(func(a, b string) bool { return true })
	e := newEngine(xref)

	n := mosfetPart("N1", "N", 60, 30)
	p := mosfetPart("P1", "P", 60, 30)

	res := e.Compare(n, p, metadata.ProfileEmergencySourcing)
	assert.Equal(t, 0.0, res.Score, "equivalence bonus must not revive a critical mismatch")
	assert.True(t, res.ShortCircuited)
}

func TestCompare_ZeroIsVerbatim(t *testing.T) {
	e := newEngine(nil)

	n := mosfetPart("N1", "N", 60, 30)
	p := mosfetPart("P1", "P", 60, 30)

	incompatible := e.Compare(n, p, metadata.ProfileReplacement)
	unscored := New(metadata.NewRegistry(), nil, DefaultConfig()).Compare(n, p, metadata.ProfileReplacement)

	// Same numeric score, distinguishable outcomes.
	assert.Equal(t, incompatible.Score, unscored.Score)
	assert.True(t, incompatible.ShortCircuited)
	assert.False(t, incompatible.Unscored)
	assert.True(t, unscored.Unscored)
	assert.False(t, unscored.ShortCircuited)
}
