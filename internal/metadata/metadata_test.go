package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/partmatch-mcp/pkg/types"
)

func TestNewTypeMetadata_RejectsDuplicateNames(t *testing.T) {
	_, err := NewTypeMetadata(types.TypeResistor, ProfileReplacement,
		AttributeSpec{AttrResistance, types.ImportanceCritical, ExactMatch{}},
		AttributeSpec{AttrResistance, types.ImportanceHigh, ExactMatch{}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDuplicateAttribute)
}

func TestNewTypeMetadata_RejectsInvalidSpecs(t *testing.T) {
	_, err := NewTypeMetadata(types.TypeResistor, ProfileReplacement,
		AttributeSpec{"", types.ImportanceCritical, ExactMatch{}},
	)
	assert.Error(t, err)

	_, err = NewTypeMetadata(types.TypeResistor, ProfileReplacement,
		AttributeSpec{AttrResistance, types.Importance("weird"), ExactMatch{}},
	)
	assert.ErrorIs(t, err, types.ErrInvalidImportance)

	_, err = NewTypeMetadata(types.TypeResistor, ProfileReplacement,
		AttributeSpec{AttrResistance, types.ImportanceCritical, nil},
	)
	assert.Error(t, err)

	_, err = NewTypeMetadata(types.TypeUnknown, ProfileReplacement)
	assert.Error(t, err)
}

func TestTypeMetadata_PreservesSpecOrder(t *testing.T) {
	md, err := NewTypeMetadata(types.TypeMOSFET, ProfileReplacement,
		AttributeSpec{AttrChannel, types.ImportanceCritical, ExactMatch{}},
		AttributeSpec{AttrVdsMax, types.ImportanceCritical, MinimumRequired{}},
		AttributeSpec{AttrIdMax, types.ImportanceHigh, MinimumRequired{}},
	)
	require.NoError(t, err)

	specs := md.Specs()
	require.Len(t, specs, 3)
	assert.Equal(t, AttrChannel, specs[0].Name)
	assert.Equal(t, AttrVdsMax, specs[1].Name)
	assert.Equal(t, AttrIdMax, specs[2].Name)
}

func TestRegistry_BaseTypeFallback(t *testing.T) {
	r := NewRegistry()
	base := MustTypeMetadata(types.TypeResistor, ProfileReplacement,
		AttributeSpec{AttrResistance, types.ImportanceCritical, ExactMatch{}},
	)
	r.Register(base)

	// No direct entry for the variant: lookup falls back to the root.
	md, ok := r.Get(types.TypeResistorYageoChip)
	require.True(t, ok)
	assert.Equal(t, types.TypeResistor, md.Type)

	// Direct entry wins over fallback.
	variant := MustTypeMetadata(types.TypeResistorYageoChip, ProfileReplacement,
		AttributeSpec{AttrResistance, types.ImportanceCritical, PercentageTolerance{Pct: 0.01}},
		AttributeSpec{AttrPackage, types.ImportanceHigh, ExactMatch{}},
	)
	r.Register(variant)
	md, ok = r.Get(types.TypeResistorYageoChip)
	require.True(t, ok)
	assert.Equal(t, types.TypeResistorYageoChip, md.Type)
	assert.Equal(t, 2, md.Len())
}

func TestRegistry_UnregisteredRoot(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get(types.TypeInductor)
	assert.False(t, ok)
	_, ok = r.Get(types.ComponentType("inductor.vendor-x"))
	assert.False(t, ok)
}

func TestRegistry_RegisterOverwritesWholesale(t *testing.T) {
	r := NewRegistry()
	r.Register(MustTypeMetadata(types.TypeResistor, ProfileReplacement,
		AttributeSpec{AttrResistance, types.ImportanceCritical, ExactMatch{}},
		AttributeSpec{AttrPower, types.ImportanceHigh, MinimumRequired{}},
	))
	r.Register(MustTypeMetadata(types.TypeResistor, ProfileDesignPhase,
		AttributeSpec{AttrResistance, types.ImportanceCritical, PercentageTolerance{Pct: 0.01}},
	))

	md, ok := r.Get(types.TypeResistor)
	require.True(t, ok)
	// No partial merge: the second registration replaced the whole bundle.
	assert.Equal(t, 1, md.Len())
	assert.Equal(t, ProfileNameDesignPhase, md.DefaultProfile.Name)
}

func TestBaseWeights(t *testing.T) {
	assert.Equal(t, 1.0, types.ImportanceCritical.BaseWeight())
	assert.Equal(t, 0.7, types.ImportanceHigh.BaseWeight())
	assert.Equal(t, 0.4, types.ImportanceMedium.BaseWeight())
	assert.Equal(t, 0.2, types.ImportanceLow.BaseWeight())
	assert.Equal(t, 0.0, types.ImportanceOptional.BaseWeight())

	assert.True(t, types.ImportanceCritical.Mandatory())
	assert.False(t, types.ImportanceHigh.Mandatory())
}

func TestProfiles_StrictlyOrdered(t *testing.T) {
	profiles := Profiles()
	require.Len(t, profiles, 5)
	for i := 1; i < len(profiles); i++ {
		assert.Greater(t, profiles[i-1].MinimumScore, profiles[i].MinimumScore,
			"%s must be stricter than %s", profiles[i-1].Name, profiles[i].Name)
	}
}

func TestProfiles_MultipliersBounded(t *testing.T) {
	levels := []types.Importance{
		types.ImportanceCritical,
		types.ImportanceHigh,
		types.ImportanceMedium,
		types.ImportanceLow,
		types.ImportanceOptional,
	}
	for _, p := range Profiles() {
		for _, lvl := range levels {
			m := p.Multiplier(lvl)
			assert.GreaterOrEqual(t, m, 0.0, "%s/%s", p.Name, lvl)
			assert.LessOrEqual(t, m, 1.0, "%s/%s", p.Name, lvl)
		}
	}
}

func TestProfileByName(t *testing.T) {
	p, err := ProfileByName(ProfileNameEmergencySourcing)
	require.NoError(t, err)
	assert.Equal(t, 0.50, p.MinimumScore)

	_, err = ProfileByName("frugal")
	assert.ErrorIs(t, err, types.ErrUnknownProfile)
}

func TestBuiltinMetadata_CoversRootTypes(t *testing.T) {
	r := NewBuiltinRegistry()
	for _, typ := range []types.ComponentType{
		types.TypeResistor,
		types.TypeCapacitor,
		types.TypeMOSFET,
		types.TypeDiode,
		types.TypeMicrocontroller,
		types.TypeOpAmp,
	} {
		md, ok := r.Get(typ)
		require.True(t, ok, "missing builtin metadata for %s", typ)
		assert.Greater(t, md.Len(), 0)
	}
}
