package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/internal/pattern"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

func buildBuiltin(t *testing.T) *pattern.Registry {
	t.Helper()
	reg, report, err := Build(Builtin())
	require.NoError(t, err)
	require.Empty(t, report.RuleErrors, "builtin rule tables must all compile")
	return reg
}

func TestBuild_RegistersAllProviders(t *testing.T) {
	reg, report, err := Build(Builtin())
	require.NoError(t, err)
	assert.Equal(t, 6, report.Providers)
	assert.Greater(t, report.Rules, 0)
	assert.Equal(t, []types.RuleOwnerID{"microchip", "murata", "onsemi", "ti", "vishay", "yageo"}, reg.Owners())
}

func TestBuiltinProviders_ClaimTheirOwnParts(t *testing.T) {
	reg := buildBuiltin(t)
	byOwner := ByOwner(Builtin())

	tests := []struct {
		owner types.RuleOwnerID
		mpn   string
		typ   types.ComponentType
	}{
		{"yageo", "RC0805FR-0710KL", types.TypeResistorYageoChip},
		{"yageo", "CC0805KRX7R9BB104", types.TypeCapacitorYageoMLCC},
		{"vishay", "CRCW080510K0FKEA", types.TypeResistorVishayChip},
		{"vishay", "SI2302CDS-T1-GE3", types.TypeMOSFETVishay},
		{"onsemi", "FQP30N06L", types.TypeMOSFETOnsemi},
		{"onsemi", "1N4148", types.TypeDiodeOnsemi},
		{"ti", "MSP430G2553IPW20R", types.TypeMicrocontrollerMSP430},
		{"ti", "LM358D", types.TypeOpAmpTI},
		{"microchip", "PIC16F877A-I/P", types.TypeMicrocontrollerPIC},
		{"microchip", "ATMEGA328P-PU", types.TypeMicrocontrollerAVR},
		{"murata", "GRM21BR71H104KA01L", types.TypeCapacitorMurataMLCC},
	}

	for _, tt := range tests {
		t.Run(string(tt.owner)+"/"+tt.mpn, func(t *testing.T) {
			p := byOwner[tt.owner]
			require.NotNil(t, p)
			assert.True(t, p.Matches(tt.mpn, tt.typ, reg),
				"%s should claim %s as %s", tt.owner, tt.mpn, tt.typ)
		})
	}
}

func TestBuiltinProviders_NoDoubleClaim(t *testing.T) {
	// TI and Microchip both register patterns under the shared generic
	// "microcontroller" type. Each must claim only its own parts through it.
	reg := buildBuiltin(t)
	byOwner := ByOwner(Builtin())

	ti := byOwner["ti"]
	microchip := byOwner["microchip"]

	assert.True(t, microchip.Matches("PIC16F877A-I/P", types.TypeMicrocontroller, reg))
	assert.False(t, ti.Matches("PIC16F877A-I/P", types.TypeMicrocontroller, reg),
		"ti must not claim a PIC part even though the generic type has a matching pattern")

	assert.True(t, ti.Matches("MSP430G2553IPW20R", types.TypeMicrocontroller, reg))
	assert.False(t, microchip.Matches("MSP430G2553IPW20R", types.TypeMicrocontroller, reg))
}

func TestYageo_ResistorExtraction(t *testing.T) {
	p := NewYageo()
	attrs := p.ExtractAttributes("RC0805FR-0710KL", types.TypeResistorYageoChip)
	require.NotNil(t, attrs)

	assert.Equal(t, 10000.0, attrs[metadata.AttrResistance].Num)
	assert.Equal(t, 1.0, attrs[metadata.AttrTolerance].Num)
	assert.Equal(t, 0.125, attrs[metadata.AttrPower].Num)
	assert.Equal(t, "0805", attrs[metadata.AttrPackage].Raw)
	assert.Equal(t, "0805", p.ExtractPackageCode("RC0805FR-0710KL"))
	assert.Equal(t, "RC", p.ExtractSeries("RC0805FR-0710KL"))
}

func TestVishay_ResistorExtraction(t *testing.T) {
	p := NewVishay()
	attrs := p.ExtractAttributes("CRCW080510K0FKEA", types.TypeResistorVishayChip)
	require.NotNil(t, attrs)

	assert.Equal(t, 10000.0, attrs[metadata.AttrResistance].Num)
	assert.Equal(t, 1.0, attrs[metadata.AttrTolerance].Num)
	assert.Equal(t, "0805", attrs[metadata.AttrPackage].Raw)
}

func TestVishay_MOSFETTableLookup(t *testing.T) {
	p := NewVishay()

	// Reel and lead-finish suffixes resolve to the same die.
	plain := p.ExtractAttributes("SI2302CDS", types.TypeMOSFETVishay)
	reel := p.ExtractAttributes("SI2302CDS-T1-GE3", types.TypeMOSFETVishay)
	require.NotNil(t, plain)
	assert.Equal(t, plain, reel)
	assert.Equal(t, "N", plain[metadata.AttrChannel].Raw)
	assert.Equal(t, 20.0, plain[metadata.AttrVdsMax].Num)
}

func TestOnsemi_MOSFETChannels(t *testing.T) {
	p := NewOnsemi()

	n := p.ExtractAttributes("FQP30N06L", types.TypeMOSFETOnsemi)
	require.NotNil(t, n)
	assert.Equal(t, "N", n[metadata.AttrChannel].Raw)
	assert.Equal(t, 60.0, n[metadata.AttrVdsMax].Num)

	pch := p.ExtractAttributes("FQP27P06", types.TypeMOSFETOnsemi)
	require.NotNil(t, pch)
	assert.Equal(t, "P", pch[metadata.AttrChannel].Raw)
	assert.Equal(t, 60.0, pch[metadata.AttrVdsMax].Num)
}

func TestTI_OpAmpPackages(t *testing.T) {
	p := NewTI()
	assert.Equal(t, "SOIC-8", p.ExtractPackageCode("LM358D"))
	assert.Equal(t, "PDIP-8", p.ExtractPackageCode("LM358P"))

	attrs := p.ExtractAttributes("OPA2340UA", types.TypeOpAmpTI)
	require.NotNil(t, attrs)
	assert.Equal(t, 2.0, attrs[metadata.AttrChannels].Num)
	lo, hi, ok := attrs[metadata.AttrSupplyRange].Bounds()
	require.True(t, ok)
	assert.Equal(t, 2.7, lo)
	assert.Equal(t, 5.5, hi)
}

func TestMicrochip_SuffixSplit(t *testing.T) {
	p := NewMicrochip()

	assert.Equal(t, "PDIP", p.ExtractPackageCode("PIC16F877A-I/P"))
	assert.Equal(t, "PDIP", p.ExtractPackageCode("ATMEGA328P-PU"))
	assert.Equal(t, "TQFP", p.ExtractPackageCode("ATMEGA328P-AU"))

	attrs := p.ExtractAttributes("ATMEGA328P-PU", types.TypeMicrocontrollerAVR)
	require.NotNil(t, attrs)
	assert.Equal(t, "AVR", attrs[metadata.AttrCore].Raw)
	assert.Equal(t, 32.0, attrs[metadata.AttrFlash].Num)
}

func TestMurata_GRMDecoding(t *testing.T) {
	p := NewMurata()
	attrs := p.ExtractAttributes("GRM21BR71H104KA01L", types.TypeCapacitorMurataMLCC)
	require.NotNil(t, attrs)

	assert.Equal(t, "0805", attrs[metadata.AttrPackage].Raw)
	assert.Equal(t, "X7R", attrs[metadata.AttrDielectric].Raw)
	assert.Equal(t, 50.0, attrs[metadata.AttrVoltage].Num)
	assert.InDelta(t, 100e-9, attrs[metadata.AttrCapacitance].Num, 1e-12)
	assert.Equal(t, 10.0, attrs[metadata.AttrTolerance].Num)
}

func TestIsOfficialReplacement_OrderInsensitive(t *testing.T) {
	p := NewYageo()
	assert.True(t, p.IsOfficialReplacement("RC0805FR-0710KL", "CRCW080510K0FKEA"))
	assert.True(t, p.IsOfficialReplacement("CRCW080510K0FKEA", "RC0805FR-0710KL"))
	assert.False(t, p.IsOfficialReplacement("RC0805FR-0710KL", "GRM21BR71H104KA01L"))
}

func TestParseRKM(t *testing.T) {
	tests := []struct {
		code string
		want float64
		ok   bool
	}{
		{"10K", 10000, true},
		{"10K0", 10000, true},
		{"4R7", 4.7, true},
		{"1M5", 1.5e6, true},
		{"100R", 100, true},
		{"220", 220, true},
		{"R47", 0.47, true},
		{"", 0, false},
		{"K", 0, false},
		{"XYZ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := parseRKM(tt.code)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestEIACapacitance(t *testing.T) {
	v, ok := eiaCapacitanceFarads("104")
	require.True(t, ok)
	assert.InDelta(t, 100e-9, v, 1e-15)

	v, ok = eiaCapacitanceFarads("220")
	require.True(t, ok)
	assert.InDelta(t, 22e-12, v, 1e-15)

	_, ok = eiaCapacitanceFarads("10")
	assert.False(t, ok)
}

func TestShortcuts_DeterministicOwnerOrder(t *testing.T) {
	a := Shortcuts(Builtin())

	// Reverse the provider list; the shortcut order must not change.
	reversed := Builtin()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	b := Shortcuts(reversed)
	assert.Equal(t, a, b)
}
