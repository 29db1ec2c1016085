package provider

import (
	"strings"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// Onsemi covers onsemi power MOSFETs (FQP/FQD/NTD families) and small-signal
// diodes.
type Onsemi struct {
	baseProvider

	mosfets map[string]mosfetSpec
	diodes  map[string]diodeSpec
}

// diodeSpec is one row of a diode electrical table.
type diodeSpec struct {
	VrMax   float64 // volts
	IfMax   float64 // amps
	Package string
}

// NewOnsemi creates the onsemi rule provider.
func NewOnsemi() *Onsemi {
	const (
		mosfetSrc = `^(NTD|NVD|NTR|FQP|FQD|FQB)\d+[A-Z0-9]*$`
		diodeSrc  = `^(1N4148|1N400[1-7]|MMSD\d{4}|BAS16)[A-Z0-9]*$`
	)

	return &Onsemi{
		baseProvider: baseProvider{
			owner: "onsemi",
			rules: []tableRule{
				{types.TypeMOSFETOnsemi, mosfetSrc},
				{types.TypeMOSFET, mosfetSrc},
				{types.TypeDiodeOnsemi, diodeSrc},
				{types.TypeDiode, diodeSrc},
			},
			supported: []types.ComponentType{
				types.TypeMOSFETOnsemi,
				types.TypeDiodeOnsemi,
				types.TypeMOSFET,
				types.TypeDiode,
			},
			replacements: newPairSet([][2]string{
				// MMSD4148 is the documented SMD migration for the 1N4148.
				{"1N4148", "MMSD4148"},
			}),
		},
		mosfets: map[string]mosfetSpec{
			"FQP30N06L": {Channel: "N", VdsMax: 60, IdMax: 32, RdsOn: 0.035, Package: "TO-220"},
			"FQP27P06":  {Channel: "P", VdsMax: 60, IdMax: 27, RdsOn: 0.070, Package: "TO-220"},
			"FQD13N06":  {Channel: "N", VdsMax: 60, IdMax: 12.8, RdsOn: 0.120, Package: "DPAK"},
			"NTD4906N":  {Channel: "N", VdsMax: 30, IdMax: 54, RdsOn: 0.0066, Package: "DPAK"},
		},
		diodes: map[string]diodeSpec{
			"1N4148":   {VrMax: 100, IfMax: 0.2, Package: "DO-35"},
			"1N4001":   {VrMax: 50, IfMax: 1.0, Package: "DO-41"},
			"1N4007":   {VrMax: 1000, IfMax: 1.0, Package: "DO-41"},
			"MMSD4148": {VrMax: 100, IfMax: 0.2, Package: "SOD-123"},
			"BAS16":    {VrMax: 75, IfMax: 0.2, Package: "SOT-23"},
		},
	}
}

// tableKey strips tape-and-reel suffixes (T, TA, RL, etc.) by probing the
// longest table key that prefixes the MPN.
func (p *Onsemi) tableKey(mpn string) string {
	mpn = types.NormalizeMPN(mpn)
	if _, ok := p.mosfets[mpn]; ok {
		return mpn
	}
	if _, ok := p.diodes[mpn]; ok {
		return mpn
	}
	for key := range p.mosfets {
		if strings.HasPrefix(mpn, key) {
			return key
		}
	}
	for key := range p.diodes {
		if strings.HasPrefix(mpn, key) {
			return key
		}
	}
	return mpn
}

// ExtractPackageCode implements RuleProvider.
func (p *Onsemi) ExtractPackageCode(mpn string) string {
	key := p.tableKey(mpn)
	if spec, ok := p.mosfets[key]; ok {
		return spec.Package
	}
	if spec, ok := p.diodes[key]; ok {
		return spec.Package
	}
	return ""
}

// ExtractSeries implements RuleProvider.
func (p *Onsemi) ExtractSeries(mpn string) string {
	mpn = types.NormalizeMPN(mpn)
	for _, series := range []string{"NTD", "NVD", "NTR", "FQP", "FQD", "FQB", "MMSD", "BAS", "1N"} {
		if strings.HasPrefix(mpn, series) {
			return series
		}
	}
	return ""
}

// ExtractAttributes implements RuleProvider.
func (p *Onsemi) ExtractAttributes(mpn string, t types.ComponentType) map[string]types.AttributeValue {
	key := p.tableKey(mpn)
	switch t.BaseType() {
	case types.TypeMOSFET:
		if spec, ok := p.mosfets[key]; ok {
			return spec.attributes()
		}
	case types.TypeDiode:
		if spec, ok := p.diodes[key]; ok {
			return map[string]types.AttributeValue{
				metadata.AttrVrMax:   types.NumericValue(spec.VrMax),
				metadata.AttrIfMax:   types.NumericValue(spec.IfMax),
				metadata.AttrPackage: types.StringValue(spec.Package),
			}
		}
	}
	return nil
}
