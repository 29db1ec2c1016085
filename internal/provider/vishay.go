package provider

import (
	"regexp"
	"strings"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// Vishay covers Vishay Dale chip resistors (CRCW series) and Vishay Siliconix
// small-signal MOSFETs (SI series).
type Vishay struct {
	baseProvider

	resistorRe *regexp.Regexp
	mosfets    map[string]mosfetSpec
}

// mosfetSpec is one row of a discrete MOSFET electrical table.
type mosfetSpec struct {
	Channel string
	VdsMax  float64 // volts
	IdMax   float64 // amps
	RdsOn   float64 // ohms
	Package string
}

func (s mosfetSpec) attributes() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		metadata.AttrChannel: types.StringValue(s.Channel),
		metadata.AttrVdsMax:  types.NumericValue(s.VdsMax),
		metadata.AttrIdMax:   types.NumericValue(s.IdMax),
		metadata.AttrRdsOn:   types.NumericValue(s.RdsOn),
		metadata.AttrPackage: types.StringValue(s.Package),
	}
}

// NewVishay creates the Vishay rule provider.
func NewVishay() *Vishay {
	const (
		resistorSrc = `^CRCW\d{4}[0-9RKM]+[BDFGJ][A-Z]E[A-Z0-9]?$`
		mosfetSrc   = `^SI[RAB]?\d{3,4}[A-Z]{1,3}(-T1(-GE3)?)?$`
	)

	return &Vishay{
		baseProvider: baseProvider{
			owner: "vishay",
			rules: []tableRule{
				{types.TypeResistorVishayChip, resistorSrc},
				{types.TypeResistor, resistorSrc},
				{types.TypeMOSFETVishay, mosfetSrc},
				{types.TypeMOSFET, mosfetSrc},
			},
			prefixes: []types.PrefixRule{
				{Prefix: "CRCW", Owner: "vishay", Type: types.TypeResistorVishayChip},
			},
			supported: []types.ComponentType{
				types.TypeResistorVishayChip,
				types.TypeMOSFETVishay,
				types.TypeResistor,
				types.TypeMOSFET,
			},
		},
		resistorRe: regexp.MustCompile(`^CRCW(\d{4})([0-9RKM]+)([BDFGJ])[A-Z]E[A-Z0-9]?$`),
		mosfets: map[string]mosfetSpec{
			"SI2302CDS": {Channel: "N", VdsMax: 20, IdMax: 2.6, RdsOn: 0.045, Package: "SOT-23"},
			"SI2301CDS": {Channel: "P", VdsMax: 20, IdMax: 2.3, RdsOn: 0.065, Package: "SOT-23"},
			"SI4435DY":  {Channel: "P", VdsMax: 30, IdMax: 8.0, RdsOn: 0.020, Package: "SO-8"},
			"SIR826DP":  {Channel: "N", VdsMax: 60, IdMax: 40, RdsOn: 0.0045, Package: "PowerPAK-SO8"},
		},
	}
}

// mosfetKey strips reel and lead-finish suffixes (-T1, -GE3) before the parts
// table lookup so all orderable markings of a die resolve to the same row.
func (p *Vishay) mosfetKey(mpn string) string {
	mpn = types.NormalizeMPN(mpn)
	if i := strings.IndexByte(mpn, '-'); i >= 0 {
		return mpn[:i]
	}
	return mpn
}

// ExtractPackageCode implements RuleProvider.
func (p *Vishay) ExtractPackageCode(mpn string) string {
	mpn = types.NormalizeMPN(mpn)
	if strings.HasPrefix(mpn, "CRCW") && len(mpn) >= 8 {
		return mpn[4:8]
	}
	if spec, ok := p.mosfets[p.mosfetKey(mpn)]; ok {
		return spec.Package
	}
	return ""
}

// ExtractSeries implements RuleProvider.
func (p *Vishay) ExtractSeries(mpn string) string {
	mpn = types.NormalizeMPN(mpn)
	switch {
	case strings.HasPrefix(mpn, "CRCW"):
		return "CRCW"
	case strings.HasPrefix(mpn, "SIR"):
		return "SIR"
	case strings.HasPrefix(mpn, "SI"):
		return "SI"
	}
	return ""
}

// ExtractAttributes implements RuleProvider.
func (p *Vishay) ExtractAttributes(mpn string, t types.ComponentType) map[string]types.AttributeValue {
	mpn = types.NormalizeMPN(mpn)
	switch t.BaseType() {
	case types.TypeResistor:
		return p.resistorAttributes(mpn)
	case types.TypeMOSFET:
		if spec, ok := p.mosfets[p.mosfetKey(mpn)]; ok {
			return spec.attributes()
		}
	}
	return nil
}

func (p *Vishay) resistorAttributes(mpn string) map[string]types.AttributeValue {
	m := p.resistorRe.FindStringSubmatch(mpn)
	if m == nil {
		return nil
	}
	attrs := make(map[string]types.AttributeValue, 4)
	attrs[metadata.AttrPackage] = types.StringValue(m[1])
	if ohms, ok := parseRKM(m[2]); ok {
		attrs[metadata.AttrResistance] = types.NumericValue(ohms)
	}
	if tol, ok := toleranceLetters[m[3][0]]; ok {
		attrs[metadata.AttrTolerance] = types.NumericValue(tol)
	}
	if watts, ok := chipPowerWatts[m[1]]; ok {
		attrs[metadata.AttrPower] = types.NumericValue(watts)
	}
	return attrs
}
