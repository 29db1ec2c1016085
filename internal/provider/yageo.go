package provider

import (
	"regexp"
	"strings"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// Yageo covers Yageo chip resistors (RC series) and MLCC capacitors
// (CC series).
type Yageo struct {
	baseProvider

	resistorRe  *regexp.Regexp
	capacitorRe *regexp.Regexp
}

// yageoVoltageDigits is the abbreviated CC-series rated-voltage code table.
var yageoVoltageDigits = map[byte]float64{
	'4': 16,
	'5': 25,
	'6': 35,
	'7': 100,
	'8': 200,
	'9': 50,
}

// NewYageo creates the Yageo rule provider.
func NewYageo() *Yageo {
	const (
		resistorSrc  = `^RC\d{4}[A-Z]{2}-\d{2}[0-9RKM]+[A-Z]?$`
		capacitorSrc = `^CC\d{4}[KMJ]RX[57]R\d[A-Z]{2}\d{3}$`
	)

	return &Yageo{
		baseProvider: baseProvider{
			owner: "yageo",
			rules: []tableRule{
				{types.TypeResistorYageoChip, resistorSrc},
				{types.TypeResistor, resistorSrc},
				{types.TypeCapacitorYageoMLCC, capacitorSrc},
				{types.TypeCapacitor, capacitorSrc},
			},
			supported: []types.ComponentType{
				types.TypeResistorYageoChip,
				types.TypeCapacitorYageoMLCC,
				types.TypeResistor,
				types.TypeCapacitor,
			},
			replacements: newPairSet([][2]string{
				// Documented cross-reference to the Vishay CRCW equivalent.
				{"RC0805FR-0710KL", "CRCW080510K0FKEA"},
				{"RC0603FR-071KL", "CRCW06031K00FKEA"},
			}),
		},
		resistorRe:  regexp.MustCompile(`^RC(\d{4})([A-Z])[A-Z]-\d{2}([0-9RKM]+?)L?$`),
		capacitorRe: regexp.MustCompile(`^CC(\d{4})([KMJ])R(X[57]R)(\d)[A-Z]{2}(\d{3})$`),
	}
}

// ExtractPackageCode implements RuleProvider. The chip size code is the
// package for both series.
func (p *Yageo) ExtractPackageCode(mpn string) string {
	mpn = types.NormalizeMPN(mpn)
	if len(mpn) >= 6 && (strings.HasPrefix(mpn, "RC") || strings.HasPrefix(mpn, "CC")) {
		return mpn[2:6]
	}
	return ""
}

// ExtractSeries implements RuleProvider.
func (p *Yageo) ExtractSeries(mpn string) string {
	mpn = types.NormalizeMPN(mpn)
	switch {
	case strings.HasPrefix(mpn, "RC"):
		return "RC"
	case strings.HasPrefix(mpn, "CC"):
		return "CC"
	}
	return ""
}

// ExtractAttributes implements RuleProvider.
func (p *Yageo) ExtractAttributes(mpn string, t types.ComponentType) map[string]types.AttributeValue {
	mpn = types.NormalizeMPN(mpn)
	switch t.BaseType() {
	case types.TypeResistor:
		return p.resistorAttributes(mpn)
	case types.TypeCapacitor:
		return p.capacitorAttributes(mpn)
	}
	return nil
}

func (p *Yageo) resistorAttributes(mpn string) map[string]types.AttributeValue {
	m := p.resistorRe.FindStringSubmatch(mpn)
	if m == nil {
		return nil
	}
	attrs := make(map[string]types.AttributeValue, 4)
	attrs[metadata.AttrPackage] = types.StringValue(m[1])
	if tol, ok := toleranceLetters[m[2][0]]; ok {
		attrs[metadata.AttrTolerance] = types.NumericValue(tol)
	}
	if ohms, ok := parseRKM(m[3]); ok {
		attrs[metadata.AttrResistance] = types.NumericValue(ohms)
	}
	if watts, ok := chipPowerWatts[m[1]]; ok {
		attrs[metadata.AttrPower] = types.NumericValue(watts)
	}
	return attrs
}

func (p *Yageo) capacitorAttributes(mpn string) map[string]types.AttributeValue {
	m := p.capacitorRe.FindStringSubmatch(mpn)
	if m == nil {
		return nil
	}
	attrs := make(map[string]types.AttributeValue, 5)
	attrs[metadata.AttrPackage] = types.StringValue(m[1])
	if tol, ok := toleranceLetters[m[2][0]]; ok {
		attrs[metadata.AttrTolerance] = types.NumericValue(tol)
	}
	attrs[metadata.AttrDielectric] = types.StringValue(m[3])
	if volts, ok := yageoVoltageDigits[m[4][0]]; ok {
		attrs[metadata.AttrVoltage] = types.NumericValue(volts)
	}
	if farads, ok := eiaCapacitanceFarads(m[5]); ok {
		attrs[metadata.AttrCapacitance] = types.NumericValue(farads)
	}
	return attrs
}
