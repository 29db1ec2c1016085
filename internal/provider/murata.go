package provider

import (
	"regexp"
	"strings"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// Murata covers Murata GRM monolithic ceramic capacitors.
type Murata struct {
	baseProvider

	grmRe *regexp.Regexp
}

// murataSizes maps GRM dimension codes to EIA chip size codes.
var murataSizes = map[string]string{
	"03": "0201",
	"15": "0402",
	"18": "0603",
	"21": "0805",
	"31": "1206",
	"32": "1210",
}

// murataDielectrics maps GRM temperature characteristic codes to EIA
// dielectric classes.
var murataDielectrics = map[string]string{
	"5C": "C0G",
	"R6": "X5R",
	"R7": "X7R",
}

// murataVoltages maps GRM rated-voltage codes to volts.
var murataVoltages = map[string]float64{
	"0J": 6.3,
	"1A": 10,
	"1C": 16,
	"1E": 25,
	"1V": 35,
	"1H": 50,
	"2A": 100,
}

// NewMurata creates the Murata rule provider.
func NewMurata() *Murata {
	const grmSrc = `^GRM\d{2}[A-Z](5C|R6|R7)[0-9][A-Z]\d{3}[A-Z][A-Z0-9]{3}[A-Z]?$`

	return &Murata{
		baseProvider: baseProvider{
			owner: "murata",
			rules: []tableRule{
				{types.TypeCapacitorMurataMLCC, grmSrc},
				{types.TypeCapacitor, grmSrc},
			},
			prefixes: []types.PrefixRule{
				{Prefix: "GRM", Owner: "murata", Type: types.TypeCapacitorMurataMLCC},
			},
			supported: []types.ComponentType{
				types.TypeCapacitorMurataMLCC,
				types.TypeCapacitor,
			},
			replacements: newPairSet([][2]string{
				// Documented cross against the Yageo CC equivalent.
				{"GRM21BR71H104KA01L", "CC0805KRX7R9BB104"},
			}),
		},
		grmRe: regexp.MustCompile(`^GRM(\d{2})[A-Z](5C|R6|R7)(\d[A-Z])(\d{3})([A-Z])`),
	}
}

// ExtractPackageCode implements RuleProvider.
func (p *Murata) ExtractPackageCode(mpn string) string {
	m := p.grmRe.FindStringSubmatch(types.NormalizeMPN(mpn))
	if m == nil {
		return ""
	}
	return murataSizes[m[1]]
}

// ExtractSeries implements RuleProvider.
func (p *Murata) ExtractSeries(mpn string) string {
	if strings.HasPrefix(types.NormalizeMPN(mpn), "GRM") {
		return "GRM"
	}
	return ""
}

// ExtractAttributes implements RuleProvider.
func (p *Murata) ExtractAttributes(mpn string, t types.ComponentType) map[string]types.AttributeValue {
	if t.BaseType() != types.TypeCapacitor {
		return nil
	}
	m := p.grmRe.FindStringSubmatch(types.NormalizeMPN(mpn))
	if m == nil {
		return nil
	}

	attrs := make(map[string]types.AttributeValue, 5)
	if size, ok := murataSizes[m[1]]; ok {
		attrs[metadata.AttrPackage] = types.StringValue(size)
	}
	if diel, ok := murataDielectrics[m[2]]; ok {
		attrs[metadata.AttrDielectric] = types.StringValue(diel)
	}
	if volts, ok := murataVoltages[m[3]]; ok {
		attrs[metadata.AttrVoltage] = types.NumericValue(volts)
	}
	if farads, ok := eiaCapacitanceFarads(m[4]); ok {
		attrs[metadata.AttrCapacitance] = types.NumericValue(farads)
	}
	if tol, ok := toleranceLetters[m[5][0]]; ok {
		attrs[metadata.AttrTolerance] = types.NumericValue(tol)
	}
	return attrs
}
