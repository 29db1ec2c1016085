package provider

import (
	"regexp"
	"strings"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// TI covers Texas Instruments MSP430 microcontrollers and general-purpose
// op-amps (LM/TL/TLV/OPA families).
type TI struct {
	baseProvider

	opampBaseRe *regexp.Regexp
	mcus        map[string]mcuSpec
	opamps      map[string]opampSpec
}

// mcuSpec is one row of a microcontroller electrical table.
type mcuSpec struct {
	Core    string
	FlashKB float64
	RAMKB   float64
	Pins    float64
	MaxMHz  float64
	Package string
}

func (s mcuSpec) attributes() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		metadata.AttrCore:     types.StringValue(s.Core),
		metadata.AttrFlash:    types.NumericValue(s.FlashKB),
		metadata.AttrRAM:      types.NumericValue(s.RAMKB),
		metadata.AttrPins:     types.NumericValue(s.Pins),
		metadata.AttrMaxClock: types.NumericValue(s.MaxMHz),
		metadata.AttrPackage:  types.StringValue(s.Package),
	}
}

// opampSpec is one row of an op-amp electrical table. Supply is the rated
// supply voltage range.
type opampSpec struct {
	Channels  float64
	GBWMHz    float64
	SupplyLo  float64
	SupplyHi  float64
	OffsetMV  float64
	DefaultPk string
}

// tiOpampPackages maps op-amp package suffix letters to package names.
var tiOpampPackages = map[string]string{
	"D":  "SOIC-8",
	"P":  "PDIP-8",
	"N":  "PDIP-8",
	"PW": "TSSOP-8",
	"UA": "SOIC-8",
	"DR": "SOIC-8",
}

// NewTI creates the TI rule provider.
func NewTI() *TI {
	const (
		mcuSrc   = `^MSP430[A-Z]{1,2}\d+[A-Z0-9]*$`
		opampSrc = `^(LM|TL0|TLV|OPA)\d+[A-Z]*(-[A-Z0-9]+)?$`
	)

	return &TI{
		baseProvider: baseProvider{
			owner: "ti",
			rules: []tableRule{
				{types.TypeMicrocontrollerMSP430, mcuSrc},
				{types.TypeMicrocontroller, mcuSrc},
				{types.TypeOpAmpTI, opampSrc},
				{types.TypeOpAmp, opampSrc},
			},
			prefixes: []types.PrefixRule{
				{Prefix: "MSP430", Owner: "ti", Type: types.TypeMicrocontrollerMSP430},
			},
			supported: []types.ComponentType{
				types.TypeMicrocontrollerMSP430,
				types.TypeOpAmpTI,
				types.TypeMicrocontroller,
				types.TypeOpAmp,
			},
			replacements: newPairSet([][2]string{
				// LM2904 is the automotive-grade cross of the LM358.
				{"LM358", "LM2904"},
			}),
		},
		opampBaseRe: regexp.MustCompile(`^((?:LM|TL0|TLV|OPA)\d+)([A-Z]*)`),
		mcus: map[string]mcuSpec{
			"MSP430G2553IPW20": {Core: "MSP430", FlashKB: 16, RAMKB: 0.5, Pins: 20, MaxMHz: 16, Package: "TSSOP-20"},
			"MSP430G2553IN20":  {Core: "MSP430", FlashKB: 16, RAMKB: 0.5, Pins: 20, MaxMHz: 16, Package: "PDIP-20"},
			"MSP430F149IPM":    {Core: "MSP430", FlashKB: 60, RAMKB: 2, Pins: 64, MaxMHz: 8, Package: "LQFP-64"},
		},
		opamps: map[string]opampSpec{
			"LM358":   {Channels: 2, GBWMHz: 0.7, SupplyLo: 3, SupplyHi: 32, OffsetMV: 7, DefaultPk: "SOIC-8"},
			"LM2904":  {Channels: 2, GBWMHz: 0.7, SupplyLo: 3, SupplyHi: 26, OffsetMV: 7, DefaultPk: "SOIC-8"},
			"TL072":   {Channels: 2, GBWMHz: 3, SupplyLo: 7, SupplyHi: 36, OffsetMV: 3, DefaultPk: "SOIC-8"},
			"TLV2372": {Channels: 2, GBWMHz: 3, SupplyLo: 2.7, SupplyHi: 16, OffsetMV: 2.5, DefaultPk: "SOIC-8"},
			"OPA2340": {Channels: 2, GBWMHz: 5.5, SupplyLo: 2.7, SupplyHi: 5.5, OffsetMV: 0.5, DefaultPk: "SOIC-8"},
		},
	}
}

// opampKey splits an op-amp MPN into its table key and package suffix:
// "LM358D" -> ("LM358", "D").
func (p *TI) opampKey(mpn string) (string, string) {
	mpn = types.NormalizeMPN(mpn)
	if i := strings.IndexByte(mpn, '-'); i >= 0 {
		mpn = mpn[:i]
	}
	m := p.opampBaseRe.FindStringSubmatch(mpn)
	if m == nil {
		return mpn, ""
	}
	return m[1], m[2]
}

// mcuKey strips the tape-and-reel R suffix before the table lookup.
func (p *TI) mcuKey(mpn string) string {
	mpn = types.NormalizeMPN(mpn)
	if _, ok := p.mcus[mpn]; ok {
		return mpn
	}
	return strings.TrimSuffix(mpn, "R")
}

// ExtractPackageCode implements RuleProvider.
func (p *TI) ExtractPackageCode(mpn string) string {
	norm := types.NormalizeMPN(mpn)
	if strings.HasPrefix(norm, "MSP430") {
		if spec, ok := p.mcus[p.mcuKey(norm)]; ok {
			return spec.Package
		}
		return ""
	}
	base, suffix := p.opampKey(norm)
	if pkg, ok := tiOpampPackages[suffix]; ok {
		return pkg
	}
	if spec, ok := p.opamps[base]; ok {
		return spec.DefaultPk
	}
	return ""
}

// ExtractSeries implements RuleProvider.
func (p *TI) ExtractSeries(mpn string) string {
	norm := types.NormalizeMPN(mpn)
	for _, series := range []string{"MSP430", "TLV", "TL0", "OPA", "LM"} {
		if strings.HasPrefix(norm, series) {
			return series
		}
	}
	return ""
}

// ExtractAttributes implements RuleProvider.
func (p *TI) ExtractAttributes(mpn string, t types.ComponentType) map[string]types.AttributeValue {
	switch t.BaseType() {
	case types.TypeMicrocontroller:
		if spec, ok := p.mcus[p.mcuKey(types.NormalizeMPN(mpn))]; ok {
			return spec.attributes()
		}
	case types.TypeOpAmp:
		base, _ := p.opampKey(mpn)
		if spec, ok := p.opamps[base]; ok {
			return map[string]types.AttributeValue{
				metadata.AttrChannels:    types.NumericValue(spec.Channels),
				metadata.AttrGBW:         types.NumericValue(spec.GBWMHz),
				metadata.AttrSupplyRange: types.RangeValue(spec.SupplyLo, spec.SupplyHi),
				metadata.AttrOffset:      types.NumericValue(spec.OffsetMV),
				metadata.AttrPackage:     types.StringValue(p.ExtractPackageCode(mpn)),
			}
		}
	}
	return nil
}
