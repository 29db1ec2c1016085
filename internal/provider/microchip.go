package provider

import (
	"regexp"
	"strings"

	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// Microchip covers PIC and AVR microcontrollers.
type Microchip struct {
	baseProvider

	baseRe *regexp.Regexp
	mcus   map[string]mcuSpec
}

// microchipPackages maps ordering suffixes to package names. PIC suffixes look
// like "-I/P" (temperature grade / package); AVR suffixes like "-PU".
var microchipPackages = map[string]string{
	"P":  "PDIP",
	"PT": "TQFP",
	"SO": "SOIC",
	"SS": "SSOP",
	"PU": "PDIP",
	"AU": "TQFP",
	"MU": "QFN",
}

// NewMicrochip creates the Microchip rule provider.
func NewMicrochip() *Microchip {
	const (
		picSrc = `^PIC(10|12|16|18|24|32)[A-Z]*F\d+[A-Z0-9]*(-[A-Z]+/[A-Z]+)?$`
		avrSrc = `^AT(MEGA|TINY|XMEGA)\d+[A-Z0-9]*(-[A-Z]+)?$`
	)

	return &Microchip{
		baseProvider: baseProvider{
			owner: "microchip",
			rules: []tableRule{
				{types.TypeMicrocontrollerPIC, picSrc},
				{types.TypeMicrocontrollerAVR, avrSrc},
				{types.TypeMicrocontroller, picSrc},
				{types.TypeMicrocontroller, avrSrc},
			},
			prefixes: []types.PrefixRule{
				{Prefix: "PIC", Owner: "microchip", Type: types.TypeMicrocontrollerPIC},
				{Prefix: "ATMEGA", Owner: "microchip", Type: types.TypeMicrocontrollerAVR},
				{Prefix: "ATTINY", Owner: "microchip", Type: types.TypeMicrocontrollerAVR},
			},
			supported: []types.ComponentType{
				types.TypeMicrocontrollerPIC,
				types.TypeMicrocontrollerAVR,
				types.TypeMicrocontroller,
			},
			replacements: newPairSet([][2]string{
				// The A revision is the documented migration for the original die.
				{"PIC16F877-I/P", "PIC16F877A-I/P"},
			}),
		},
		baseRe: regexp.MustCompile(`^(PIC[0-9A-Z]+|AT(?:MEGA|TINY|XMEGA)\d+[A-Z0-9]*?)(?:-([A-Z]+)(?:/([A-Z]+))?)?$`),
		mcus: map[string]mcuSpec{
			"PIC16F877A": {Core: "PIC16", FlashKB: 14, RAMKB: 0.368, Pins: 40, MaxMHz: 20},
			"PIC16F877":  {Core: "PIC16", FlashKB: 14, RAMKB: 0.368, Pins: 40, MaxMHz: 20},
			"PIC18F4550": {Core: "PIC18", FlashKB: 32, RAMKB: 2, Pins: 40, MaxMHz: 48},
			"ATMEGA328P": {Core: "AVR", FlashKB: 32, RAMKB: 2, Pins: 28, MaxMHz: 20},
			"ATMEGA168":  {Core: "AVR", FlashKB: 16, RAMKB: 1, Pins: 28, MaxMHz: 20},
			"ATTINY85":   {Core: "AVR", FlashKB: 8, RAMKB: 0.5, Pins: 8, MaxMHz: 20},
		},
	}
}

// split separates the device base from the ordering suffix:
// "PIC16F877A-I/P" -> ("PIC16F877A", "P"); "ATMEGA328P-PU" -> ("ATMEGA328P", "PU").
func (p *Microchip) split(mpn string) (base, pkgCode string) {
	m := p.baseRe.FindStringSubmatch(types.NormalizeMPN(mpn))
	if m == nil {
		return types.NormalizeMPN(mpn), ""
	}
	// PIC suffixes carry grade then package ("I/P"); AVR suffixes are the
	// package alone ("PU").
	if m[3] != "" {
		return m[1], m[3]
	}
	return m[1], m[2]
}

// ExtractPackageCode implements RuleProvider.
func (p *Microchip) ExtractPackageCode(mpn string) string {
	_, code := p.split(mpn)
	return microchipPackages[code]
}

// ExtractSeries implements RuleProvider.
func (p *Microchip) ExtractSeries(mpn string) string {
	norm := types.NormalizeMPN(mpn)
	for _, series := range []string{"PIC10", "PIC12", "PIC16", "PIC18", "PIC24", "PIC32", "ATMEGA", "ATTINY", "ATXMEGA"} {
		if strings.HasPrefix(norm, series) {
			return series
		}
	}
	return ""
}

// ExtractAttributes implements RuleProvider.
func (p *Microchip) ExtractAttributes(mpn string, t types.ComponentType) map[string]types.AttributeValue {
	if t.BaseType() != types.TypeMicrocontroller {
		return nil
	}
	base, _ := p.split(mpn)
	spec, ok := p.mcus[base]
	if !ok {
		return nil
	}
	attrs := spec.attributes()
	if pkg := p.ExtractPackageCode(mpn); pkg != "" {
		attrs[metadata.AttrPackage] = types.StringValue(pkg)
	} else {
		delete(attrs, metadata.AttrPackage)
	}
	return attrs
}
