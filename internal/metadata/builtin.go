package metadata

import "github.com/dshills/partmatch-mcp/pkg/types"

// Attribute names used by the built-in rule providers and metadata tables.
// Providers extracting attributes and metadata scoring them must agree on
// these keys.
const (
	AttrResistance  = "resistance"   // ohms
	AttrTolerance   = "tolerance"    // percent
	AttrPower       = "power"        // watts
	AttrPackage     = "package"      // package code, e.g. "0805", "SOT-23"
	AttrCapacitance = "capacitance"  // farads
	AttrVoltage     = "voltage"      // volts (rated)
	AttrDielectric  = "dielectric"   // e.g. "X7R"
	AttrChannel     = "channel"      // MOSFET channel polarity: "N" or "P"
	AttrVdsMax      = "vds_max"      // volts
	AttrIdMax       = "id_max"       // amps
	AttrRdsOn       = "rds_on"       // ohms
	AttrVrMax       = "vr_max"       // diode reverse voltage, volts
	AttrIfMax       = "if_max"       // diode forward current, amps
	AttrCore        = "core"         // microcontroller core family
	AttrFlash       = "flash_kb"     // kilobytes
	AttrRAM         = "ram_kb"       // kilobytes
	AttrPins        = "pins"         // pin count
	AttrMaxClock    = "max_mhz"      // megahertz
	AttrChannels    = "channels"     // op-amp channels per package
	AttrGBW         = "gbw_mhz"      // gain-bandwidth product, megahertz
	AttrSupplyRange = "supply_range" // supply voltage range, volts
	AttrOffset      = "offset_mv"    // input offset voltage, millivolts
)

// BuiltinMetadata returns the metadata tables for the generic root types the
// built-in providers classify into. Manufacturer-specific variants are not
// registered directly; they resolve through base-type fallback, so a vendor
// variant can still be given its own table by a later Register call.
func BuiltinMetadata() []TypeMetadata {
	return []TypeMetadata{
		MustTypeMetadata(types.TypeResistor, ProfileReplacement,
			AttributeSpec{AttrResistance, types.ImportanceCritical, PercentageTolerance{Pct: 0.01}},
			AttributeSpec{AttrTolerance, types.ImportanceHigh, MaximumAllowed{}},
			AttributeSpec{AttrPower, types.ImportanceHigh, MinimumRequired{}},
			AttributeSpec{AttrPackage, types.ImportanceHigh, ExactMatch{}},
		),
		MustTypeMetadata(types.TypeCapacitor, ProfileReplacement,
			AttributeSpec{AttrCapacitance, types.ImportanceCritical, PercentageTolerance{Pct: 0.05}},
			AttributeSpec{AttrVoltage, types.ImportanceCritical, MinimumRequired{}},
			AttributeSpec{AttrDielectric, types.ImportanceHigh, ExactMatch{}},
			AttributeSpec{AttrPackage, types.ImportanceHigh, ExactMatch{}},
			AttributeSpec{AttrTolerance, types.ImportanceMedium, MaximumAllowed{}},
		),
		MustTypeMetadata(types.TypeMOSFET, ProfileReplacement,
			AttributeSpec{AttrChannel, types.ImportanceCritical, ExactMatch{}},
			AttributeSpec{AttrVdsMax, types.ImportanceCritical, MinimumRequired{}},
			AttributeSpec{AttrIdMax, types.ImportanceHigh, MinimumRequired{}},
			AttributeSpec{AttrRdsOn, types.ImportanceMedium, MaximumAllowed{}},
			AttributeSpec{AttrPackage, types.ImportanceHigh, ExactMatch{}},
		),
		MustTypeMetadata(types.TypeDiode, ProfileReplacement,
			AttributeSpec{AttrVrMax, types.ImportanceCritical, MinimumRequired{}},
			AttributeSpec{AttrIfMax, types.ImportanceHigh, MinimumRequired{}},
			AttributeSpec{AttrPackage, types.ImportanceHigh, ExactMatch{}},
		),
		MustTypeMetadata(types.TypeMicrocontroller, ProfileDesignPhase,
			AttributeSpec{AttrCore, types.ImportanceCritical, ExactMatch{}},
			AttributeSpec{AttrFlash, types.ImportanceHigh, MinimumRequired{}},
			AttributeSpec{AttrRAM, types.ImportanceHigh, MinimumRequired{}},
			AttributeSpec{AttrPins, types.ImportanceHigh, ExactMatch{}},
			AttributeSpec{AttrMaxClock, types.ImportanceMedium, MinimumRequired{}},
			AttributeSpec{AttrPackage, types.ImportanceMedium, ExactMatch{}},
		),
		MustTypeMetadata(types.TypeOpAmp, ProfileReplacement,
			AttributeSpec{AttrChannels, types.ImportanceCritical, ExactMatch{}},
			AttributeSpec{AttrGBW, types.ImportanceHigh, MinimumRequired{}},
			AttributeSpec{AttrSupplyRange, types.ImportanceMedium, RangeOverlap{}},
			AttributeSpec{AttrPackage, types.ImportanceHigh, ExactMatch{}},
			AttributeSpec{AttrOffset, types.ImportanceLow, MaximumAllowed{}},
		),
	}
}

// NewBuiltinRegistry creates a metadata registry pre-populated with the
// builtin tables.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, md := range BuiltinMetadata() {
		r.Register(md)
	}
	return r
}
