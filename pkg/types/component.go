package types

import "strings"

// ComponentType identifies a position in the component taxonomy.
//
// Generic root types are bare names ("resistor", "mosfet"). Manufacturer-specific
// variants append a dot-separated qualifier ("resistor.yageo-chip"). Specificity is
// derived from the name structure and never stored separately.
type ComponentType string

// Generic root types.
const (
	TypeUnknown         ComponentType = ""
	TypeResistor        ComponentType = "resistor"
	TypeCapacitor       ComponentType = "capacitor"
	TypeInductor        ComponentType = "inductor"
	TypeDiode           ComponentType = "diode"
	TypeMOSFET          ComponentType = "mosfet"
	TypeMicrocontroller ComponentType = "microcontroller"
	TypeOpAmp           ComponentType = "opamp"
)

// Manufacturer-specific variants registered by the built-in rule providers.
const (
	TypeResistorYageoChip     ComponentType = "resistor.yageo-chip"
	TypeCapacitorYageoMLCC    ComponentType = "capacitor.yageo-mlcc"
	TypeResistorVishayChip    ComponentType = "resistor.vishay-chip"
	TypeMOSFETVishay          ComponentType = "mosfet.vishay-siliconix"
	TypeMOSFETOnsemi          ComponentType = "mosfet.onsemi"
	TypeDiodeOnsemi           ComponentType = "diode.onsemi"
	TypeMicrocontrollerMSP430 ComponentType = "microcontroller.ti-msp430"
	TypeOpAmpTI               ComponentType = "opamp.ti"
	TypeMicrocontrollerPIC    ComponentType = "microcontroller.microchip-pic"
	TypeMicrocontrollerAVR    ComponentType = "microcontroller.microchip-avr"
	TypeCapacitorMurataMLCC   ComponentType = "capacitor.murata-mlcc"
)

// BaseType returns the generic root of the type. For root types it returns the
// type itself, so BaseType is total and idempotent.
func (t ComponentType) BaseType() ComponentType {
	if i := strings.IndexByte(string(t), '.'); i >= 0 {
		return t[:i]
	}
	return t
}

// IsSpecific reports whether the type is a manufacturer-specific variant.
func (t ComponentType) IsSpecific() bool {
	return strings.IndexByte(string(t), '.') >= 0
}

// IsUnknown reports whether the type is the unknown sentinel.
func (t ComponentType) IsUnknown() bool {
	return t == TypeUnknown
}

// RuleOwnerID identifies which rule provider registered a pattern. It acts as a
// namespace: ownership isolation in the pattern registry is keyed on it.
type RuleOwnerID string

// PrefixRule is a high-confidence literal-prefix shortcut. Shortcuts are checked
// before any pattern walk because they are unambiguous and must not be overridden
// by generic pattern collisions.
type PrefixRule struct {
	Prefix string
	Owner  RuleOwnerID
	Type   ComponentType
}
