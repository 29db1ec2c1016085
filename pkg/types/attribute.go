package types

import (
	"fmt"
	"strings"
)

// Importance classifies how much an attribute matters when scoring two parts
// against each other.
type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
	ImportanceLow      Importance = "low"
	ImportanceOptional Importance = "optional"
)

// baseWeights maps each importance level to its fixed base weight. The table is
// colocated with the constants so adding a level is a single edit.
var baseWeights = map[Importance]float64{
	ImportanceCritical: 1.0,
	ImportanceHigh:     0.7,
	ImportanceMedium:   0.4,
	ImportanceLow:      0.2,
	ImportanceOptional: 0.0,
}

// BaseWeight returns the fixed base weight for the importance level.
func (i Importance) BaseWeight() float64 {
	return baseWeights[i]
}

// Mandatory reports whether missing data on an attribute of this importance is
// a scoring failure rather than a skip. Only critical attributes are mandatory.
func (i Importance) Mandatory() bool {
	return i == ImportanceCritical
}

// Validate checks that the importance is one of the known levels.
func (i Importance) Validate() error {
	if _, ok := baseWeights[i]; !ok {
		return fmt.Errorf("%w: importance %q", ErrInvalidImportance, string(i))
	}
	return nil
}

// AttributeValue is one extracted attribute of a part: a normalized string, a
// numeric scalar, or a numeric range. Values are immutable once constructed.
type AttributeValue struct {
	Raw       string  // normalized string form, always set
	Num       float64 // numeric value, or range lower bound
	Hi        float64 // range upper bound when IsRange
	IsNumeric bool
	IsRange   bool
}

// StringValue builds a case-normalized string attribute value.
func StringValue(s string) AttributeValue {
	return AttributeValue{Raw: strings.ToUpper(strings.TrimSpace(s))}
}

// NumericValue builds a scalar numeric attribute value.
func NumericValue(v float64) AttributeValue {
	return AttributeValue{Raw: trimFloat(v), Num: v, IsNumeric: true}
}

// RangeValue builds a numeric range attribute value. Bounds are reordered if
// given backwards.
func RangeValue(lo, hi float64) AttributeValue {
	if hi < lo {
		lo, hi = hi, lo
	}
	return AttributeValue{
		Raw:       trimFloat(lo) + ".." + trimFloat(hi),
		Num:       lo,
		Hi:        hi,
		IsNumeric: true,
		IsRange:   true,
	}
}

// Bounds returns the value as a closed numeric interval. Scalars are zero-width
// intervals; non-numeric values return ok=false.
func (v AttributeValue) Bounds() (lo, hi float64, ok bool) {
	if !v.IsNumeric {
		return 0, 0, false
	}
	if v.IsRange {
		return v.Num, v.Hi, true
	}
	return v.Num, v.Num, true
}

// Equal reports whether two values are identical after normalization.
func (v AttributeValue) Equal(o AttributeValue) bool {
	if v.IsNumeric && o.IsNumeric {
		return v.Num == o.Num && v.IsRange == o.IsRange && v.Hi == o.Hi
	}
	return v.Raw == o.Raw
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
