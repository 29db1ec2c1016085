package provider

import (
	"strconv"
	"strings"
)

// parseRKM parses RKM-style resistance codes: "10K" is 10 kOhm, "4R7" is
// 4.7 Ohm, "1M5" is 1.5 MOhm, "10K0" is 10.0 kOhm, "100R" is 100 Ohm. A code
// of bare digits is taken as plain ohms.
func parseRKM(code string) (float64, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, false
	}

	multipliers := map[byte]float64{'R': 1, 'K': 1e3, 'M': 1e6}

	idx := strings.IndexAny(code, "RKM")
	if idx < 0 {
		v, err := strconv.ParseFloat(code, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	whole := code[:idx]
	frac := code[idx+1:]
	if whole == "" && frac == "" {
		return 0, false
	}
	if whole == "" {
		whole = "0"
	}

	numStr := whole
	if frac != "" {
		numStr = whole + "." + frac
	}
	v, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, false
	}
	return v * multipliers[code[idx]], true
}

// eiaCapacitanceFarads parses a 3-digit EIA capacitance code (two significant
// digits and a power-of-ten multiplier, in picofarads): "104" is 100 nF.
func eiaCapacitanceFarads(code string) (float64, bool) {
	if len(code) != 3 {
		return 0, false
	}
	sig, err := strconv.Atoi(code[:2])
	if err != nil {
		return 0, false
	}
	exp, err := strconv.Atoi(code[2:])
	if err != nil {
		return 0, false
	}
	pf := float64(sig)
	for i := 0; i < exp; i++ {
		pf *= 10
	}
	return pf * 1e-12, true
}

// chipPowerWatts maps standard chip resistor size codes to their rated power.
var chipPowerWatts = map[string]float64{
	"0201": 0.05,
	"0402": 0.063,
	"0603": 0.1,
	"0805": 0.125,
	"1206": 0.25,
	"1210": 0.5,
	"2010": 0.75,
	"2512": 1.0,
}

// toleranceLetters maps resistor tolerance code letters to percent.
var toleranceLetters = map[byte]float64{
	'B': 0.1,
	'D': 0.5,
	'F': 1,
	'G': 2,
	'J': 5,
	'K': 10,
	'M': 20,
}

// pairKey builds an order-insensitive key for a documented replacement pair.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// pairSet is a set of order-insensitive MPN pairs.
type pairSet map[string]bool

func newPairSet(pairs [][2]string) pairSet {
	s := make(pairSet, len(pairs))
	for _, p := range pairs {
		s[pairKey(p[0], p[1])] = true
	}
	return s
}

func (s pairSet) contains(a, b string) bool {
	return s[pairKey(a, b)]
}
