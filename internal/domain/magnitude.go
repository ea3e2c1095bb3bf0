package domain

import "math"

// magnitudeMultipliers maps a damage magnitude code to its power-of-ten
// multiplier. "K", "M", and "B" are the codes documented in the NWS storm
// data directive; bare digits appear in pre-1996 records and mean 10^d.
var magnitudeMultipliers = map[string]float64{
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

func init() {
	for d := 0; d <= 9; d++ {
		magnitudeMultipliers[string(rune('0'+d))] = math.Pow10(d)
	}
}

// MultiplierFor returns the dollar multiplier for a magnitude code. Unknown
// codes (lowercase letters, blank, "?", "+", "-", "H") return 1 with
// ok=false: the source data leaves those rows unscaled and so do we.
func MultiplierFor(code string) (mult float64, ok bool) {
	if m, found := magnitudeMultipliers[code]; found {
		return m, true
	}
	return 1, false
}

// NormalizeDamage rewrites both damage columns of event into absolute
// dollars, each scaled by its own magnitude code, and clears the codes so a
// second pass cannot re-scale the values. It returns the number of non-empty
// codes it did not recognize (0 to 2).
func NormalizeDamage(event *StormEvent) (unknown int) {
	event.PropDamage, event.PropDamageCode, unknown = scale(event.PropDamage, event.PropDamageCode, unknown)
	event.CropDamage, event.CropDamageCode, unknown = scale(event.CropDamage, event.CropDamageCode, unknown)
	return unknown
}

func scale(value float64, code string, unknown int) (float64, string, int) {
	mult, ok := MultiplierFor(code)
	if !ok && code != "" {
		unknown++
	}
	return value * mult, "", unknown
}
