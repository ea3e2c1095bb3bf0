package domain

// StormEvent is one typed row of the NOAA storm database.
//
// The damage columns carry a raw magnitude plus a power-of-ten code
// (PROPDMGEXP / CROPDMGEXP) until [NormalizeDamage] rewrites them into
// absolute dollars and clears the codes.
type StormEvent struct {
	EventType  string  // EVTYPE label, e.g. "TORNADO"
	Fatalities float64 // FATALITIES
	Injuries   float64 // INJURIES

	PropDamage     float64 // PROPDMG
	PropDamageCode string  // PROPDMGEXP
	CropDamage     float64 // CROPDMG
	CropDamageCode string  // CROPDMGEXP
}
