// Package domain models NOAA storm database records and their impact
// aggregations.
//
// # Data Source
//
// Rows come from the NOAA National Climatic Data Center storm events
// database (1950-2011), distributed as a bzip2-compressed CSV. Each row is
// one recorded weather event with casualty counts and damage estimates.
//
// # Damage Magnitude Encoding
//
// Property and crop damage are stored as a mantissa column (PROPDMG,
// CROPDMG) plus a magnitude code column (PROPDMGEXP, CROPDMGEXP) giving the
// power-of-ten scale:
//
//	"K" → 10^3    "M" → 10^6    "B" → 10^9
//	digit d → 10^d (pre-1996 records)
//
// The database also contains codes outside that set: lowercase letters,
// blanks, "?", "+", "-", and "H". The NWS directive does not define them and
// the historical analyses of this dataset leave those rows unscaled, so
// [NormalizeDamage] treats unknown codes as a multiplier of 1 rather than an
// error. Normalization clears the code columns afterwards, making a repeat
// pass a no-op.
//
// # Impact Aggregation
//
// Two metric families are aggregated per EVTYPE label:
//
//	health impact:    INJURIES + FATALITIES
//	financial impact: normalized PROPDMG + CROPDMG, in dollars
//
// [AggregateByEventType] sums each family's columns per event type and ranks
// the groups by combined total, descending. Ties keep first-encountered
// order, which makes the ranking deterministic for a fixed input file.
package domain
