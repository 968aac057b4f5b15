package analysis

// AthleteType binds an event-specialization key to its Riegel fatigue
// exponent and the short/long emphasis pair used by the workout curve.
// ShortWeight + LongWeight is always 1.
type AthleteType struct {
	Key            string
	Label          string
	RiegelExponent float64 // b in t2 = t1*(d2/d1)^b
	ShortWeight    float64
	LongWeight     float64
}

// Fallback constants applied when an athlete type key is unknown.
const (
	DefaultRiegelExponent = 1.08
	DefaultShortWeight    = 0.5
	DefaultLongWeight     = 0.5
)

// AthleteTypes enumerates the nine supported specializations in display
// order. Exponents stay within [1.05, 1.12]; sprint-leaning types fatigue
// less over distance, marathoners carry the steepest curve.
var AthleteTypes = []AthleteType{
	{"400/800", "400m / 800m", 1.05, 0.90, 0.10},
	{"800/1500", "800m / 1500m", 1.06, 0.75, 0.25},
	{"1500/miler", "1500m / Mile", 1.08, 0.60, 0.40},
	{"3k/5k", "3K / 5K", 1.09, 0.45, 0.55},
	{"5k/10k", "5K / 10K", 1.10, 0.35, 0.65},
	{"10k", "10K", 1.10, 0.30, 0.70},
	{"half-marathon", "Half Marathon", 1.11, 0.20, 0.80},
	{"marathon", "Marathon", 1.12, 0.10, 0.90},
	{"all-round", "All-rounder", 1.08, 0.50, 0.50},
}

// TypeForKey looks up an athlete type by key. Unknown or legacy keys fall
// back to the documented defaults (exponent 1.08, even weights) instead of
// failing.
func TypeForKey(key string) AthleteType {
	for _, t := range AthleteTypes {
		if t.Key == key {
			return t
		}
	}
	return AthleteType{
		Key:            key,
		Label:          key,
		RiegelExponent: DefaultRiegelExponent,
		ShortWeight:    DefaultShortWeight,
		LongWeight:     DefaultLongWeight,
	}
}

// KnownTypeKeys returns the enumerated keys in display order.
func KnownTypeKeys() []string {
	keys := make([]string, len(AthleteTypes))
	for i, t := range AthleteTypes {
		keys[i] = t.Key
	}
	return keys
}

// IsKnownTypeKey reports whether key is one of the enumerated types.
func IsKnownTypeKey(key string) bool {
	for _, t := range AthleteTypes {
		if t.Key == key {
			return true
		}
	}
	return false
}
