package analysis

import (
	"math"
	"time"
)

// DefaultHalfLifeDays is the recency half-life for workout weighting: a
// workout's influence on the aggregated fitness snapshot halves every 21
// days.
const DefaultHalfLifeDays = 21.0

// DecayWeight returns the exponential recency weight of a date relative to
// now: 0.5^(ageDays/halfLifeDays), clamped to [0, 1].
//
// A zero date yields weight 0. A future date would decay "backwards" above
// 1 and is capped at 1, so future-dated entries count as maximally recent
// rather than being rejected.
func DecayWeight(date, now time.Time, halfLifeDays float64) float64 {
	if date.IsZero() || halfLifeDays <= 0 {
		return 0
	}

	ageDays := now.Sub(date).Hours() / 24
	w := math.Pow(0.5, ageDays/halfLifeDays)
	if math.IsNaN(w) {
		return 0
	}
	return clamp(w, 0, 1)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
