package analysis

import "math"

// Guard-rail speeds (m/s) substituted when a proxy has no contributing
// workouts. They describe a modest recreational runner so that predictions
// without workout data stay plausible rather than degenerate.
const (
	FallbackMAS       = 5.5
	FallbackThreshold = 4.2
)

// SynthesizeWorkoutTime predicts a time (seconds) at an arbitrary distance
// from the aggregated fitness snapshot.
//
// The curve is a power law t = a*d^b fitted through two anchor times — a
// 1500m time derived from MAS and a 10K time derived from threshold speed —
// with the exponent pulled toward endurance by the athlete type's long
// weight. For targets of 800m and under, an optimistic ASR-derived estimate
// is blended in geometrically, weighted toward the ASR side for
// speed-oriented types.
//
// Blending is geometric (log-space) throughout: race times are
// multiplicative quantities, and averaging logarithms keeps the blend
// consistent across the full distance range instead of letting one large
// estimate dominate additively.
func SynthesizeWorkoutTime(distanceMeters float64, fit FitnessSnapshot, typ AthleteType) float64 {
	if distanceMeters <= 0 {
		return math.NaN()
	}

	mas := FallbackMAS
	if fit.MAS != nil && *fit.MAS > 0 {
		mas = *fit.MAS
	}
	threshold := FallbackThreshold
	if fit.Threshold != nil && *fit.Threshold > 0 {
		threshold = *fit.Threshold
	}
	asr := mas
	if fit.ASR != nil && *fit.ASR > 0 {
		asr = *fit.ASR
	}

	// Anchor the curve at 1500m (slightly under MAS pace) and 10K
	// (slightly under threshold pace).
	t1500 := 1500 / (0.92 * mas)
	t10000 := 10000 / (0.98 * threshold)

	b := math.Log(t10000/t1500) / math.Log(10000.0/1500.0)
	bAdj := clamp(b*(0.65+0.35*typ.LongWeight), 1.03, 1.16)
	a := t1500 / math.Pow(1500, bAdj)
	tPred := a * math.Pow(distanceMeters, bAdj)

	if distanceMeters <= LongBandMinMeters {
		// Short races lean on anaerobic speed reserve. The bias ranges
		// 0.35–0.80, favoring the ASR estimate for sprint-leaning types.
		pure := distanceMeters / (0.90 * asr)
		bias := 0.35 + 0.45*typ.ShortWeight
		tPred = math.Exp(bias*math.Log(pure) + (1-bias)*math.Log(tPred))
	}

	return tPred
}
