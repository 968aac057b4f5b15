package analysis

import "math"

// RiegelPredict extrapolates a known performance to another distance using
// the Riegel power law: t2 = t1*(d2/d1)^b. The function is stateless and
// deterministic, and an identity when d2 == d1.
//
// Non-positive time or distances yield NaN — the explicit invalid value.
// Callers must check with math.IsNaN before formatting or aggregating.
func RiegelPredict(t1, d1, d2, b float64) float64 {
	if t1 <= 0 || d1 <= 0 || d2 <= 0 {
		return math.NaN()
	}
	if d1 == d2 {
		return t1
	}
	return t1 * math.Pow(d2/d1, b)
}
