package analysis

import (
	"math"
	"time"
)

// PersonalRecord is the athlete's reference performance, already parsed
// into seconds. Immutable once handed to a prediction call.
type PersonalRecord struct {
	DistanceMeters float64
	Seconds        float64
	Date           time.Time
}

// Confidence and blend-weight bounds. The baseline always retains at least
// 15% influence; workouts never exceed 85% regardless of volume.
const (
	MaxConfidence = 0.9
	MinDataWeight = 0.25
	MaxDataWeight = 0.85
)

// BlendResult carries both curves and their confidence-weighted geometric
// combination for one target distance.
type BlendResult struct {
	BaselineSeconds float64
	WorkoutSeconds  float64
	BlendedSeconds  float64
	Fitness         FitnessSnapshot
	DataWeight      float64
}

// BlendPrediction combines the PR-derived baseline curve with the
// workout-derived synthetic curve at the target distance.
//
// Confidence grows with the recency-weighted workout volume:
// conf = clamp((Σ decay / max(1, n)) * 0.9, 0, 0.9), and the workout
// curve's share of the blend is dataWeight = clamp(0.25+0.6*conf,
// 0.25, 0.85). The blend itself is geometric, so the result always lies
// between the two curves.
func BlendPrediction(pr PersonalRecord, targetMeters float64, typ AthleteType, workouts []Workout, now time.Time) BlendResult {
	base := RiegelPredict(pr.Seconds, pr.DistanceMeters, targetMeters, typ.RiegelExponent)

	fit := AggregateFitness(workouts, now)
	wkt := SynthesizeWorkoutTime(targetMeters, fit, typ)

	var weightSum float64
	for _, w := range workouts {
		weightSum += DecayWeight(w.Date, now, DefaultHalfLifeDays)
	}
	conf := clamp(weightSum/math.Max(1, float64(len(workouts)))*MaxConfidence, 0, MaxConfidence)
	dataWeight := clamp(0.25+0.6*conf, MinDataWeight, MaxDataWeight)

	blended := math.Exp(dataWeight*math.Log(wkt) + (1-dataWeight)*math.Log(base))

	return BlendResult{
		BaselineSeconds: base,
		WorkoutSeconds:  wkt,
		BlendedSeconds:  blended,
		Fitness:         fit,
		DataWeight:      dataWeight,
	}
}
