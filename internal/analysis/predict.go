package analysis

import "time"

// Standard race distances in meters.
const (
	Distance400m     = 400.0
	Distance800m     = 800.0
	Distance1500m    = 1500.0
	Distance1Mile    = 1609.34
	Distance3K       = 3000.0
	Distance5K       = 5000.0
	Distance10K      = 10000.0
	DistanceHalfMara = 21097.5
	DistanceMarathon = 42195.0
)

// EventTarget is one entry in the fixed prediction distance list.
type EventTarget struct {
	Key    string
	Label  string
	Meters float64
}

// EventTargets defines the nine standard prediction distances in the fixed
// output order.
var EventTargets = []EventTarget{
	{"400m", "400m", Distance400m},
	{"800m", "800m", Distance800m},
	{"1500m", "1500m", Distance1500m},
	{"mile", "Mile", Distance1Mile},
	{"3k", "3K", Distance3K},
	{"5k", "5K", Distance5K},
	{"10k", "10K", Distance10K},
	{"half", "Half Marathon", DistanceHalfMara},
	{"marathon", "Marathon", DistanceMarathon},
}

// EventPrediction is the per-event output of the model.
type EventPrediction struct {
	EventKey        string
	Meters          float64
	BaselineSeconds float64
	WorkoutSeconds  float64
	BlendedSeconds  float64
}

// PredictionSet is the full model output for one request: one prediction
// per standard event plus the fitness snapshot and blend weight that
// produced them.
type PredictionSet struct {
	Events     []EventPrediction
	Fitness    FitnessSnapshot
	DataWeight float64
}

// GeneratePredictions runs the blended model once per standard event and
// returns the ordered prediction list. The computation is a pure function
// of its inputs — nothing is cached or mutated, so callers may recompute
// eagerly on every input edit.
func GeneratePredictions(pr PersonalRecord, typ AthleteType, workouts []Workout, now time.Time) PredictionSet {
	set := PredictionSet{
		Events: make([]EventPrediction, 0, len(EventTargets)),
	}

	for i, target := range EventTargets {
		res := BlendPrediction(pr, target.Meters, typ, workouts, now)
		if i == 0 {
			// Snapshot and weight are distance-independent.
			set.Fitness = res.Fitness
			set.DataWeight = res.DataWeight
		}
		set.Events = append(set.Events, EventPrediction{
			EventKey:        target.Key,
			Meters:          target.Meters,
			BaselineSeconds: res.BaselineSeconds,
			WorkoutSeconds:  res.WorkoutSeconds,
			BlendedSeconds:  res.BlendedSeconds,
		})
	}

	return set
}

// TargetLabel returns the display label for an event key, falling back to
// the key itself for unknown values.
func TargetLabel(eventKey string) string {
	for _, t := range EventTargets {
		if t.Key == eventKey {
			return t.Label
		}
	}
	return eventKey
}
