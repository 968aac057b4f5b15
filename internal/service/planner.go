package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pacecast/internal/analysis"
	"pacecast/internal/store"
)

// ErrInvalidPR is returned when the personal record inputs cannot feed the
// model (bad time string or non-positive distance).
var ErrInvalidPR = errors.New("invalid personal record")

// Default field values for a freshly added workout.
const (
	DefaultRepCount    = 8
	DefaultRepMeters   = 400
	DefaultRepTime     = "75"
	DefaultRestSeconds = 60
)

// PlannerService orchestrates the prediction model over raw user input and
// owns profile persistence. The model itself is pure; this layer parses,
// validates, formats and stores.
type PlannerService struct {
	db    *store.DB
	newID func() string
}

// NewPlannerService creates a PlannerService backed by the given store.
func NewPlannerService(db *store.DB) *PlannerService {
	return &PlannerService{
		db:    db,
		newID: uuid.NewString,
	}
}

// PredictionInput is the raw, user-entered planner state.
type PredictionInput struct {
	PRDistanceMeters float64
	PRTime           string // clock string, e.g. "17:42" or "4:19.6"
	PRDate           time.Time
	AthleteType      string
	Workouts         []analysis.Workout
}

// PredictionRow is one formatted line of the predictions table.
type PredictionRow struct {
	EventKey       string
	EventLabel     string
	Meters         float64
	Baseline       string // formatted durations
	Workout        string
	Blended        string
	BlendedSeconds float64
}

// PredictionsData contains everything the predictions screen renders.
type PredictionsData struct {
	Rows []PredictionRow

	// Fitness snapshot, formatted; "—" marks a proxy with no
	// contributing workouts, which also means the corresponding curve
	// anchor fell back to a guard-rail default.
	MAS       string
	Threshold string
	ASR       string

	DataWeight     float64
	DataWeightPct  string // e.g. "25%"
	HasWorkoutData bool
	WorkoutCount   int

	SourceLabel string // e.g. "1500m PR 4:00.0"
}

// BuildPredictions validates the input, runs the model over the nine
// standard events and formats the result for display.
func (s *PlannerService) BuildPredictions(in PredictionInput, now time.Time) (*PredictionsData, error) {
	pr, typ, err := buildModelInput(in)
	if err != nil {
		return nil, err
	}

	set := analysis.GeneratePredictions(pr, typ, in.Workouts, now)

	data := &PredictionsData{
		MAS:            formatSpeed(set.Fitness.MAS),
		Threshold:      formatSpeed(set.Fitness.Threshold),
		ASR:            formatSpeed(set.Fitness.ASR),
		DataWeight:     set.DataWeight,
		DataWeightPct:  fmt.Sprintf("%.0f%%", set.DataWeight*100),
		HasWorkoutData: set.Fitness.HasData(),
		WorkoutCount:   len(in.Workouts),
		SourceLabel: fmt.Sprintf("%.0fm PR %s", in.PRDistanceMeters,
			analysis.FormatDuration(pr.Seconds)),
	}

	for _, ev := range set.Events {
		data.Rows = append(data.Rows, PredictionRow{
			EventKey:       ev.EventKey,
			EventLabel:     analysis.TargetLabel(ev.EventKey),
			Meters:         ev.Meters,
			Baseline:       analysis.FormatDuration(ev.BaselineSeconds),
			Workout:        analysis.FormatDuration(ev.WorkoutSeconds),
			Blended:        analysis.FormatDuration(ev.BlendedSeconds),
			BlendedSeconds: ev.BlendedSeconds,
		})
	}

	return data, nil
}

// NewWorkout returns a fresh workout with default field values and a unique
// id, dated today.
func (s *PlannerService) NewWorkout(now time.Time) analysis.Workout {
	return analysis.Workout{
		ID:          s.newID(),
		RepCount:    DefaultRepCount,
		RepMeters:   DefaultRepMeters,
		RepTime:     DefaultRepTime,
		RestSeconds: DefaultRestSeconds,
		Date:        now,
	}
}

// ReplaceWorkout returns a new slice with the workout matching updated.ID
// swapped for the updated value. The input slice is never mutated, keeping
// edits copy-on-write.
func ReplaceWorkout(workouts []analysis.Workout, updated analysis.Workout) []analysis.Workout {
	out := make([]analysis.Workout, len(workouts))
	copy(out, workouts)
	for i, w := range out {
		if w.ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}

// RemoveWorkout returns a new slice without the workout with the given id.
func RemoveWorkout(workouts []analysis.Workout, id string) []analysis.Workout {
	out := make([]analysis.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.ID != id {
			out = append(out, w)
		}
	}
	return out
}

// buildModelInput parses and validates the raw input into model values.
func buildModelInput(in PredictionInput) (analysis.PersonalRecord, analysis.AthleteType, error) {
	typ := analysis.TypeForKey(in.AthleteType)

	if in.PRDistanceMeters <= 0 {
		return analysis.PersonalRecord{}, typ,
			fmt.Errorf("%w: distance %.0fm must be positive", ErrInvalidPR, in.PRDistanceMeters)
	}

	seconds, err := analysis.ParseDuration(in.PRTime)
	if err != nil {
		return analysis.PersonalRecord{}, typ,
			fmt.Errorf("%w: parsing time %q: %v", ErrInvalidPR, in.PRTime, err)
	}
	if seconds <= 0 {
		return analysis.PersonalRecord{}, typ,
			fmt.Errorf("%w: time %q must be positive", ErrInvalidPR, in.PRTime)
	}

	pr := analysis.PersonalRecord{
		DistanceMeters: in.PRDistanceMeters,
		Seconds:        seconds,
		Date:           in.PRDate,
	}
	return pr, typ, nil
}

// formatSpeed renders a fitness proxy in m/s, or the placeholder when the
// proxy is undefined.
func formatSpeed(v *float64) string {
	if v == nil {
		return analysis.DurationPlaceholder
	}
	return fmt.Sprintf("%.2f m/s", *v)
}
