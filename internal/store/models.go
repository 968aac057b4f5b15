package store

import "time"

// Profile is a named snapshot of the planner inputs plus the predictions
// computed when it was saved.
type Profile struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	AthleteType      string    `db:"athlete_type"`
	PRDistanceMeters float64   `db:"pr_distance_meters"`
	PRTime           string    `db:"pr_time"` // raw clock string as entered
	PRDate           time.Time `db:"pr_date"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`

	// Loaded by GetProfile; ListProfiles leaves these nil and fills
	// WorkoutCount instead.
	Workouts     []Workout
	Predictions  []Prediction
	WorkoutCount int
}

// Workout is one saved interval session belonging to a profile.
type Workout struct {
	ID          string    `db:"id"`
	ProfileID   string    `db:"profile_id"`
	RepCount    int       `db:"rep_count"`
	RepMeters   float64   `db:"rep_meters"`
	RepTime     string    `db:"rep_time"` // raw clock string as entered
	RestSeconds float64   `db:"rest_seconds"`
	Date        time.Time `db:"workout_date"`
}

// Prediction is one saved per-event prediction row.
type Prediction struct {
	ProfileID       string    `db:"profile_id"`
	EventKey        string    `db:"event_key"`
	EventMeters     float64   `db:"event_meters"`
	BaselineSeconds float64   `db:"baseline_seconds"`
	WorkoutSeconds  float64   `db:"workout_seconds"`
	BlendedSeconds  float64   `db:"blended_seconds"`
	ComputedAt      time.Time `db:"computed_at"`
}
