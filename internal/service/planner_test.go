package service

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"pacecast/internal/analysis"
	"pacecast/internal/store"
)

// newTestService builds a PlannerService over an in-memory store with a
// deterministic id sequence.
func newTestService(t *testing.T) *PlannerService {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := store.NewTestDB(sqlDB)
	if err != nil {
		t.Fatalf("preparing test database: %v", err)
	}

	svc := NewPlannerService(db)
	counter := 0
	svc.newID = func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
	return svc
}

func milerInput(now time.Time) PredictionInput {
	return PredictionInput{
		PRDistanceMeters: 1500,
		PRTime:           "4:00.0",
		PRDate:           now.AddDate(0, 0, -30),
		AthleteType:      "1500/miler",
	}
}

func TestBuildPredictions(t *testing.T) {
	now := time.Now()
	svc := newTestService(t)

	t.Run("pr only", func(t *testing.T) {
		data, err := svc.BuildPredictions(milerInput(now), now)
		if err != nil {
			t.Fatalf("BuildPredictions() error = %v", err)
		}

		if len(data.Rows) != 9 {
			t.Fatalf("got %d rows, want 9", len(data.Rows))
		}
		if data.HasWorkoutData {
			t.Error("HasWorkoutData = true, want false with no workouts")
		}
		if data.DataWeight != 0.25 {
			t.Errorf("DataWeight = %v, want floor 0.25", data.DataWeight)
		}
		if data.DataWeightPct != "25%" {
			t.Errorf("DataWeightPct = %q, want 25%%", data.DataWeightPct)
		}
		if data.MAS != "—" || data.Threshold != "—" || data.ASR != "—" {
			t.Errorf("snapshot = %s/%s/%s, want all placeholders", data.MAS, data.Threshold, data.ASR)
		}
		if data.SourceLabel != "1500m PR 4:00.0" {
			t.Errorf("SourceLabel = %q", data.SourceLabel)
		}

		// Mile row formats in the ~4:19 window computed by the model.
		mile := data.Rows[3]
		if mile.EventKey != "mile" || mile.EventLabel != "Mile" {
			t.Errorf("row 3 = %q/%q, want mile/Mile", mile.EventKey, mile.EventLabel)
		}
		if mile.Baseline != "4:18.9" {
			t.Errorf("mile baseline = %q, want 4:18.9", mile.Baseline)
		}
	})

	t.Run("workouts feed the snapshot", func(t *testing.T) {
		in := milerInput(now)
		in.Workouts = []analysis.Workout{
			{ID: "w1", RepCount: 10, RepMeters: 400, RepTime: "65.0", RestSeconds: 60, Date: now},
		}

		data, err := svc.BuildPredictions(in, now)
		if err != nil {
			t.Fatalf("BuildPredictions() error = %v", err)
		}
		if !data.HasWorkoutData {
			t.Error("HasWorkoutData = false, want true")
		}
		if data.MAS == "—" || data.ASR == "—" {
			t.Errorf("MAS/ASR = %s/%s, want values from the 400m reps", data.MAS, data.ASR)
		}
		if data.Threshold != "—" {
			t.Errorf("Threshold = %s, want placeholder (400m is below the long band)", data.Threshold)
		}
		if data.DataWeight <= 0.25 {
			t.Errorf("DataWeight = %v, want above the floor with a fresh workout", data.DataWeight)
		}
	})

	t.Run("invalid pr time", func(t *testing.T) {
		in := milerInput(now)
		in.PRTime = "four minutes"
		if _, err := svc.BuildPredictions(in, now); !errors.Is(err, ErrInvalidPR) {
			t.Errorf("BuildPredictions() error = %v, want ErrInvalidPR", err)
		}
	})

	t.Run("non-positive pr distance", func(t *testing.T) {
		in := milerInput(now)
		in.PRDistanceMeters = 0
		if _, err := svc.BuildPredictions(in, now); !errors.Is(err, ErrInvalidPR) {
			t.Errorf("BuildPredictions() error = %v, want ErrInvalidPR", err)
		}
	})

	t.Run("unknown athlete type still predicts", func(t *testing.T) {
		in := milerInput(now)
		in.AthleteType = "legacy-key"
		data, err := svc.BuildPredictions(in, now)
		if err != nil {
			t.Fatalf("BuildPredictions() error = %v", err)
		}
		if len(data.Rows) != 9 {
			t.Errorf("got %d rows, want 9", len(data.Rows))
		}
	})
}

func TestWorkoutEditing(t *testing.T) {
	now := time.Now()
	svc := newTestService(t)

	t.Run("new workout gets defaults and an id", func(t *testing.T) {
		w := svc.NewWorkout(now)
		if w.ID == "" {
			t.Error("NewWorkout() id is empty")
		}
		if w.RepCount != DefaultRepCount || w.RepMeters != DefaultRepMeters {
			t.Errorf("defaults = %d x %.0fm, want %d x %dm", w.RepCount, w.RepMeters, DefaultRepCount, DefaultRepMeters)
		}
		if w.RepTime != DefaultRepTime || w.RestSeconds != DefaultRestSeconds {
			t.Errorf("defaults = %q rep / %.0fs rest", w.RepTime, w.RestSeconds)
		}
	})

	t.Run("replace does not mutate the original slice", func(t *testing.T) {
		original := []analysis.Workout{
			{ID: "a", RepMeters: 400, RepTime: "70"},
			{ID: "b", RepMeters: 1000, RepTime: "3:20"},
		}

		edited := original[1]
		edited.RepTime = "3:10"
		updated := ReplaceWorkout(original, edited)

		if original[1].RepTime != "3:20" {
			t.Errorf("original mutated: RepTime = %q", original[1].RepTime)
		}
		if updated[1].RepTime != "3:10" {
			t.Errorf("updated slice RepTime = %q, want 3:10", updated[1].RepTime)
		}
	})

	t.Run("remove returns a slice without the id", func(t *testing.T) {
		original := []analysis.Workout{{ID: "a"}, {ID: "b"}, {ID: "c"}}
		got := RemoveWorkout(original, "b")

		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
			t.Errorf("RemoveWorkout = %v, want [a c]", got)
		}
		if len(original) != 3 {
			t.Errorf("original length changed to %d", len(original))
		}
	})

	t.Run("remove of unknown id is a no-op", func(t *testing.T) {
		original := []analysis.Workout{{ID: "a"}}
		if got := RemoveWorkout(original, "zz"); len(got) != 1 {
			t.Errorf("RemoveWorkout(unknown) = %v, want original contents", got)
		}
	})
}
