package analysis

import (
	"math"
	"testing"
	"time"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestWorkoutProxies(t *testing.T) {
	today := time.Now()

	t.Run("400m reps feed MAS and ASR but not threshold", func(t *testing.T) {
		// Scenario: 400m in 65.0 with 60s rest.
		c := WorkoutProxies(Workout{RepMeters: 400, RepTime: "65.0", RestSeconds: 60, Date: today})

		if c.MAS == nil {
			t.Fatal("MAS = nil, want a value")
		}
		if c.ASR == nil {
			t.Fatal("ASR = nil, want a value")
		}
		if c.Threshold != nil {
			t.Errorf("Threshold = %v, want nil (400m is below the long band)", *c.Threshold)
		}

		v := 400.0 / 65.0
		if *c.ASR != v {
			t.Errorf("ASR = %v, want raw rep speed %v", *c.ASR, v)
		}

		wr := 60.0 / 65.0
		recAtten := 1 / (1 + 0.6/(wr+0.05))
		wantMAS := v * (0.86 + 0.12*recAtten)
		if math.Abs(*c.MAS-wantMAS) > 1e-9 {
			t.Errorf("MAS = %v, want %v", *c.MAS, wantMAS)
		}
	})

	t.Run("1000m reps feed threshold only", func(t *testing.T) {
		c := WorkoutProxies(Workout{RepMeters: 1000, RepTime: "3:20", RestSeconds: 90, Date: today})

		if c.Threshold == nil {
			t.Fatal("Threshold = nil, want a value")
		}
		if c.MAS != nil {
			t.Errorf("MAS = %v, want nil", *c.MAS)
		}
		if c.ASR != nil {
			t.Errorf("ASR = %v, want nil", *c.ASR)
		}

		v := 1000.0 / 200.0
		wr := 90.0 / 200.0
		want := v * (0.74 + 0.20*(1-math.Tanh(wr)))
		if math.Abs(*c.Threshold-want) > 1e-9 {
			t.Errorf("Threshold = %v, want %v", *c.Threshold, want)
		}
	})

	t.Run("600m reps feed MAS only", func(t *testing.T) {
		c := WorkoutProxies(Workout{RepMeters: 600, RepTime: "1:45", RestSeconds: 120, Date: today})
		if c.MAS == nil || c.Threshold != nil || c.ASR != nil {
			t.Errorf("600m contribution = %+v, want MAS only", c)
		}
	})

	t.Run("less rest pushes threshold proxy higher", func(t *testing.T) {
		short := WorkoutProxies(Workout{RepMeters: 1000, RepTime: "3:20", RestSeconds: 30, Date: today})
		long := WorkoutProxies(Workout{RepMeters: 1000, RepTime: "3:20", RestSeconds: 300, Date: today})
		if *short.Threshold <= *long.Threshold {
			t.Errorf("threshold with 30s rest (%v) should exceed 300s rest (%v)", *short.Threshold, *long.Threshold)
		}
	})

	t.Run("unparseable rep time contributes nothing", func(t *testing.T) {
		c := WorkoutProxies(Workout{RepMeters: 400, RepTime: "fast", RestSeconds: 60, Date: today})
		if c.MAS != nil || c.Threshold != nil || c.ASR != nil {
			t.Errorf("invalid rep time produced a contribution: %+v", c)
		}
	})

	t.Run("zero rep time contributes nothing", func(t *testing.T) {
		c := WorkoutProxies(Workout{RepMeters: 400, RepTime: "0", RestSeconds: 60, Date: today})
		if c.MAS != nil || c.Threshold != nil || c.ASR != nil {
			t.Errorf("zero rep time produced a contribution: %+v", c)
		}
	})

	t.Run("non-positive distance contributes nothing", func(t *testing.T) {
		c := WorkoutProxies(Workout{RepMeters: 0, RepTime: "65", RestSeconds: 60, Date: today})
		if c.MAS != nil || c.Threshold != nil || c.ASR != nil {
			t.Errorf("zero distance produced a contribution: %+v", c)
		}
	})
}

func TestAggregateFitness(t *testing.T) {
	now := time.Now()

	t.Run("no workouts leaves every proxy undefined", func(t *testing.T) {
		snap := AggregateFitness(nil, now)
		if snap.HasData() {
			t.Errorf("AggregateFitness(nil) = %+v, want all nil", snap)
		}
	})

	t.Run("single workout average equals its contribution", func(t *testing.T) {
		w := Workout{RepMeters: 400, RepTime: "65.0", RestSeconds: 60, Date: now}
		snap := AggregateFitness([]Workout{w}, now)
		c := WorkoutProxies(w)

		if snap.MAS == nil || math.Abs(*snap.MAS-*c.MAS) > 1e-9 {
			t.Errorf("MAS = %v, want %v", snap.MAS, *c.MAS)
		}
		if snap.ASR == nil || math.Abs(*snap.ASR-*c.ASR) > 1e-9 {
			t.Errorf("ASR = %v, want %v", snap.ASR, *c.ASR)
		}
		if snap.Threshold != nil {
			t.Errorf("Threshold = %v, want nil", *snap.Threshold)
		}
	})

	t.Run("recent workouts dominate stale ones", func(t *testing.T) {
		fast := Workout{RepMeters: 400, RepTime: "60", RestSeconds: 60, Date: now}
		slow := Workout{RepMeters: 400, RepTime: "80", RestSeconds: 60, Date: now.AddDate(0, 0, -63)} // three half-lives old

		snap := AggregateFitness([]Workout{fast, slow}, now)
		fastMAS := *WorkoutProxies(fast).MAS
		slowMAS := *WorkoutProxies(slow).MAS
		mid := (fastMAS + slowMAS) / 2

		if *snap.MAS <= mid {
			t.Errorf("weighted MAS %v should sit above the unweighted mean %v", *snap.MAS, mid)
		}
		if *snap.MAS >= fastMAS {
			t.Errorf("weighted MAS %v should stay below the recent contribution %v", *snap.MAS, fastMAS)
		}
	})

	t.Run("invalid workouts are excluded not zeroed", func(t *testing.T) {
		workouts := []Workout{
			{RepMeters: 400, RepTime: "broken", RestSeconds: 60, Date: now},
			{RepMeters: 400, RepTime: "65", RestSeconds: 60, Date: now},
		}
		snap := AggregateFitness(workouts, now)
		want := *WorkoutProxies(workouts[1]).MAS
		if snap.MAS == nil || math.Abs(*snap.MAS-want) > 1e-9 {
			t.Errorf("MAS = %v, want %v (invalid workout must not drag the average)", snap.MAS, want)
		}
	})
}
