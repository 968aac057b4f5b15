package analysis

import (
	"math"
	"time"
)

// Workout is one interval session: RepCount reps of RepMeters with
// RestSeconds of recovery between reps. RepTime is the raw clock string as
// entered; RepCount is informational and never used by the model.
type Workout struct {
	ID          string
	RepCount    int
	RepMeters   float64
	RepTime     string
	RestSeconds float64
	Date        time.Time
}

// Rep-distance bands for proxy classification (meters). The bands overlap:
// a 400m rep is both "short" and inside the ASR window and contributes to
// both proxies.
const (
	ShortBandMaxMeters = 600
	LongBandMinMeters  = 800
	ASRBandMinMeters   = 300
	ASRBandMaxMeters   = 500
)

// ProxyContribution holds the speed proxies (m/s) one workout contributes.
// A nil field means the workout does not inform that proxy.
type ProxyContribution struct {
	MAS       *float64
	Threshold *float64
	ASR       *float64
}

// FitnessSnapshot is the recency-weighted aggregate over all workouts.
// A nil proxy had no contributing workouts — undefined, not zero — and
// tells the caller the corresponding curve anchor fell back to a guard-rail
// default.
type FitnessSnapshot struct {
	MAS       *float64 // maximum aerobic speed, m/s
	Threshold *float64 // sustainable threshold speed, m/s
	ASR       *float64 // anaerobic speed reserve, m/s
}

// HasData reports whether any proxy is backed by actual workouts.
func (s FitnessSnapshot) HasData() bool {
	return s.MAS != nil || s.Threshold != nil || s.ASR != nil
}

// WorkoutProxies extracts the fitness proxies a single workout contributes.
// Workouts with an unparseable or non-positive rep time, or a non-positive
// rep distance, contribute nothing.
func WorkoutProxies(w Workout) ProxyContribution {
	repSeconds, err := ParseDuration(w.RepTime)
	if err != nil || repSeconds <= 0 || w.RepMeters <= 0 {
		return ProxyContribution{}
	}

	v := w.RepMeters / repSeconds

	rest := w.RestSeconds
	if rest < 0 {
		rest = 0
	}
	wr := rest / repSeconds

	// Recovery attenuation maps the work:rest ratio smoothly into (0, 1],
	// approaching 1 as rest grows relative to work. Short reps on full
	// recovery are closer to a true maximal-speed effort.
	recAtten := 1 / (1 + 0.6/(wr+0.05))

	var c ProxyContribution
	if w.RepMeters <= ShortBandMaxMeters {
		mas := v * (0.86 + 0.12*recAtten)
		c.MAS = &mas
	}
	if w.RepMeters >= LongBandMinMeters {
		// Less rest pushes the rep speed closer to a sustainable
		// threshold pace.
		thr := v * (0.74 + 0.20*(1-math.Tanh(wr)))
		c.Threshold = &thr
	}
	if w.RepMeters >= ASRBandMinMeters && w.RepMeters <= ASRBandMaxMeters {
		asr := v
		c.ASR = &asr
	}
	return c
}

// AggregateFitness computes the recency-weighted average of each proxy
// independently across all workouts. A proxy with no contributing workouts
// stays nil.
func AggregateFitness(workouts []Workout, now time.Time) FitnessSnapshot {
	var masSum, masWeight float64
	var thrSum, thrWeight float64
	var asrSum, asrWeight float64

	for _, w := range workouts {
		c := WorkoutProxies(w)
		weight := DecayWeight(w.Date, now, DefaultHalfLifeDays)
		if weight <= 0 {
			continue
		}
		if c.MAS != nil {
			masSum += *c.MAS * weight
			masWeight += weight
		}
		if c.Threshold != nil {
			thrSum += *c.Threshold * weight
			thrWeight += weight
		}
		if c.ASR != nil {
			asrSum += *c.ASR * weight
			asrWeight += weight
		}
	}

	var snap FitnessSnapshot
	if masWeight > 0 {
		mas := masSum / masWeight
		snap.MAS = &mas
	}
	if thrWeight > 0 {
		thr := thrSum / thrWeight
		snap.Threshold = &thr
	}
	if asrWeight > 0 {
		asr := asrSum / asrWeight
		snap.ASR = &asr
	}
	return snap
}
