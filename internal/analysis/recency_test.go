package analysis

import (
	"math"
	"testing"
	"time"
)

func TestDecayWeight(t *testing.T) {
	now := time.Now()

	t.Run("today weighs 1", func(t *testing.T) {
		if got := DecayWeight(now, now, DefaultHalfLifeDays); got != 1.0 {
			t.Errorf("DecayWeight(now) = %v, want 1.0", got)
		}
	})

	t.Run("one half-life weighs about half", func(t *testing.T) {
		got := DecayWeight(now.AddDate(0, 0, -21), now, DefaultHalfLifeDays)
		if math.Abs(got-0.5) > 0.01 {
			t.Errorf("DecayWeight(now-21d) = %v, want 0.5 ±0.01", got)
		}
	})

	t.Run("ten half-lives is negligible", func(t *testing.T) {
		got := DecayWeight(now.AddDate(0, 0, -210), now, DefaultHalfLifeDays)
		if got >= 0.01 {
			t.Errorf("DecayWeight(now-210d) = %v, want < 0.01", got)
		}
	})

	t.Run("future date clamps to 1", func(t *testing.T) {
		got := DecayWeight(now.AddDate(0, 0, 30), now, DefaultHalfLifeDays)
		if got != 1.0 {
			t.Errorf("DecayWeight(future) = %v, want 1.0", got)
		}
	})

	t.Run("zero date weighs 0", func(t *testing.T) {
		if got := DecayWeight(time.Time{}, now, DefaultHalfLifeDays); got != 0 {
			t.Errorf("DecayWeight(zero time) = %v, want 0", got)
		}
	})

	t.Run("non-positive half-life weighs 0", func(t *testing.T) {
		if got := DecayWeight(now, now, 0); got != 0 {
			t.Errorf("DecayWeight with zero half-life = %v, want 0", got)
		}
	})

	t.Run("weight stays in range", func(t *testing.T) {
		for days := -100; days <= 1000; days += 50 {
			got := DecayWeight(now.AddDate(0, 0, -days), now, DefaultHalfLifeDays)
			if got < 0 || got > 1 {
				t.Errorf("DecayWeight(now-%dd) = %v, outside [0,1]", days, got)
			}
		}
	})
}
