package analysis

import (
	"math"
	"testing"
)

// The type table is a validated constant lookup: every entry must keep its
// exponent in [1.05, 1.12] and its weight pair summing to 1.
func TestAthleteTypeTable(t *testing.T) {
	if len(AthleteTypes) != 9 {
		t.Fatalf("AthleteTypes has %d entries, want 9", len(AthleteTypes))
	}

	seen := make(map[string]bool)
	for _, typ := range AthleteTypes {
		t.Run(typ.Key, func(t *testing.T) {
			if seen[typ.Key] {
				t.Errorf("duplicate key %q", typ.Key)
			}
			seen[typ.Key] = true

			if typ.RiegelExponent < 1.05 || typ.RiegelExponent > 1.12 {
				t.Errorf("exponent %v outside [1.05, 1.12]", typ.RiegelExponent)
			}
			if sum := typ.ShortWeight + typ.LongWeight; math.Abs(sum-1) > 1e-9 {
				t.Errorf("weights sum to %v, want 1", sum)
			}
			if typ.ShortWeight < 0 || typ.LongWeight < 0 {
				t.Errorf("negative weight: short=%v long=%v", typ.ShortWeight, typ.LongWeight)
			}
			if typ.Label == "" {
				t.Error("empty label")
			}
		})
	}
}

func TestTypeForKey(t *testing.T) {
	t.Run("known key", func(t *testing.T) {
		typ := TypeForKey("1500/miler")
		if typ.RiegelExponent != 1.08 {
			t.Errorf("1500/miler exponent = %v, want 1.08", typ.RiegelExponent)
		}
	})

	t.Run("unknown key falls back to defaults", func(t *testing.T) {
		typ := TypeForKey("triathlete")
		if typ.RiegelExponent != DefaultRiegelExponent {
			t.Errorf("fallback exponent = %v, want %v", typ.RiegelExponent, DefaultRiegelExponent)
		}
		if typ.ShortWeight != DefaultShortWeight || typ.LongWeight != DefaultLongWeight {
			t.Errorf("fallback weights = (%v, %v), want (0.5, 0.5)", typ.ShortWeight, typ.LongWeight)
		}
	})

	t.Run("known keys round trip", func(t *testing.T) {
		for _, key := range KnownTypeKeys() {
			if !IsKnownTypeKey(key) {
				t.Errorf("IsKnownTypeKey(%q) = false", key)
			}
			if TypeForKey(key).Key != key {
				t.Errorf("TypeForKey(%q) returned key %q", key, TypeForKey(key).Key)
			}
		}
	})

	t.Run("unknown key is not known", func(t *testing.T) {
		if IsKnownTypeKey("decathlete") {
			t.Error("IsKnownTypeKey(decathlete) = true")
		}
	})
}
