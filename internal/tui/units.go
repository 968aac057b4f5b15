package tui

import (
	"fmt"
	"math"

	"pacecast/internal/config"
)

const (
	metersPerMile = 1609.34
	metersPerKm   = 1000.0
)

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance in meters to the user's preferred unit.
// Track distances under 3000m render in plain meters regardless of unit.
func (u Units) FormatDistance(meters float64) string {
	if meters < 3000 {
		return fmt.Sprintf("%.0fm", meters)
	}
	if u.cfg.DistanceUnit == "mi" {
		return fmt.Sprintf("%.1f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f km", meters/metersPerKm)
}

// FormatPace formats pace from total seconds and meters to the user's
// preferred unit
func (u Units) FormatPace(seconds, meters float64) string {
	if meters <= 0 || seconds <= 0 || math.IsNaN(seconds) {
		return "-"
	}

	var paceSeconds float64
	if u.cfg.PaceUnit == "min/mi" {
		paceSeconds = seconds / (meters / metersPerMile)
	} else {
		paceSeconds = seconds / (meters / metersPerKm)
	}

	mins := int(paceSeconds) / 60
	secs := int(paceSeconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// PaceMinutes returns pace in decimal minutes per preferred unit, for
// charting. Returns 0 for invalid input.
func (u Units) PaceMinutes(seconds, meters float64) float64 {
	if meters <= 0 || seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	if u.cfg.PaceUnit == "min/mi" {
		return seconds / (meters / metersPerMile) / 60
	}
	return seconds / (meters / metersPerKm) / 60
}

// PaceLabel returns the pace unit label ("min/mi" or "min/km")
func (u Units) PaceLabel() string {
	if u.cfg.PaceUnit == "min/mi" {
		return "min/mi"
	}
	return "min/km"
}
