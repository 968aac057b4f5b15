package analysis

import (
	"math"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"plain seconds", "65", 65, false},
		{"fractional seconds", "65.4", 65.4, false},
		{"minutes and seconds", "4:19.6", 259.6, false},
		{"hours minutes seconds", "1:02:03", 3723, false},
		{"hours with fractional seconds", "2:10:30.5", 7830.5, false},
		{"leading whitespace", " 4:30 ", 270, false},
		{"zero", "0", 0, false},
		{"empty string", "", 0, true},
		{"not a number", "abc", 0, true},
		{"partial garbage", "4:xx", 0, true},
		{"too many segments", "1:2:3:4", 0, true},
		{"empty segment", "4:", 0, true},
		{"negative seconds", "-5", 0, true},
		{"negative minutes", "-1:30", 0, true},
		{"fractional minutes rejected", "1.5:30", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDuration(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) error = %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"under a minute", 59.3, "0:59.3"},
		{"minutes", 259.6, "4:19.6"},
		{"zero-padded seconds", 125.0, "2:05.0"},
		{"just under an hour", 3599.9, "59:59.9"},
		{"over an hour", 3723.4, "1:02:03.4"},
		{"marathon range", 9492, "2:38:12.0"},
		{"rounding carries into minutes", 59.97, "1:00.0"},
		{"nan renders placeholder", math.NaN(), "—"},
		{"infinity renders placeholder", math.Inf(1), "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

// Parsing then re-formatting a valid duration string must reproduce the
// same seconds value within 0.05s (formatting rounds to one decimal).
func TestDurationRoundTrip(t *testing.T) {
	inputs := []string{"59.3", "4:19.6", "12:05", "1:02:03.4", "2:38:12", "0:07.1"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			parsed, err := ParseDuration(input)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error = %v", input, err)
			}
			reparsed, err := ParseDuration(FormatDuration(parsed))
			if err != nil {
				t.Fatalf("ParseDuration(FormatDuration(%v)) error = %v", parsed, err)
			}
			if math.Abs(reparsed-parsed) > 0.05 {
				t.Errorf("round trip of %q drifted: %v -> %v", input, parsed, reparsed)
			}
		})
	}
}
