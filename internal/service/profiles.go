package service

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"pacecast/internal/analysis"
	"pacecast/internal/store"
)

// ProfileSummary is one formatted line of the saved-profiles list.
type ProfileSummary struct {
	ID           string
	Name         string
	TypeLabel    string
	PRLabel      string // e.g. "1500m in 4:00.0"
	WorkoutCount int
	UpdatedAgo   string // e.g. "3 days ago"
}

// SaveProfile snapshots the current planner input, recomputes predictions
// and persists everything under a fresh id. Returns the new profile id.
func (s *PlannerService) SaveProfile(name string, in PredictionInput, now time.Time) (string, error) {
	pr, typ, err := buildModelInput(in)
	if err != nil {
		return "", err
	}

	set := analysis.GeneratePredictions(pr, typ, in.Workouts, now)

	id := s.newID()
	profile := &store.Profile{
		ID:               id,
		Name:             name,
		AthleteType:      in.AthleteType,
		PRDistanceMeters: in.PRDistanceMeters,
		PRTime:           in.PRTime,
		PRDate:           in.PRDate,
	}

	for _, w := range in.Workouts {
		wid := w.ID
		if wid == "" {
			wid = s.newID()
		}
		profile.Workouts = append(profile.Workouts, store.Workout{
			ID:          wid,
			ProfileID:   id,
			RepCount:    w.RepCount,
			RepMeters:   w.RepMeters,
			RepTime:     w.RepTime,
			RestSeconds: w.RestSeconds,
			Date:        w.Date,
		})
	}

	for _, ev := range set.Events {
		profile.Predictions = append(profile.Predictions, store.Prediction{
			ProfileID:       id,
			EventKey:        ev.EventKey,
			EventMeters:     ev.Meters,
			BaselineSeconds: ev.BaselineSeconds,
			WorkoutSeconds:  ev.WorkoutSeconds,
			BlendedSeconds:  ev.BlendedSeconds,
			ComputedAt:      now,
		})
	}

	if err := s.db.SaveProfile(profile); err != nil {
		return "", fmt.Errorf("saving profile: %w", err)
	}
	return id, nil
}

// ListProfiles retrieves saved profiles formatted for display, most
// recently updated first.
func (s *PlannerService) ListProfiles() ([]ProfileSummary, error) {
	profiles, err := s.db.ListProfiles()
	if err != nil {
		return nil, err
	}

	var summaries []ProfileSummary
	for _, p := range profiles {
		summaries = append(summaries, ProfileSummary{
			ID:           p.ID,
			Name:         p.Name,
			TypeLabel:    analysis.TypeForKey(p.AthleteType).Label,
			PRLabel:      fmt.Sprintf("%.0fm in %s", p.PRDistanceMeters, p.PRTime),
			WorkoutCount: p.WorkoutCount,
			UpdatedAgo:   humanize.Time(p.UpdatedAt),
		})
	}
	return summaries, nil
}

// LoadProfile restores a saved profile as planner input.
func (s *PlannerService) LoadProfile(id string) (PredictionInput, string, error) {
	p, err := s.db.GetProfile(id)
	if err != nil {
		return PredictionInput{}, "", err
	}

	in := PredictionInput{
		PRDistanceMeters: p.PRDistanceMeters,
		PRTime:           p.PRTime,
		PRDate:           p.PRDate,
		AthleteType:      p.AthleteType,
	}
	for _, w := range p.Workouts {
		in.Workouts = append(in.Workouts, analysis.Workout{
			ID:          w.ID,
			RepCount:    w.RepCount,
			RepMeters:   w.RepMeters,
			RepTime:     w.RepTime,
			RestSeconds: w.RestSeconds,
			Date:        w.Date,
		})
	}
	return in, p.Name, nil
}

// DeleteProfile removes a saved profile.
func (s *PlannerService) DeleteProfile(id string) error {
	return s.db.DeleteProfile(id)
}
