package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SaveProfile inserts or replaces a profile snapshot together with its
// workout and prediction rows. An existing profile with the same id keeps
// its created_at; the children are rewritten wholesale.
func (db *DB) SaveProfile(p *Profile) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.Exec(`
		INSERT INTO profiles (id, name, athlete_type, pr_distance_meters, pr_time, pr_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			athlete_type = excluded.athlete_type,
			pr_distance_meters = excluded.pr_distance_meters,
			pr_time = excluded.pr_time,
			pr_date = excluded.pr_date,
			updated_at = excluded.updated_at
	`, p.ID, p.Name, p.AthleteType, p.PRDistanceMeters, p.PRTime,
		p.PRDate.Format(time.RFC3339), now, now)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM profile_workouts WHERE profile_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing workouts: %w", err)
	}
	for _, w := range p.Workouts {
		_, err := tx.Exec(`
			INSERT INTO profile_workouts (id, profile_id, rep_count, rep_meters, rep_time, rest_seconds, workout_date)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, w.ID, p.ID, w.RepCount, w.RepMeters, w.RepTime, w.RestSeconds,
			w.Date.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("inserting workout %s: %w", w.ID, err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM profile_predictions WHERE profile_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing predictions: %w", err)
	}
	for _, pred := range p.Predictions {
		_, err := tx.Exec(`
			INSERT INTO profile_predictions (profile_id, event_key, event_meters, baseline_seconds, workout_seconds, blended_seconds, computed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.ID, pred.EventKey, pred.EventMeters, pred.BaselineSeconds,
			pred.WorkoutSeconds, pred.BlendedSeconds,
			pred.ComputedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("inserting prediction %s: %w", pred.EventKey, err)
		}
	}

	return tx.Commit()
}

// GetProfile retrieves a profile with its workouts and predictions loaded.
func (db *DB) GetProfile(id string) (*Profile, error) {
	row := db.QueryRow(`
		SELECT id, name, athlete_type, pr_distance_meters, pr_time, pr_date, created_at, updated_at
		FROM profiles
		WHERE id = ?
	`, id)

	p, err := scanProfile(row)
	if err != nil {
		return nil, err
	}

	p.Workouts, err = db.getWorkouts(id)
	if err != nil {
		return nil, fmt.Errorf("loading workouts: %w", err)
	}
	p.WorkoutCount = len(p.Workouts)

	p.Predictions, err = db.getPredictions(id)
	if err != nil {
		return nil, fmt.Errorf("loading predictions: %w", err)
	}

	return p, nil
}

// ListProfiles retrieves all profiles ordered by most recently updated,
// without their workout and prediction rows.
func (db *DB) ListProfiles() ([]Profile, error) {
	rows, err := db.Query(`
		SELECT p.id, p.name, p.athlete_type, p.pr_distance_meters, p.pr_time, p.pr_date,
			p.created_at, p.updated_at,
			(SELECT COUNT(*) FROM profile_workouts w WHERE w.profile_id = p.id)
		FROM profiles p
		ORDER BY p.updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var prDate, createdAt, updatedAt string

		err := rows.Scan(&p.ID, &p.Name, &p.AthleteType, &p.PRDistanceMeters,
			&p.PRTime, &prDate, &createdAt, &updatedAt, &p.WorkoutCount)
		if err != nil {
			return nil, err
		}
		if err := parseProfileDates(&p, prDate, createdAt, updatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// DeleteProfile removes a profile and, via foreign keys, its workout and
// prediction rows.
func (db *DB) DeleteProfile(id string) error {
	res, err := db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (db *DB) getWorkouts(profileID string) ([]Workout, error) {
	rows, err := db.Query(`
		SELECT id, profile_id, rep_count, rep_meters, rep_time, rest_seconds, workout_date
		FROM profile_workouts
		WHERE profile_id = ?
		ORDER BY workout_date DESC, id
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		var date string

		err := rows.Scan(&w.ID, &w.ProfileID, &w.RepCount, &w.RepMeters,
			&w.RepTime, &w.RestSeconds, &date)
		if err != nil {
			return nil, err
		}
		w.Date, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, fmt.Errorf("parsing workout_date %q: %w", date, err)
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

func (db *DB) getPredictions(profileID string) ([]Prediction, error) {
	rows, err := db.Query(`
		SELECT profile_id, event_key, event_meters, baseline_seconds, workout_seconds, blended_seconds, computed_at
		FROM profile_predictions
		WHERE profile_id = ?
		ORDER BY event_meters
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var predictions []Prediction
	for rows.Next() {
		var p Prediction
		var computedAt string

		err := rows.Scan(&p.ProfileID, &p.EventKey, &p.EventMeters,
			&p.BaselineSeconds, &p.WorkoutSeconds, &p.BlendedSeconds, &computedAt)
		if err != nil {
			return nil, err
		}
		p.ComputedAt, err = time.Parse(time.RFC3339, computedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing computed_at %q: %w", computedAt, err)
		}
		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}

// scanProfile scans a single profile from a row
func scanProfile(row *sql.Row) (*Profile, error) {
	var p Profile
	var prDate, createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Name, &p.AthleteType, &p.PRDistanceMeters,
		&p.PRTime, &prDate, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := parseProfileDates(&p, prDate, createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func parseProfileDates(p *Profile, prDate, createdAt, updatedAt string) error {
	var err error
	p.PRDate, err = time.Parse(time.RFC3339, prDate)
	if err != nil {
		return fmt.Errorf("parsing pr_date %q: %w", prDate, err)
	}
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return fmt.Errorf("parsing updated_at %q: %w", updatedAt, err)
	}
	return nil
}
