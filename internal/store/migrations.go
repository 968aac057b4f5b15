package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Saved athlete profiles: PR inputs plus the athlete type. The
		// PR time is stored as the raw clock string the user entered so
		// the form can round-trip it unchanged.
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			athlete_type TEXT NOT NULL,
			pr_distance_meters REAL NOT NULL,
			pr_time TEXT NOT NULL,
			pr_date TEXT NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_profiles_updated_at ON profiles(updated_at)`,

		// Workouts belonging to a saved profile
		`CREATE TABLE IF NOT EXISTS profile_workouts (
			id TEXT PRIMARY KEY,
			profile_id TEXT NOT NULL,
			rep_count INTEGER NOT NULL,
			rep_meters REAL NOT NULL,
			rep_time TEXT NOT NULL,
			rest_seconds REAL NOT NULL,
			workout_date TEXT NOT NULL,
			FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_profile_workouts_profile ON profile_workouts(profile_id)`,

		// Predictions computed when the profile was last saved
		`CREATE TABLE IF NOT EXISTS profile_predictions (
			profile_id TEXT NOT NULL,
			event_key TEXT NOT NULL,
			event_meters REAL NOT NULL,
			baseline_seconds REAL NOT NULL,
			workout_seconds REAL NOT NULL,
			blended_seconds REAL NOT NULL,
			computed_at TEXT NOT NULL,
			PRIMARY KEY (profile_id, event_key),
			FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
