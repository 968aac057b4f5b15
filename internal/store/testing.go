package store

import "database/sql"

// NewTestDB wraps an already-open database connection, enabling foreign
// keys and applying migrations. This is only intended for use in tests.
func NewTestDB(sqlDB *sql.DB) (*DB, error) {
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}
	if err := migrate(sqlDB); err != nil {
		return nil, err
	}
	return &DB{DB: sqlDB}, nil
}
