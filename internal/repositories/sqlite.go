package repositories

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound covers both missing rows and rows owned by another user.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateLocation is returned when the owner already has a
	// location with the same (city, country) pair.
	ErrDuplicateLocation = errors.New("location already exists")

	// ErrUsernameTaken is returned on a duplicate username at registration.
	ErrUsernameTaken = errors.New("username already taken")
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT    NOT NULL UNIQUE,
	email         TEXT    NOT NULL DEFAULT '',
	password_hash TEXT    NOT NULL,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS locations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	city       TEXT    NOT NULL,
	country    TEXT    NOT NULL,
	latitude   REAL    NOT NULL,
	longitude  REAL    NOT NULL,
	is_default INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (user_id, city, country)
);

CREATE TABLE IF NOT EXISTS weather_readings (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	location_id INTEGER NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
	temperature REAL    NOT NULL,
	feels_like  REAL    NOT NULL,
	humidity    INTEGER NOT NULL,
	pressure    INTEGER NOT NULL,
	wind_speed  REAL    NOT NULL,
	description TEXT    NOT NULL,
	icon        TEXT    NOT NULL,
	timestamp   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_readings_location_ts
	ON weather_readings (location_id, timestamp DESC);
`

// OpenSQLite opens (or creates) the database file and applies the schema.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, errors.Wrap(err, "enable foreign keys")
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "apply schema")
	}

	return db, nil
}
