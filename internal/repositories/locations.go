package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Unti1/AlsocodeTestTask/internal/models"
)

type LocationRepository struct {
	db *sql.DB
}

func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, loc models.Location) (models.Location, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (user_id, city, country, latitude, longitude, is_default, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		loc.UserID, loc.City, loc.Country, loc.Latitude, loc.Longitude, loc.IsDefault, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Location{}, ErrDuplicateLocation
		}
		return models.Location{}, errors.Wrap(err, "insert location")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Location{}, errors.Wrap(err, "location id")
	}

	loc.ID = id
	loc.CreatedAt = now
	loc.UpdatedAt = now
	return loc, nil
}

// ByID returns the location only when it belongs to userID; rows owned by
// another user surface as ErrNotFound.
func (r *LocationRepository) ByID(ctx context.Context, userID, id int64) (models.Location, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, city, country, latitude, longitude, is_default, created_at, updated_at
		 FROM locations WHERE id = ? AND user_id = ?`, id, userID)

	return scanLocation(row)
}

func (r *LocationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Location, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, city, country, latitude, longitude, is_default, created_at, updated_at
		 FROM locations WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list locations")
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// Default returns the owner's default location, if any.
func (r *LocationRepository) Default(ctx context.Context, userID int64) (models.Location, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, city, country, latitude, longitude, is_default, created_at, updated_at
		 FROM locations WHERE user_id = ? AND is_default = 1`, userID)

	return scanLocation(row)
}

func (r *LocationRepository) Update(ctx context.Context, loc models.Location) (models.Location, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE locations SET city = ?, country = ?, latitude = ?, longitude = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		loc.City, loc.Country, loc.Latitude, loc.Longitude, now, loc.ID, loc.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Location{}, ErrDuplicateLocation
		}
		return models.Location{}, errors.Wrap(err, "update location")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Location{}, errors.Wrap(err, "update location")
	}
	if affected == 0 {
		return models.Location{}, ErrNotFound
	}

	return r.ByID(ctx, loc.UserID, loc.ID)
}

func (r *LocationRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM locations WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return errors.Wrap(err, "delete location")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete location")
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// SetDefault clears the default flag on every location of the owner and
// sets it on the target, as one transaction. The target must belong to
// the owner or the whole operation rolls back with ErrNotFound.
func (r *LocationRepository) SetDefault(ctx context.Context, userID, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin set default")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE locations SET is_default = 0 WHERE user_id = ?`, userID); err != nil {
		return errors.Wrap(err, "clear default flags")
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE locations SET is_default = 1, updated_at = ? WHERE id = ? AND user_id = ?`,
		time.Now().UTC(), id, userID)
	if err != nil {
		return errors.Wrap(err, "set default flag")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "set default flag")
	}
	if affected == 0 {
		return ErrNotFound
	}

	return errors.Wrap(tx.Commit(), "commit set default")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (models.Location, error) {
	var loc models.Location
	err := row.Scan(&loc.ID, &loc.UserID, &loc.City, &loc.Country,
		&loc.Latitude, &loc.Longitude, &loc.IsDefault, &loc.CreatedAt, &loc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Location{}, ErrNotFound
	}
	if err != nil {
		return models.Location{}, errors.Wrap(err, "scan location")
	}
	return loc, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
