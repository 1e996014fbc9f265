package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/Unti1/AlsocodeTestTask/internal/models"
)

type ReadingRepository struct {
	db *sql.DB
}

func NewReadingRepository(db *sql.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// Append adds one historical reading. Readings are never updated.
func (r *ReadingRepository) Append(ctx context.Context, reading models.WeatherReading) (models.WeatherReading, error) {
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO weather_readings (location_id, temperature, feels_like, humidity, pressure, wind_speed, description, icon, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reading.LocationID, reading.Temperature, reading.FeelsLike, reading.Humidity,
		reading.Pressure, reading.WindSpeed, reading.Description, reading.Icon, reading.Timestamp,
	)
	if err != nil {
		return models.WeatherReading{}, errors.Wrap(err, "insert reading")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.WeatherReading{}, errors.Wrap(err, "reading id")
	}

	reading.ID = id
	return reading, nil
}

// ListByLocation returns readings newest first.
func (r *ReadingRepository) ListByLocation(ctx context.Context, locationID int64) ([]models.WeatherReading, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, location_id, temperature, feels_like, humidity, pressure, wind_speed, description, icon, timestamp
		 FROM weather_readings WHERE location_id = ? ORDER BY timestamp DESC, id DESC`, locationID)
	if err != nil {
		return nil, errors.Wrap(err, "list readings")
	}
	defer rows.Close()

	readings := []models.WeatherReading{}
	for rows.Next() {
		var reading models.WeatherReading
		if err := rows.Scan(&reading.ID, &reading.LocationID, &reading.Temperature,
			&reading.FeelsLike, &reading.Humidity, &reading.Pressure, &reading.WindSpeed,
			&reading.Description, &reading.Icon, &reading.Timestamp); err != nil {
			return nil, errors.Wrap(err, "scan reading")
		}
		readings = append(readings, reading)
	}

	return readings, rows.Err()
}
