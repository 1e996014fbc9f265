package models

import "time"

// WeatherReading is an append-only historical record of a fetched
// observation for a saved location, listed newest first.
type WeatherReading struct {
	ID          int64     `json:"id"`
	LocationID  int64     `json:"location_id"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	Pressure    int       `json:"pressure"`
	WindSpeed   float64   `json:"wind_speed"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Timestamp   time.Time `json:"timestamp"`
}
