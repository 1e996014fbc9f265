package models

import "time"

// Location is a user-owned named place. The (city, country) pair is unique
// per owner, and at most one location per owner carries IsDefault.
type Location struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
