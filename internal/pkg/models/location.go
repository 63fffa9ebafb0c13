package models

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a saved geocoded address. Geohash is derived from the
// coordinates on insert and indexed for nearby lookups.
type Location struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Address     string    `json:"address" db:"address"`
	Street      string    `json:"street,omitempty" db:"street"`
	District    string    `json:"district,omitempty" db:"district"`
	City        string    `json:"city" db:"city"`
	State       string    `json:"state" db:"state"`
	Country     string    `json:"country,omitempty" db:"country"`
	Pincode     string    `json:"pincode" db:"pincode"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Geohash     string    `json:"-" db:"geohash"`
	IsFavourite bool      `json:"is_favourite" db:"is_favourite"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// AddLocationRequest represents a location creation request
type AddLocationRequest struct {
	Address     string  `json:"address" validate:"required"`
	Street      string  `json:"street,omitempty"`
	District    string  `json:"district,omitempty"`
	City        string  `json:"city" validate:"required"`
	State       string  `json:"state" validate:"required"`
	Country     string  `json:"country,omitempty"`
	Pincode     string  `json:"pincode" validate:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsFavourite bool    `json:"is_favourite"`
}

// NearbyLocation pairs a stored location with its distance from the query
// point in kilometers
type NearbyLocation struct {
	Location
	DistanceKm float64 `json:"distance_km"`
}
