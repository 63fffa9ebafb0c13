package repository

import (
	"github.com/swiftride/swiftride/internal/pkg/database"
	"github.com/swiftride/swiftride/services/locations"
)

// LocationRepository implements locations.LocationRepo backed by Postgres
type LocationRepository struct {
	db *database.PostgresClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *database.PostgresClient) locations.LocationRepo {
	return &LocationRepository{db: db}
}
