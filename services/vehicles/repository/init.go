package repository

import (
	"github.com/swiftride/swiftride/internal/pkg/database"
	"github.com/swiftride/swiftride/services/vehicles"
)

// VehicleRepository implements vehicles.VehicleRepo backed by Postgres
type VehicleRepository struct {
	db *database.PostgresClient
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *database.PostgresClient) vehicles.VehicleRepo {
	return &VehicleRepository{db: db}
}
