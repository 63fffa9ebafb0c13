package vehicles

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// VehicleRepo defines the vehicle repository interface
type VehicleRepo interface {
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error
	AddDocument(ctx context.Context, vehicleID uuid.UUID, url string) error
	SetVerified(ctx context.Context, vehicleID uuid.UUID, verified bool) error
}
