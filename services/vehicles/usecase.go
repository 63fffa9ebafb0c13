package vehicles

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// VehicleUC represents the vehicle usecase interface
type VehicleUC interface {
	RegisterVehicle(ctx context.Context, driverID uuid.UUID, req *models.RegisterVehicleRequest) (*models.Vehicle, error)
	GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	ListDriverVehicles(ctx context.Context, driverID uuid.UUID) ([]models.Vehicle, error)
	DeleteVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) error
	UploadDocument(ctx context.Context, driverID, vehicleID uuid.UUID, localPath string) (*models.Vehicle, error)
	VerifyVehicle(ctx context.Context, vehicleID uuid.UUID) error
}
