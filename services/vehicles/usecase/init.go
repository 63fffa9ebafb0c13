package usecase

import (
	"github.com/swiftride/swiftride/internal/pkg/storage"
	"github.com/swiftride/swiftride/services/vehicles"
)

// VehicleUC implements the vehicles.VehicleUC interface
type VehicleUC struct {
	repo    vehicles.VehicleRepo
	storage storage.Client
}

// NewVehicleUC creates a new vehicle usecase
func NewVehicleUC(repo vehicles.VehicleRepo, storageClient storage.Client) vehicles.VehicleUC {
	return &VehicleUC{
		repo:    repo,
		storage: storageClient,
	}
}
