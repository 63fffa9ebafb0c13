package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// RegisterVehicle adds an unverified vehicle to the driver's fleet
func (uc *VehicleUC) RegisterVehicle(ctx context.Context, driverID uuid.UUID, req *models.RegisterVehicleRequest) (*models.Vehicle, error) {
	if err := validateVehicleRequest(req); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		ID:             uuid.New(),
		DriverID:       driverID,
		VehicleType:    req.VehicleType,
		Model:          req.Model,
		LicensePlate:   req.LicensePlate,
		Specifications: req.Specifications,
		Features:       req.Features,
	}

	if err := uc.repo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("Registered vehicle",
		logger.String("vehicle_id", vehicle.ID.String()),
		logger.String("driver_id", driverID.String()),
		logger.String("vehicle_type", string(vehicle.VehicleType)))
	return vehicle, nil
}

// GetVehicleByID returns a vehicle with its documents
func (uc *VehicleUC) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	return uc.repo.GetVehicleByID(ctx, vehicleID)
}

// ListDriverVehicles returns the driver's fleet
func (uc *VehicleUC) ListDriverVehicles(ctx context.Context, driverID uuid.UUID) ([]models.Vehicle, error) {
	return uc.repo.ListByDriver(ctx, driverID)
}

// DeleteVehicle removes a vehicle owned by the caller
func (uc *VehicleUC) DeleteVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) error {
	vehicle, err := uc.repo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle.DriverID != driverID {
		return apperrors.Forbidden("only the owner can delete a vehicle")
	}

	if err := uc.repo.DeleteVehicle(ctx, vehicleID); err != nil {
		return err
	}

	logger.Info("Deleted vehicle",
		logger.String("vehicle_id", vehicleID.String()),
		logger.String("driver_id", driverID.String()))
	return nil
}

// UploadDocument pushes a registration document to the image host and
// attaches the resulting URL to a vehicle owned by the caller
func (uc *VehicleUC) UploadDocument(ctx context.Context, driverID, vehicleID uuid.UUID, localPath string) (*models.Vehicle, error) {
	vehicle, err := uc.repo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.DriverID != driverID {
		return nil, apperrors.Forbidden("only the owner can upload vehicle documents")
	}

	url, err := uc.storage.Upload(ctx, localPath)
	if err != nil {
		return nil, apperrors.Internal("failed to upload vehicle document", err)
	}

	if err := uc.repo.AddDocument(ctx, vehicleID, url); err != nil {
		return nil, err
	}

	vehicle.Documents = append(vehicle.Documents, url)

	logger.Info("Uploaded vehicle document",
		logger.String("vehicle_id", vehicleID.String()))
	return vehicle, nil
}

// VerifyVehicle marks a vehicle as verified. Restricted to admins at the
// routing layer.
func (uc *VehicleUC) VerifyVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	if err := uc.repo.SetVerified(ctx, vehicleID, true); err != nil {
		return err
	}
	logger.Info("Verified vehicle", logger.String("vehicle_id", vehicleID.String()))
	return nil
}

func validateVehicleRequest(req *models.RegisterVehicleRequest) error {
	switch req.VehicleType {
	case models.VehicleTypeCar, models.VehicleTypeBicycle, models.VehicleTypeTaxi, models.VehicleTypeCycle:
	default:
		return apperrors.InvalidArgument("invalid vehicle type")
	}
	if req.Model == "" {
		return apperrors.InvalidArgument("model is required")
	}
	if req.LicensePlate == "" {
		return apperrors.InvalidArgument("license plate is required")
	}
	return nil
}
