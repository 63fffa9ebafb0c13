package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

const pgUniqueViolation = "23505"

const vehicleColumns = `id, driver_id, vehicle_type, model, license_plate, image,
		is_verified, specifications, features, created_at, updated_at`

// vehicleRow mirrors the vehicles table. Specifications and features live in
// jsonb columns and are unpacked after scanning.
type vehicleRow struct {
	ID             uuid.UUID          `db:"id"`
	DriverID       uuid.UUID          `db:"driver_id"`
	VehicleType    models.VehicleType `db:"vehicle_type"`
	Model          string             `db:"model"`
	LicensePlate   string             `db:"license_plate"`
	Image          string             `db:"image"`
	IsVerified     bool               `db:"is_verified"`
	Specifications []byte             `db:"specifications"`
	Features       []byte             `db:"features"`
	CreatedAt      time.Time          `db:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at"`
}

func (row *vehicleRow) toModel() (*models.Vehicle, error) {
	vehicle := &models.Vehicle{
		ID:           row.ID,
		DriverID:     row.DriverID,
		VehicleType:  row.VehicleType,
		Model:        row.Model,
		LicensePlate: row.LicensePlate,
		Image:        row.Image,
		IsVerified:   row.IsVerified,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if len(row.Specifications) > 0 {
		if err := json.Unmarshal(row.Specifications, &vehicle.Specifications); err != nil {
			return nil, apperrors.Internal("failed to unmarshal vehicle specifications", err)
		}
	}
	if len(row.Features) > 0 {
		if err := json.Unmarshal(row.Features, &vehicle.Features); err != nil {
			return nil, apperrors.Internal("failed to unmarshal vehicle features", err)
		}
	}
	return vehicle, nil
}

// CreateVehicle inserts a vehicle. A duplicate license plate is a conflict.
func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	specs, err := json.Marshal(vehicle.Specifications)
	if err != nil {
		return apperrors.Internal("failed to marshal vehicle specifications", err)
	}
	features, err := json.Marshal(vehicle.Features)
	if err != nil {
		return apperrors.Internal("failed to marshal vehicle features", err)
	}

	query := `
		INSERT INTO vehicles (
			id, driver_id, vehicle_type, model, license_plate, image,
			is_verified, specifications, features, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.db.GetDB().ExecContext(ctx, query,
		vehicle.ID, vehicle.DriverID, vehicle.VehicleType, vehicle.Model,
		vehicle.LicensePlate, vehicle.Image, vehicle.IsVerified,
		specs, features, vehicle.CreatedAt, vehicle.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.Conflict("vehicle with this license plate already exists")
		}
		return apperrors.Internal("failed to create vehicle", err)
	}
	return nil
}

// GetVehicleByID retrieves a vehicle together with its document URLs
func (r *VehicleRepository) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	var row vehicleRow
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	if err := r.db.GetDB().GetContext(ctx, &row, query, vehicleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("vehicle not found")
		}
		return nil, apperrors.Internal("failed to get vehicle", err)
	}

	vehicle, err := row.toModel()
	if err != nil {
		return nil, err
	}

	docsQuery := `SELECT url FROM vehicle_documents WHERE vehicle_id = $1 ORDER BY created_at`
	if err := r.db.GetDB().SelectContext(ctx, &vehicle.Documents, docsQuery, vehicleID); err != nil {
		return nil, apperrors.Internal("failed to list vehicle documents", err)
	}
	return vehicle, nil
}

// ListByDriver returns every vehicle registered by a driver, newest first
func (r *VehicleRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Vehicle, error) {
	rows := []vehicleRow{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE driver_id = $1 ORDER BY created_at DESC`
	if err := r.db.GetDB().SelectContext(ctx, &rows, query, driverID); err != nil {
		return nil, apperrors.Internal("failed to list vehicles", err)
	}

	result := make([]models.Vehicle, 0, len(rows))
	for i := range rows {
		vehicle, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		result = append(result, *vehicle)
	}
	return result, nil
}

// DeleteVehicle removes a vehicle. Document rows go with it via the cascade.
func (r *VehicleRepository) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	result, err := r.db.GetDB().ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, vehicleID)
	if err != nil {
		return apperrors.Internal("failed to delete vehicle", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("failed to read rows affected", err)
	}
	if rows == 0 {
		return apperrors.NotFound("vehicle not found")
	}
	return nil
}

// AddDocument attaches an uploaded document URL to a vehicle
func (r *VehicleRepository) AddDocument(ctx context.Context, vehicleID uuid.UUID, url string) error {
	query := `INSERT INTO vehicle_documents (id, vehicle_id, url, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.GetDB().ExecContext(ctx, query, uuid.New(), vehicleID, url, time.Now()); err != nil {
		return apperrors.Internal("failed to add vehicle document", err)
	}
	return nil
}

// SetVerified flips the verification flag on a vehicle
func (r *VehicleRepository) SetVerified(ctx context.Context, vehicleID uuid.UUID, verified bool) error {
	query := `UPDATE vehicles SET is_verified = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.GetDB().ExecContext(ctx, query, verified, time.Now(), vehicleID)
	if err != nil {
		return apperrors.Internal("failed to update vehicle verification", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("failed to read rows affected", err)
	}
	if rows == 0 {
		return apperrors.NotFound("vehicle not found")
	}
	return nil
}
