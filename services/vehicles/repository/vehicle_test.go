package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/database"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

func setupVehicleRepo(t *testing.T) (*VehicleRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewVehicleRepository(database.NewPostgresClientFromDB(sqlxDB))
	return repo.(*VehicleRepository), mock
}

func TestCreateVehicle(t *testing.T) {
	repo, mock := setupVehicleRepo(t)

	vehicle := &models.Vehicle{
		ID:           uuid.New(),
		DriverID:     uuid.New(),
		VehicleType:  models.VehicleTypeCar,
		Model:        "Avanza",
		LicensePlate: "B 1234 XYZ",
		Specifications: models.VehicleSpecifications{
			MaxPower: "98 hp",
			Fuel:     "petrol",
		},
	}

	mock.ExpectExec(`INSERT INTO vehicles`).
		WithArgs(vehicle.ID, vehicle.DriverID, vehicle.VehicleType, vehicle.Model,
			vehicle.LicensePlate, "", false,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateVehicle(context.Background(), vehicle))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVehicle_DuplicatePlate(t *testing.T) {
	repo, mock := setupVehicleRepo(t)

	mock.ExpectExec(`INSERT INTO vehicles`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.CreateVehicle(context.Background(), &models.Vehicle{ID: uuid.New()})
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestGetVehicleByID_UnpacksJSONAndDocuments(t *testing.T) {
	repo, mock := setupVehicleRepo(t)

	vehicleID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM vehicles WHERE id`).
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "driver_id", "vehicle_type", "model", "license_plate", "image",
			"is_verified", "specifications", "features", "created_at", "updated_at",
		}).AddRow(
			vehicleID, driverID, "CAR", "Avanza", "B 1234 XYZ", "",
			true, []byte(`{"max_power":"98 hp"}`), []byte(`{"color":"silver"}`), now, now,
		))
	mock.ExpectQuery(`SELECT url FROM vehicle_documents WHERE vehicle_id`).
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows([]string{"url"}).
			AddRow("https://img.example.com/stnk.jpg").
			AddRow("https://img.example.com/sim.jpg"))

	vehicle, err := repo.GetVehicleByID(context.Background(), vehicleID)
	require.NoError(t, err)
	assert.Equal(t, "98 hp", vehicle.Specifications.MaxPower)
	assert.Equal(t, "silver", vehicle.Features.Color)
	assert.Len(t, vehicle.Documents, 2)
	assert.True(t, vehicle.IsVerified)
}

func TestGetVehicleByID_NotFound(t *testing.T) {
	repo, mock := setupVehicleRepo(t)

	vehicleID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM vehicles WHERE id`).
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetVehicleByID(context.Background(), vehicleID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestListByDriver(t *testing.T) {
	repo, mock := setupVehicleRepo(t)

	driverID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM vehicles WHERE driver_id`).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "driver_id", "vehicle_type", "model", "license_plate", "image",
			"is_verified", "specifications", "features", "created_at", "updated_at",
		}).
			AddRow(uuid.New(), driverID, "CAR", "Avanza", "B 1234 XYZ", "", false, []byte(`{}`), []byte(`{}`), now, now).
			AddRow(uuid.New(), driverID, "TAXI", "Alphard", "B 5678 ABC", "", true, []byte(`{}`), []byte(`{}`), now, now))

	fleet, err := repo.ListByDriver(context.Background(), driverID)
	require.NoError(t, err)
	assert.Len(t, fleet, 2)
	assert.Equal(t, models.VehicleTypeTaxi, fleet[1].VehicleType)
}

func TestDeleteVehicle_NotFound(t *testing.T) {
	repo, mock := setupVehicleRepo(t)

	vehicleID := uuid.New()
	mock.ExpectExec(`DELETE FROM vehicles WHERE id`).
		WithArgs(vehicleID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteVehicle(context.Background(), vehicleID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestAddDocument(t *testing.T) {
	repo, mock := setupVehicleRepo(t)

	vehicleID := uuid.New()
	mock.ExpectExec(`INSERT INTO vehicle_documents`).
		WithArgs(sqlmock.AnyArg(), vehicleID, "https://img.example.com/stnk.jpg", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.AddDocument(context.Background(), vehicleID, "https://img.example.com/stnk.jpg"))
}

func TestSetVerified(t *testing.T) {
	repo, mock := setupVehicleRepo(t)

	vehicleID := uuid.New()
	mock.ExpectExec(`UPDATE vehicles SET is_verified`).
		WithArgs(true, sqlmock.AnyArg(), vehicleID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetVerified(context.Background(), vehicleID, true))
}
