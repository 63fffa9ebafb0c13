package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/vehicles/mocks"
)

// fakeStorage satisfies storage.Client without touching the network
type fakeStorage struct {
	url string
	err error
}

func (f *fakeStorage) Upload(ctx context.Context, localPath string) (string, error) {
	return f.url, f.err
}

func validRequest() *models.RegisterVehicleRequest {
	return &models.RegisterVehicleRequest{
		VehicleType:  models.VehicleTypeCar,
		Model:        "Avanza",
		LicensePlate: "B 1234 XYZ",
		Features: models.VehicleFeatures{
			Capacity: "6",
			Color:    "silver",
		},
	}
}

func TestRegisterVehicle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(repo, nil)

	driverID := uuid.New()
	repo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Vehicle) error {
			assert.Equal(t, driverID, v.DriverID)
			assert.Equal(t, "B 1234 XYZ", v.LicensePlate)
			assert.False(t, v.IsVerified)
			return nil
		})

	vehicle, err := uc.RegisterVehicle(context.Background(), driverID, validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, vehicle.ID)
	assert.Equal(t, models.VehicleTypeCar, vehicle.VehicleType)
}

func TestRegisterVehicle_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(repo, nil)

	tests := []struct {
		name   string
		mutate func(*models.RegisterVehicleRequest)
	}{
		{"unknown type", func(r *models.RegisterVehicleRequest) { r.VehicleType = "HELICOPTER" }},
		{"missing model", func(r *models.RegisterVehicleRequest) { r.Model = "" }},
		{"missing plate", func(r *models.RegisterVehicleRequest) { r.LicensePlate = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.RegisterVehicle(context.Background(), uuid.New(), req)
			assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
		})
	}
}

func TestDeleteVehicle_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(repo, nil)

	vehicleID := uuid.New()
	repo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, DriverID: uuid.New()}, nil)

	err := uc.DeleteVehicle(context.Background(), uuid.New(), vehicleID)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestDeleteVehicle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(repo, nil)

	driverID := uuid.New()
	vehicleID := uuid.New()
	repo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, DriverID: driverID}, nil)
	repo.EXPECT().DeleteVehicle(gomock.Any(), vehicleID).Return(nil)

	require.NoError(t, uc.DeleteVehicle(context.Background(), driverID, vehicleID))
}

func TestUploadDocument_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(repo, &fakeStorage{url: "https://img.example.com/doc.jpg"})

	driverID := uuid.New()
	vehicleID := uuid.New()
	repo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, DriverID: driverID}, nil)
	repo.EXPECT().AddDocument(gomock.Any(), vehicleID, "https://img.example.com/doc.jpg").Return(nil)

	vehicle, err := uc.UploadDocument(context.Background(), driverID, vehicleID, "/tmp/doc.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example.com/doc.jpg"}, vehicle.Documents)
}

func TestUploadDocument_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(repo, &fakeStorage{url: "https://img.example.com/doc.jpg"})

	vehicleID := uuid.New()
	repo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, DriverID: uuid.New()}, nil)

	_, err := uc.UploadDocument(context.Background(), uuid.New(), vehicleID, "/tmp/doc.jpg")
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestUploadDocument_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(repo, &fakeStorage{err: assert.AnError})

	driverID := uuid.New()
	vehicleID := uuid.New()
	repo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, DriverID: driverID}, nil)

	_, err := uc.UploadDocument(context.Background(), driverID, vehicleID, "/tmp/doc.jpg")
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}

func TestVerifyVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(repo, nil)

	vehicleID := uuid.New()
	repo.EXPECT().SetVerified(gomock.Any(), vehicleID, true).Return(nil)

	require.NoError(t, uc.VerifyVehicle(context.Background(), vehicleID))
}
