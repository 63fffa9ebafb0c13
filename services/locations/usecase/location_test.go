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
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/locations/mocks"
)

func setupUC(t *testing.T) (*LocationUC, *mocks.MockLocationRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(repo)
	return uc.(*LocationUC), repo
}

func TestAddLocation_DerivesGeohash(t *testing.T) {
	uc, repo := setupUC(t)
	ctx := context.Background()

	req := &models.AddLocationRequest{
		Address:   "Jl. Sudirman No. 1",
		City:      "Jakarta",
		State:     "DKI Jakarta",
		Pincode:   "10110",
		Latitude:  -6.2088,
		Longitude: 106.8456,
	}

	repo.EXPECT().CreateLocation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, location *models.Location) error {
			assert.Len(t, location.Geohash, utils.LocationGeohashPrecision)

			lat, lng := utils.DecodeGeohash(location.Geohash)
			assert.InDelta(t, req.Latitude, lat, 0.001)
			assert.InDelta(t, req.Longitude, lng, 0.001)
			return nil
		})

	location, err := uc.AddLocation(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, location.ID)
}

func TestAddLocation_Validation(t *testing.T) {
	uc, _ := setupUC(t)
	ctx := context.Background()

	_, err := uc.AddLocation(ctx, &models.AddLocationRequest{City: "Jakarta"})
	assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))

	_, err = uc.AddLocation(ctx, &models.AddLocationRequest{
		Address: "a", City: "b", State: "c", Pincode: "d",
		Latitude: 91, Longitude: 0,
	})
	assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
}

func TestFindNearby_FiltersAndSortsByDistance(t *testing.T) {
	uc, repo := setupUC(t)
	ctx := context.Background()

	// Center on Monas; one nearby point, one across town, one in Bandung.
	monas := utils.GeoPoint{Latitude: -6.1754, Longitude: 106.8272}
	near := models.Location{ID: uuid.New(), Latitude: -6.1790, Longitude: 106.8300}
	far := models.Location{ID: uuid.New(), Latitude: -6.2607, Longitude: 106.8105}
	bandung := models.Location{ID: uuid.New(), Latitude: -6.9175, Longitude: 107.6191}

	repo.EXPECT().ListByGeohashPrefixes(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prefixes []string) ([]models.Location, error) {
			assert.Len(t, prefixes, 9) // center cell plus its 8 neighbors
			return []models.Location{far, bandung, near}, nil
		})

	nearby, err := uc.FindNearby(ctx, monas.Latitude, monas.Longitude, 5)
	require.NoError(t, err)

	require.Len(t, nearby, 1)
	assert.Equal(t, near.ID, nearby[0].ID)
	assert.Less(t, nearby[0].DistanceKm, 5.0)
}

func TestFindNearby_DefaultRadius(t *testing.T) {
	uc, repo := setupUC(t)
	ctx := context.Background()

	repo.EXPECT().ListByGeohashPrefixes(ctx, gomock.Any()).
		Return([]models.Location{}, nil)

	nearby, err := uc.FindNearby(ctx, -6.2088, 106.8456, 0)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestFindNearby_BadCoordinates(t *testing.T) {
	uc, _ := setupUC(t)

	_, err := uc.FindNearby(context.Background(), 0, 200, 5)
	assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
}
