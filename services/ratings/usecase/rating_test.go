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
	"github.com/swiftride/swiftride/services/ratings/mocks"
)

func setupUC(t *testing.T) (*RatingUC, *mocks.MockRatingRepo, *mocks.MockRatingGW) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRatingRepo(ctrl)
	gw := mocks.NewMockRatingGW(ctrl)

	uc := NewRatingUC(repo, gw)
	return uc.(*RatingUC), repo, gw
}

func TestCreateRating(t *testing.T) {
	uc, repo, gw := setupUC(t)
	ctx := context.Background()
	raterID := uuid.New()

	req := &models.CreateRatingRequest{
		RideID:  uuid.New(),
		RatedTo: uuid.New(),
		Rating:  5,
		Comment: "great driver",
	}

	repo.EXPECT().CreateRating(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rating *models.Rating) (float64, error) {
			assert.Equal(t, raterID, rating.RatedBy)
			assert.Equal(t, req.RatedTo, rating.RatedTo)
			assert.Equal(t, 5, rating.Rating)
			return 4.7, nil
		})
	gw.EXPECT().PublishRatingUpdated(ctx, req.RatedTo, 4.7).Return(nil)

	rating, err := uc.CreateRating(ctx, raterID, req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rating.ID)
}

func TestCreateRating_OutOfRange(t *testing.T) {
	uc, _, _ := setupUC(t)
	raterID := uuid.New()

	for _, value := range []int{0, 6, -1} {
		req := &models.CreateRatingRequest{RideID: uuid.New(), RatedTo: uuid.New(), Rating: value}
		_, err := uc.CreateRating(context.Background(), raterID, req)
		assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
	}
}

func TestCreateRating_SelfRating(t *testing.T) {
	uc, _, _ := setupUC(t)
	raterID := uuid.New()

	req := &models.CreateRatingRequest{RideID: uuid.New(), RatedTo: raterID, Rating: 4}
	_, err := uc.CreateRating(context.Background(), raterID, req)
	assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
}

func TestCreateRating_DuplicateRide(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	raterID := uuid.New()

	req := &models.CreateRatingRequest{RideID: uuid.New(), RatedTo: uuid.New(), Rating: 4}
	repo.EXPECT().CreateRating(ctx, gomock.Any()).
		Return(0.0, apperrors.Conflict("ride has already been rated by this user"))

	_, err := uc.CreateRating(ctx, raterID, req)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestCreateRating_PublishFailureDoesNotFailRequest(t *testing.T) {
	uc, repo, gw := setupUC(t)
	ctx := context.Background()
	raterID := uuid.New()

	req := &models.CreateRatingRequest{RideID: uuid.New(), RatedTo: uuid.New(), Rating: 4}
	repo.EXPECT().CreateRating(ctx, gomock.Any()).Return(4.0, nil)
	gw.EXPECT().PublishRatingUpdated(ctx, req.RatedTo, 4.0).
		Return(apperrors.Internal("nsq unavailable", nil))

	_, err := uc.CreateRating(ctx, raterID, req)
	assert.NoError(t, err)
}

func TestUpdateRating(t *testing.T) {
	uc, repo, gw := setupUC(t)
	ctx := context.Background()
	raterID := uuid.New()

	stored := &models.Rating{
		ID:      uuid.New(),
		RideID:  uuid.New(),
		RatedBy: raterID,
		RatedTo: uuid.New(),
		Rating:  2,
		Comment: "late pickup",
	}

	newValue := 4
	repo.EXPECT().GetRatingByID(ctx, stored.ID).Return(stored, nil)
	repo.EXPECT().UpdateRating(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rating *models.Rating) (float64, error) {
			assert.Equal(t, 4, rating.Rating)
			assert.Equal(t, "late pickup", rating.Comment)
			return 3.5, nil
		})
	gw.EXPECT().PublishRatingUpdated(ctx, stored.RatedTo, 3.5).Return(nil)

	rating, err := uc.UpdateRating(ctx, raterID, stored.ID, &models.UpdateRatingRequest{Rating: &newValue})
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Rating)
}

func TestUpdateRating_NotAuthor(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	stored := &models.Rating{ID: uuid.New(), RatedBy: uuid.New(), RatedTo: uuid.New(), Rating: 3}
	repo.EXPECT().GetRatingByID(ctx, stored.ID).Return(stored, nil)

	newValue := 5
	_, err := uc.UpdateRating(ctx, uuid.New(), stored.ID, &models.UpdateRatingRequest{Rating: &newValue})
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestUpdateRating_NothingToUpdate(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.UpdateRating(context.Background(), uuid.New(), uuid.New(), &models.UpdateRatingRequest{})
	assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
}

func TestDeleteRating(t *testing.T) {
	uc, repo, gw := setupUC(t)
	ctx := context.Background()
	raterID := uuid.New()

	stored := &models.Rating{ID: uuid.New(), RatedBy: raterID, RatedTo: uuid.New(), Rating: 3}
	repo.EXPECT().GetRatingByID(ctx, stored.ID).Return(stored, nil)
	repo.EXPECT().DeleteRating(ctx, stored.ID, stored.RatedTo).Return(0.0, nil)
	gw.EXPECT().PublishRatingUpdated(ctx, stored.RatedTo, 0.0).Return(nil)

	assert.NoError(t, uc.DeleteRating(ctx, raterID, stored.ID))
}

func TestDeleteRating_NotAuthor(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	stored := &models.Rating{ID: uuid.New(), RatedBy: uuid.New(), RatedTo: uuid.New()}
	repo.EXPECT().GetRatingByID(ctx, stored.ID).Return(stored, nil)

	err := uc.DeleteRating(ctx, uuid.New(), stored.ID)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestListRatingsForUser_ClampsPaging(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().ListRatingsForUser(ctx, userID, 1, 10).
		Return(&models.RatingPage{}, nil)

	_, err := uc.ListRatingsForUser(ctx, userID, 0, -5)
	assert.NoError(t, err)

	repo.EXPECT().ListRatingsForUser(ctx, userID, 3, 50).
		Return(&models.RatingPage{}, nil)

	_, err = uc.ListRatingsForUser(ctx, userID, 3, 500)
	assert.NoError(t, err)
}

func TestListRatingsForRide(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	rideID := uuid.New()

	repo.EXPECT().ListRatingsForRide(ctx, rideID).
		Return([]models.Rating{
			{ID: uuid.New(), RideID: rideID, Rating: 5},
			{ID: uuid.New(), RideID: rideID, Rating: 4},
		}, nil)

	got, err := uc.ListRatingsForRide(ctx, rideID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListRatingsForRide_UnratedRide(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	rideID := uuid.New()

	repo.EXPECT().ListRatingsForRide(ctx, rideID).Return([]models.Rating{}, nil)

	got, err := uc.ListRatingsForRide(ctx, rideID)
	assert.Nil(t, got)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
