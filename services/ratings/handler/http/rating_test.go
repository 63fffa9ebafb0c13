package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/ratings/mocks"
)

func setupHandler(t *testing.T) (*RatingHandler, *mocks.MockRatingUC) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockRatingUC(ctrl)
	return NewRatingHandler(uc), uc
}

func jsonRequest(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateRatingHandler(t *testing.T) {
	h, uc := setupHandler(t)

	raterID := uuid.New()
	rideID := uuid.New()
	ratedTo := uuid.New()

	body := `{"ride_id":"` + rideID.String() + `","rated_to":"` + ratedTo.String() + `","rating":5,"comment":"great"}`
	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/ratings", body)
	c.Set("user_id", raterID)

	uc.EXPECT().CreateRating(gomock.Any(), raterID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *models.CreateRatingRequest) (*models.Rating, error) {
			assert.Equal(t, rideID, req.RideID)
			assert.Equal(t, 5, req.Rating)
			return &models.Rating{ID: uuid.New(), RideID: rideID, RatedBy: raterID, RatedTo: ratedTo, Rating: 5}, nil
		})

	require.NoError(t, h.CreateRating(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateRatingHandler_DuplicateIs409(t *testing.T) {
	h, uc := setupHandler(t)

	raterID := uuid.New()
	body := `{"ride_id":"` + uuid.NewString() + `","rated_to":"` + uuid.NewString() + `","rating":4}`
	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/ratings", body)
	c.Set("user_id", raterID)

	uc.EXPECT().CreateRating(gomock.Any(), raterID, gomock.Any()).
		Return(nil, apperrors.Conflict("ride has already been rated by this user"))

	require.NoError(t, h.CreateRating(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateRatingHandler_Unauthenticated(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/ratings", `{}`)

	require.NoError(t, h.CreateRating(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateRatingHandler_ForbiddenForNonAuthor(t *testing.T) {
	h, uc := setupHandler(t)

	raterID := uuid.New()
	ratingID := uuid.New()

	c, rec := jsonRequest(t, http.MethodPatch, "/api/v1/ratings/"+ratingID.String(), `{"rating":5}`)
	c.Set("user_id", raterID)
	c.SetParamNames("id")
	c.SetParamValues(ratingID.String())

	uc.EXPECT().UpdateRating(gomock.Any(), raterID, ratingID, gomock.Any()).
		Return(nil, apperrors.Forbidden("only the author can modify a rating"))

	require.NoError(t, h.UpdateRating(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteRatingHandler(t *testing.T) {
	h, uc := setupHandler(t)

	raterID := uuid.New()
	ratingID := uuid.New()

	c, rec := jsonRequest(t, http.MethodDelete, "/api/v1/ratings/"+ratingID.String(), "")
	c.Set("user_id", raterID)
	c.SetParamNames("id")
	c.SetParamValues(ratingID.String())

	uc.EXPECT().DeleteRating(gomock.Any(), raterID, ratingID).Return(nil)

	require.NoError(t, h.DeleteRating(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListUserRatingsHandler(t *testing.T) {
	h, uc := setupHandler(t)

	userID := uuid.New()
	c, rec := jsonRequest(t, http.MethodGet, "/api/v1/ratings/user/"+userID.String()+"?page=2&limit=5", "")
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())
	c.QueryParams().Set("page", "2")
	c.QueryParams().Set("limit", "5")

	uc.EXPECT().ListRatingsForUser(gomock.Any(), userID, 2, 5).
		Return(&models.RatingPage{
			Ratings:    []models.Rating{{ID: uuid.New(), RatedTo: userID, Rating: 4}},
			Pagination: models.Pagination{CurrentPage: 2, TotalPages: 3, TotalRatings: 11},
		}, nil)

	require.NoError(t, h.ListUserRatings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_ratings")
}

func TestListRideRatingsHandler(t *testing.T) {
	h, uc := setupHandler(t)

	rideID := uuid.New()
	c, rec := jsonRequest(t, http.MethodGet, "/api/v1/ratings/ride/"+rideID.String(), "")
	c.SetParamNames("rideId")
	c.SetParamValues(rideID.String())

	uc.EXPECT().ListRatingsForRide(gomock.Any(), rideID).
		Return([]models.Rating{
			{ID: uuid.New(), RideID: rideID, Rating: 5},
			{ID: uuid.New(), RideID: rideID, Rating: 4},
		}, nil)

	require.NoError(t, h.ListRideRatings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRideRatingsHandler_UnratedRideIs404(t *testing.T) {
	h, uc := setupHandler(t)

	rideID := uuid.New()
	c, rec := jsonRequest(t, http.MethodGet, "/api/v1/ratings/ride/"+rideID.String(), "")
	c.SetParamNames("rideId")
	c.SetParamValues(rideID.String())

	uc.EXPECT().ListRatingsForRide(gomock.Any(), rideID).
		Return(nil, apperrors.NotFound("rating not found for this ride"))

	require.NoError(t, h.ListRideRatings(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRideRatingsHandler_BadID(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := jsonRequest(t, http.MethodGet, "/api/v1/ratings/ride/not-a-uuid", "")
	c.SetParamNames("rideId")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.ListRideRatings(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
