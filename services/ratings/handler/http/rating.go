package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/ratings"
)

// RatingHandler handles HTTP requests for the ratings service
type RatingHandler struct {
	ratingUC ratings.RatingUC
}

// NewRatingHandler creates a new rating HTTP handler
func NewRatingHandler(ratingUC ratings.RatingUC) *RatingHandler {
	return &RatingHandler{ratingUC: ratingUC}
}

// CreateRating handles POST /ratings
func (h *RatingHandler) CreateRating(c echo.Context) error {
	raterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	rating, err := h.ratingUC.CreateRating(c.Request().Context(), raterID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Rating created", rating)
}

// UpdateRating handles PATCH /ratings/:id
func (h *RatingHandler) UpdateRating(c echo.Context) error {
	raterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	ratingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid rating ID")
	}

	var req models.UpdateRatingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	rating, err := h.ratingUC.UpdateRating(c.Request().Context(), raterID, ratingID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rating updated", rating)
}

// DeleteRating handles DELETE /ratings/:id
func (h *RatingHandler) DeleteRating(c echo.Context) error {
	raterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	ratingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid rating ID")
	}

	if err := h.ratingUC.DeleteRating(c.Request().Context(), raterID, ratingID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rating deleted", nil)
}

// GetRating handles GET /ratings/:id
func (h *RatingHandler) GetRating(c echo.Context) error {
	ratingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid rating ID")
	}

	rating, err := h.ratingUC.GetRatingByID(c.Request().Context(), ratingID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", rating)
}

// ListRideRatings handles GET /ratings/ride/:rideId
func (h *RatingHandler) ListRideRatings(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ratingsList, err := h.ratingUC.ListRatingsForRide(c.Request().Context(), rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", ratingsList)
}

// ListUserRatings handles GET /ratings/user/:userId
func (h *RatingHandler) ListUserRatings(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	pageResult, err := h.ratingUC.ListRatingsForUser(c.Request().Context(), userID, page, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", pageResult)
}
