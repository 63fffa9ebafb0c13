package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/locations"
)

// LocationHandler handles HTTP requests for the locations service
type LocationHandler struct {
	locationUC locations.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC locations.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// AddLocation handles POST /locations
func (h *LocationHandler) AddLocation(c echo.Context) error {
	var req models.AddLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	location, err := h.locationUC.AddLocation(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Location added", location)
}

// GetLocation handles GET /locations/:id
func (h *LocationHandler) GetLocation(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid location ID")
	}

	location, err := h.locationUC.GetLocationByID(c.Request().Context(), locationID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", location)
}

// ListLocations handles GET /locations
func (h *LocationHandler) ListLocations(c echo.Context) error {
	favouritesOnly, _ := strconv.ParseBool(c.QueryParam("favourites"))

	list, err := h.locationUC.ListLocations(c.Request().Context(), favouritesOnly)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// DeleteLocation handles DELETE /locations/:id
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid location ID")
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), locationID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location deleted", nil)
}

// FindNearby handles GET /locations/nearby
func (h *LocationHandler) FindNearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "A valid lat query parameter is required")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "A valid lng query parameter is required")
	}
	radiusKm, _ := strconv.ParseFloat(c.QueryParam("radius_km"), 64)

	nearby, err := h.locationUC.FindNearby(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", nearby)
}
