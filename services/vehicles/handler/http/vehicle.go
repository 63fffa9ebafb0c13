package http

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/vehicles"
)

// VehicleHandler handles HTTP requests for the vehicles service
type VehicleHandler struct {
	vehicleUC vehicles.VehicleUC
}

// NewVehicleHandler creates a new vehicle HTTP handler
func NewVehicleHandler(vehicleUC vehicles.VehicleUC) *VehicleHandler {
	return &VehicleHandler{vehicleUC: vehicleUC}
}

// RegisterVehicle handles POST /vehicles
func (h *VehicleHandler) RegisterVehicle(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.RegisterVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	vehicle, err := h.vehicleUC.RegisterVehicle(c.Request().Context(), driverID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered", vehicle)
}

// GetVehicle handles GET /vehicles/:id
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	vehicle, err := h.vehicleUC.GetVehicleByID(c.Request().Context(), vehicleID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicle)
}

// ListMyVehicles handles GET /vehicles
func (h *VehicleHandler) ListMyVehicles(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	fleet, err := h.vehicleUC.ListDriverVehicles(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", fleet)
}

// DeleteVehicle handles DELETE /vehicles/:id
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	if err := h.vehicleUC.DeleteVehicle(c.Request().Context(), driverID, vehicleID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle deleted", nil)
}

// UploadDocument handles POST /vehicles/:id/documents
func (h *VehicleHandler) UploadDocument(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	file, err := c.FormFile("document")
	if err != nil {
		return utils.BadRequestResponse(c, "A document file is required")
	}

	localPath, err := saveTempUpload(file)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to read uploaded file")
	}

	vehicle, err := h.vehicleUC.UploadDocument(c.Request().Context(), driverID, vehicleID, localPath)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Document uploaded", vehicle)
}

// VerifyVehicle handles POST /vehicles/:id/verify
func (h *VehicleHandler) VerifyVehicle(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	if err := h.vehicleUC.VerifyVehicle(c.Request().Context(), vehicleID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle verified", nil)
}

func saveTempUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "swiftride-upload-*")
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}
