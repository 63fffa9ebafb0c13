package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/vehicles"
	httphandler "github.com/swiftride/swiftride/services/vehicles/handler/http"
)

// RegisterRoutes mounts the vehicles service endpoints on the API group
func RegisterRoutes(api *echo.Group, vehicleUC vehicles.VehicleUC, jwtCfg models.JWTConfig) {
	h := httphandler.NewVehicleHandler(vehicleUC)
	auth := middleware.JWTAuthMiddleware(jwtCfg)

	group := api.Group("/vehicles", auth)
	group.POST("", h.RegisterVehicle, middleware.RequireUserType(models.UserTypeDriver))
	group.GET("", h.ListMyVehicles)
	group.GET("/:id", h.GetVehicle)
	group.DELETE("/:id", h.DeleteVehicle)
	group.POST("/:id/documents", h.UploadDocument, middleware.RequireUserType(models.UserTypeDriver))
	group.POST("/:id/verify", h.VerifyVehicle, middleware.RequireUserType(models.UserTypeAdmin))
}
