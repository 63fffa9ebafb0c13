package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/locations"
	httphandler "github.com/swiftride/swiftride/services/locations/handler/http"
)

// RegisterRoutes mounts the locations service endpoints on the API group
func RegisterRoutes(api *echo.Group, locationUC locations.LocationUC, jwtCfg models.JWTConfig) {
	h := httphandler.NewLocationHandler(locationUC)

	group := api.Group("/locations", middleware.JWTAuthMiddleware(jwtCfg))
	group.POST("", h.AddLocation)
	group.GET("", h.ListLocations)
	group.GET("/nearby", h.FindNearby)
	group.GET("/:id", h.GetLocation)
	group.DELETE("/:id", h.DeleteLocation)
}
