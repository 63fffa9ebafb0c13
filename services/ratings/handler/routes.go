package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/ratings"
	httphandler "github.com/swiftride/swiftride/services/ratings/handler/http"
)

// RegisterRoutes mounts the ratings service endpoints on the API group
func RegisterRoutes(api *echo.Group, ratingUC ratings.RatingUC, jwtCfg models.JWTConfig) {
	h := httphandler.NewRatingHandler(ratingUC)
	auth := middleware.JWTAuthMiddleware(jwtCfg)

	ratingsGroup := api.Group("/ratings")
	ratingsGroup.POST("", h.CreateRating, auth)
	ratingsGroup.PATCH("/:id", h.UpdateRating, auth)
	ratingsGroup.DELETE("/:id", h.DeleteRating, auth)

	// rating reads are public
	ratingsGroup.GET("/:id", h.GetRating)
	ratingsGroup.GET("/user/:userId", h.ListUserRatings)
	ratingsGroup.GET("/ride/:rideId", h.ListRideRatings)
}
