package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/users"
	httphandler "github.com/swiftride/swiftride/services/users/handler/http"
)

// RegisterRoutes mounts the users service endpoints on the API group
func RegisterRoutes(api *echo.Group, userUC users.UserUC, jwtCfg models.JWTConfig) {
	h := httphandler.NewUserHandler(userUC)

	auth := middleware.JWTAuthMiddleware(jwtCfg)

	usersGroup := api.Group("/users")
	usersGroup.POST("/register", h.Register)
	usersGroup.POST("/verify-otp", h.VerifyOTP)
	usersGroup.POST("/set-password", h.SetPassword)
	usersGroup.POST("/resend-otp", h.ResendOTP)
	usersGroup.POST("/login", h.Login)
	usersGroup.POST("/forgot-password", h.ForgotPassword)
	usersGroup.POST("/reset-password", h.ResetPassword)
	usersGroup.POST("/logout", h.Logout, auth)

	usersGroup.GET("/me", h.GetMe, auth)
	usersGroup.PATCH("/profile", h.UpdateProfile, auth)
	usersGroup.GET("/:id", h.GetUserByID, auth)
}
