package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/users"
)

// UserHandler handles HTTP requests for the users service
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// Register handles POST /users/register
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if resp.OTPResent {
		return utils.SuccessResponse(c, http.StatusOK, "OTP re-sent", resp)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "User registered, verify the OTP", resp)
}

// VerifyOTP handles POST /users/verify-otp
func (h *UserHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	resp, err := h.userUC.VerifyOTP(c.Request().Context(), req.Identifier, req.OTP)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP verified", resp)
}

// SetPassword handles POST /users/set-password
func (h *UserHandler) SetPassword(c echo.Context) error {
	var req models.SetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if err := h.userUC.SetPassword(c.Request().Context(), req.SessionToken, req.Password); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password set", nil)
}

// ResendOTP handles POST /users/resend-otp
func (h *UserHandler) ResendOTP(c echo.Context) error {
	var req models.ResendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if err := h.userUC.ResendOTP(c.Request().Context(), req.Identifier); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP re-sent", nil)
}

// Login handles POST /users/login
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}

	resp, err := h.userUC.Login(c.Request().Context(), identifier, req.Password)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout handles POST /users/logout
func (h *UserHandler) Logout(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	if err := h.userUC.Logout(c.Request().Context(), userID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// ForgotPassword handles POST /users/forgot-password
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	token, err := h.userUC.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reset token issued", map[string]string{
		"reset_token": token,
	})
}

// ResetPassword handles POST /users/reset-password
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), req.ResetToken, req.NewPassword); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password reset", nil)
}
