package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftride/swiftride/services/users UserUC

// UserUC represents the user usecase interface. It orchestrates the
// credential store, the OTP ledger and the token issuer to walk an
// identifier from unregistered to authenticated.
type UserUC interface {
	// registration & verification flow
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	VerifyOTP(ctx context.Context, identifier, code string) (*models.VerifyOTPResponse, error)
	SetPassword(ctx context.Context, sessionToken, password string) error
	ResendOTP(ctx context.Context, identifier string) error

	// session management
	Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error

	// password recovery
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error

	// profile
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest, imagePath string) (*models.User, error)
}
