package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftride/swiftride/services/users UserRepo

// UserRepo defines the user repository interface covering the credential
// store (Postgres) and the OTP ledger (Redis).
type UserRepo interface {
	// credential store
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	SetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	MarkVerified(ctx context.Context, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdateRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error
	ClearRefreshToken(ctx context.Context, userID uuid.UUID) error

	// OTP ledger
	CreateOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, identifier string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, identifier string) error
}
