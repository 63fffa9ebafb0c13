package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

const pgUniqueViolation = "23505"

const userColumns = `id, full_name, email, phone, gender, user_type, password_hash,
		is_verified, average_rating, refresh_token, profile_image,
		address, street, district, city, state, zip_code, age,
		account_status, created_at, updated_at`

// CreateUser inserts a new, unverified user row. A duplicate phone or email
// surfaces as a conflict.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.AccountStatus == "" {
		user.AccountStatus = models.AccountStatusActive
	}

	query := `
		INSERT INTO users (
			id, full_name, email, phone, gender, user_type,
			is_verified, account_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.GetDB().ExecContext(ctx, query,
		user.ID, user.FullName, user.Email, user.Phone, user.Gender,
		user.UserType, user.IsVerified, user.AccountStatus,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.Conflict("user with this phone or email already exists")
		}
		return apperrors.Internal("failed to create user", err)
	}
	return nil
}

// GetUserByID retrieves a user by primary key
func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := r.db.GetDB().GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal("failed to get user", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	if err := r.db.GetDB().GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal("failed to get user", err)
	}
	return &user, nil
}

// GetUserByPhone retrieves a user by phone number
func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`
	if err := r.db.GetDB().GetContext(ctx, &user, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal("failed to get user", err)
	}
	return &user, nil
}

// GetUserByIdentifier retrieves a user by phone or email in a single query
func (r *UserRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1 OR email = $1`
	if err := r.db.GetDB().GetContext(ctx, &user, query, identifier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal("failed to get user", err)
	}
	return &user, nil
}

// SetPassword stores the bcrypt hash for a user
func (r *UserRepository) SetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.GetDB().ExecContext(ctx, query, passwordHash, time.Now(), userID)
	if err != nil {
		return apperrors.Internal("failed to set password", err)
	}
	return ensureRowAffected(result, "user not found")
}

// MarkVerified flips the is_verified flag after a successful OTP check
func (r *UserRepository) MarkVerified(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE users SET is_verified = TRUE, updated_at = $1 WHERE id = $2`
	result, err := r.db.GetDB().ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return apperrors.Internal("failed to mark user verified", err)
	}
	return ensureRowAffected(result, "user not found")
}

// UpdateProfile persists the mutable profile fields of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	query := `
		UPDATE users SET
			full_name = $1, profile_image = $2, address = $3, street = $4,
			district = $5, city = $6, state = $7, zip_code = $8, age = $9,
			updated_at = $10
		WHERE id = $11`

	result, err := r.db.GetDB().ExecContext(ctx, query,
		user.FullName, user.ProfileImage, user.Address, user.Street,
		user.District, user.City, user.State, user.ZipCode, user.Age,
		user.UpdatedAt, user.ID,
	)
	if err != nil {
		return apperrors.Internal("failed to update profile", err)
	}
	return ensureRowAffected(result, "user not found")
}

// UpdateRefreshToken stores the active refresh token for a user
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	query := `UPDATE users SET refresh_token = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.GetDB().ExecContext(ctx, query, refreshToken, time.Now(), userID)
	if err != nil {
		return apperrors.Internal("failed to update refresh token", err)
	}
	return ensureRowAffected(result, "user not found")
}

// ClearRefreshToken invalidates the stored refresh token on logout
func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE users SET refresh_token = '', updated_at = $1 WHERE id = $2`
	result, err := r.db.GetDB().ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return apperrors.Internal("failed to clear refresh token", err)
	}
	return ensureRowAffected(result, "user not found")
}

func ensureRowAffected(result sql.Result, notFoundMsg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("failed to read rows affected", err)
	}
	if rows == 0 {
		return apperrors.NotFound(notFoundMsg)
	}
	return nil
}
