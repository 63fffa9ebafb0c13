package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/constants"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// CreateOTP stores an OTP record keyed by identifier, replacing any code
// issued earlier for the same identifier. The Redis TTL is twice the logical
// validity window so that verification can still see an expired record and
// report it as expired rather than invalid.
func (r *UserRepository) CreateOTP(ctx context.Context, otp *models.OTP) error {
	payload, err := json.Marshal(otp)
	if err != nil {
		return apperrors.Internal("failed to marshal OTP", err)
	}

	key := fmt.Sprintf(constants.KeyUserOTP, otp.Identifier)
	ttl := 2 * otp.ExpiresAt.Sub(otp.CreatedAt)
	if ttl <= 0 {
		ttl = 2 * time.Duration(r.cfg.OTP.TTLMinutes) * time.Minute
	}

	if err := r.redis.Set(ctx, key, payload, ttl); err != nil {
		return apperrors.Internal("failed to store OTP", err)
	}
	return nil
}

// GetOTP retrieves the current OTP record for an identifier
func (r *UserRepository) GetOTP(ctx context.Context, identifier string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, identifier)
	raw, err := r.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("OTP not found")
		}
		return nil, apperrors.Internal("failed to get OTP", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(raw), &otp); err != nil {
		return nil, apperrors.Internal("failed to unmarshal OTP", err)
	}
	return &otp, nil
}

// DeleteOTP removes the OTP record for an identifier so a verified code can
// never be replayed
func (r *UserRepository) DeleteOTP(ctx context.Context, identifier string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, identifier)
	if err := r.redis.Delete(ctx, key); err != nil {
		return apperrors.Internal("failed to delete OTP", err)
	}
	return nil
}
