package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpRange covers the 6-digit codes [100000, 999999]
const (
	otpMin   = 100000
	otpRange = 900000
)

// TestOTPCode is the deterministic code issued when OTP test mode is enabled
const TestOTPCode = "123456"

// GenerateOTPCode generates a 6-digit numeric code drawn uniformly from
// [100000, 999999] using crypto/rand
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}
