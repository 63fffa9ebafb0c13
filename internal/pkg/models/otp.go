package models

import (
	"time"
)

// OTP represents a one-time password bound to an identifier (phone or email).
// Records live in Redis past their logical expiry so verification can tell
// an expired code apart from a wrong one.
type OTP struct {
	Identifier string    `json:"identifier"`
	Code       string    `json:"code"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the code's validity window has passed
func (o *OTP) Expired(now time.Time) bool {
	return o.ExpiresAt.Before(now)
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	OTP        string `json:"otp" validate:"required"`
}

// VerifyOTPResponse carries the short-lived session token for the
// set-password step
type VerifyOTPResponse struct {
	SessionToken string `json:"session_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// ResendOTPRequest represents a request to re-issue an OTP
type ResendOTPRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}
