package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender enumerates user genders
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// UserType enumerates user roles
type UserType string

const (
	UserTypeRider  UserType = "RIDER"
	UserTypeDriver UserType = "DRIVER"
	UserTypeAdmin  UserType = "ADMIN"
)

// AccountStatus enumerates account lifecycle states
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusInactive  AccountStatus = "INACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// User represents a registered rider, driver or admin.
// PasswordHash stays empty until the identifier has been verified via OTP
// and the set-password step has completed.
type User struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	FullName      string        `json:"full_name" db:"full_name"`
	Email         string        `json:"email" db:"email"`
	Phone         string        `json:"phone" db:"phone"`
	Gender        Gender        `json:"gender" db:"gender"`
	UserType      UserType      `json:"user_type" db:"user_type"`
	PasswordHash  string        `json:"-" db:"password_hash"`
	IsVerified    bool          `json:"is_verified" db:"is_verified"`
	AverageRating float64       `json:"average_rating" db:"average_rating"`
	RefreshToken  string        `json:"-" db:"refresh_token"`
	ProfileImage  string        `json:"profile_image,omitempty" db:"profile_image"`
	Address       string        `json:"address,omitempty" db:"address"`
	Street        string        `json:"street,omitempty" db:"street"`
	District      string        `json:"district,omitempty" db:"district"`
	City          string        `json:"city,omitempty" db:"city"`
	State         string        `json:"state,omitempty" db:"state"`
	ZipCode       string        `json:"zip_code,omitempty" db:"zip_code"`
	Age           int           `json:"age,omitempty" db:"age"`
	AccountStatus AccountStatus `json:"account_status" db:"account_status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Gender   Gender `json:"gender" validate:"required"`
	UserType UserType `json:"user_type" validate:"required"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	User      *User  `json:"user,omitempty"`
	OTPSent   bool   `json:"otp_sent"`
	OTPResent bool   `json:"otp_resent"`
	OTP       string `json:"otp,omitempty"` // only populated in test mode
}

// LoginRequest represents a login request with email or phone plus password
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"` // accepted as an alias for identifier
	Password   string `json:"password" validate:"required"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

// SetPasswordRequest represents the set-password step after OTP verification
type SetPasswordRequest struct {
	SessionToken string `json:"session_token" validate:"required"`
	Password     string `json:"password" validate:"required,min=8"`
}

// ForgotPasswordRequest represents a password reset token request
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries the reset token and the new password
type ResetPasswordRequest struct {
	ResetToken  string `json:"reset_token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	FullName string `json:"full_name,omitempty"`
	Address  string `json:"address,omitempty"`
	Street   string `json:"street,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zip_code,omitempty"`
	Age      int    `json:"age,omitempty"`
}

// Sanitized returns a copy of the user safe to embed in API responses.
// The password hash and stored refresh token never leave the server.
func (u *User) Sanitized() *User {
	clone := *u
	clone.PasswordHash = ""
	clone.RefreshToken = ""
	return &clone
}
