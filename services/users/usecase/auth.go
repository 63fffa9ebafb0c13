package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/jwt"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
)

const minPasswordLength = 8

// Register creates an unverified account and issues an OTP against the phone
// number. Hitting an identifier that is already mid-registration re-issues the
// OTP instead of failing, so an interrupted signup can simply be retried.
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetUserByPhone(ctx, req.Phone)
	if err != nil && apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, err
	}
	if existing == nil {
		existing, err = uc.repo.GetUserByEmail(ctx, req.Email)
		if err != nil && apperrors.KindOf(err) != apperrors.KindNotFound {
			return nil, err
		}
	}

	if existing != nil {
		if existing.IsVerified {
			return nil, apperrors.Conflict("user with this phone or email already exists")
		}

		otp, err := uc.repo.GetOTP(ctx, existing.Phone)
		if err == nil && !otp.Expired(time.Now()) {
			return nil, apperrors.Conflict("registration already in progress, verify the OTP sent earlier")
		}

		reissued, err := uc.issueOTP(ctx, existing.Phone)
		if err != nil {
			return nil, err
		}

		logger.Info("Re-issued registration OTP",
			logger.String("phone", utils.MaskPhoneNumber(existing.Phone)))

		return &models.RegisterResponse{
			User:      existing.Sanitized(),
			OTPResent: true,
			OTP:       uc.exposedOTPCode(reissued),
		}, nil
	}

	user := &models.User{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Gender:   req.Gender,
		UserType: req.UserType,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	otp, err := uc.issueOTP(ctx, user.Phone)
	if err != nil {
		return nil, err
	}

	if err := uc.gateway.PublishUserRegistered(ctx, user); err != nil {
		logger.Warn("Failed to publish user registered event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	logger.Info("Registered new user",
		logger.String("user_id", user.ID.String()),
		logger.String("phone", utils.MaskPhoneNumber(user.Phone)),
		logger.String("user_type", string(user.UserType)))

	return &models.RegisterResponse{
		User:    user.Sanitized(),
		OTPSent: true,
		OTP:     uc.exposedOTPCode(otp),
	}, nil
}

// VerifyOTP checks the submitted code against the ledger. A wrong code and an
// expired code fail with distinct messages; a correct code is burned, the
// account is marked verified, and a session token for the set-password step
// comes back.
func (uc *UserUC) VerifyOTP(ctx context.Context, identifier, code string) (*models.VerifyOTPResponse, error) {
	if identifier == "" || code == "" {
		return nil, apperrors.InvalidArgument("identifier and otp are required")
	}

	otp, err := uc.repo.GetOTP(ctx, identifier)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, apperrors.InvalidArgument("invalid OTP")
		}
		return nil, err
	}

	if otp.Code != code {
		return nil, apperrors.InvalidArgument("invalid OTP")
	}
	if otp.Expired(time.Now()) {
		return nil, apperrors.InvalidArgument("expired OTP")
	}

	if err := uc.repo.DeleteOTP(ctx, identifier); err != nil {
		return nil, err
	}

	user, err := uc.repo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if !user.IsVerified {
		if err := uc.repo.MarkVerified(ctx, user.ID); err != nil {
			return nil, err
		}
		user.IsVerified = true

		if err := uc.gateway.PublishUserVerified(ctx, user); err != nil {
			logger.Warn("Failed to publish user verified event",
				logger.String("user_id", user.ID.String()),
				logger.Err(err))
		}
	}

	sessionToken, expiresAt, err := jwt.GenerateSessionToken(identifier, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.Internal("failed to generate session token", err)
	}

	logger.Info("Verified OTP",
		logger.String("user_id", user.ID.String()),
		logger.String("identifier", utils.MaskPhoneNumber(identifier)))

	return &models.VerifyOTPResponse{
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// SetPassword completes registration. The session token proves the caller
// verified an OTP for the identifier moments ago.
func (uc *UserUC) SetPassword(ctx context.Context, sessionToken, password string) error {
	if len(password) < minPasswordLength {
		return apperrors.InvalidArgument("password must be at least 8 characters")
	}

	claims, err := jwt.ValidateToken(sessionToken, uc.cfg.JWT.SessionSecret)
	if err != nil {
		return apperrors.Unauthorized("invalid or expired session token")
	}
	identifier, err := jwt.StringClaim(claims, "identifier")
	if err != nil {
		return apperrors.Unauthorized("invalid or expired session token")
	}

	user, err := uc.repo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}
	if !user.IsVerified {
		return apperrors.Forbidden("identifier has not been verified")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal("failed to hash password", err)
	}

	if err := uc.repo.SetPassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	logger.Info("Password set", logger.String("user_id", user.ID.String()))
	return nil
}

// ResendOTP issues a fresh code for an identifier still awaiting verification.
// The new code replaces the previous one in the ledger.
func (uc *UserUC) ResendOTP(ctx context.Context, identifier string) error {
	if identifier == "" {
		return apperrors.InvalidArgument("identifier is required")
	}

	user, err := uc.repo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return apperrors.Conflict("user is already verified")
	}

	if _, err := uc.issueOTP(ctx, user.Phone); err != nil {
		return err
	}

	logger.Info("Re-sent OTP",
		logger.String("user_id", user.ID.String()),
		logger.String("phone", utils.MaskPhoneNumber(user.Phone)))
	return nil
}

// Login authenticates by phone or email plus password and returns fresh
// access and refresh tokens. The refresh token is persisted so logout can
// revoke it.
func (uc *UserUC) Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error) {
	if identifier == "" || password == "" {
		return nil, apperrors.InvalidArgument("identifier and password are required")
	}

	user, err := uc.repo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, apperrors.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, apperrors.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	if !user.IsVerified {
		return nil, apperrors.Forbidden("account has not been verified")
	}
	if user.AccountStatus == models.AccountStatusSuspended {
		return nil, apperrors.Forbidden("account is suspended")
	}

	accessToken, _, err := jwt.GenerateAccessToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.Internal("failed to generate access token", err)
	}
	refreshToken, _, err := jwt.GenerateRefreshToken(user.ID, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.Internal("failed to generate refresh token", err)
	}

	if err := uc.repo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID.String()),
		logger.String("user_type", string(user.UserType)))

	return &models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Sanitized(),
	}, nil
}

// Logout revokes the user's stored refresh token
func (uc *UserUC) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := uc.repo.ClearRefreshToken(ctx, userID); err != nil {
		return err
	}
	logger.Info("User logged out", logger.String("user_id", userID.String()))
	return nil
}

// ForgotPassword issues a short-lived reset token for the account bound to
// the email. Delivery is the notification pipeline's problem; the token is
// handed back to the caller of this usecase.
func (uc *UserUC) ForgotPassword(ctx context.Context, email string) (string, error) {
	if !utils.IsValidEmail(email) {
		return "", apperrors.InvalidArgument("a valid email is required")
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := jwt.GenerateResetToken(user.ID, uc.cfg.JWT)
	if err != nil {
		return "", apperrors.Internal("failed to generate reset token", err)
	}

	logger.Info("Issued password reset token",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(email)))
	return token, nil
}

// ResetPassword swaps the password for the account named in the reset token
// and revokes any outstanding refresh token.
func (uc *UserUC) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperrors.InvalidArgument("password must be at least 8 characters")
	}

	claims, err := jwt.ValidateToken(resetToken, uc.cfg.JWT.SessionSecret)
	if err != nil {
		return apperrors.Unauthorized("invalid or expired reset token")
	}
	rawID, err := jwt.StringClaim(claims, "user_id")
	if err != nil {
		return apperrors.Unauthorized("invalid or expired reset token")
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return apperrors.Unauthorized("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal("failed to hash password", err)
	}

	if err := uc.repo.SetPassword(ctx, userID, string(hash)); err != nil {
		return err
	}
	if err := uc.repo.ClearRefreshToken(ctx, userID); err != nil {
		return err
	}

	logger.Info("Password reset", logger.String("user_id", userID.String()))
	return nil
}

// issueOTP writes a fresh code for the identifier, replacing any live one
func (uc *UserUC) issueOTP(ctx context.Context, identifier string) (*models.OTP, error) {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return nil, apperrors.Internal("failed to generate OTP", err)
	}
	if uc.cfg.OTP.TestMode {
		code = utils.TestOTPCode
	}

	now := time.Now()
	otp := &models.OTP{
		Identifier: identifier,
		Code:       code,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Duration(uc.cfg.OTP.TTLMinutes) * time.Minute),
	}

	if err := uc.repo.CreateOTP(ctx, otp); err != nil {
		return nil, err
	}
	return otp, nil
}

// exposedOTPCode returns the code for API responses only when test mode is on
func (uc *UserUC) exposedOTPCode(otp *models.OTP) string {
	if uc.cfg.OTP.TestMode {
		return otp.Code
	}
	return ""
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if req.FullName == "" {
		return apperrors.InvalidArgument("full name is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return apperrors.InvalidArgument("a valid email is required")
	}
	if !utils.IsValidPhoneNumber(req.Phone) {
		return apperrors.InvalidArgument("a valid phone number is required")
	}
	switch req.UserType {
	case models.UserTypeRider, models.UserTypeDriver:
	default:
		return apperrors.InvalidArgument("user type must be RIDER or DRIVER")
	}
	switch req.Gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther, "":
	default:
		return apperrors.InvalidArgument("invalid gender")
	}
	return nil
}
