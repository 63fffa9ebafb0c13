package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// resetTokenExpirationMinutes is the validity window of password reset tokens
const resetTokenExpirationMinutes = 60

// GenerateAccessToken generates a bearer token for authenticated API access
func GenerateAccessToken(user *models.User, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.AccessExpiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"email":       user.Email,
		"full_name":   user.FullName,
		"user_type":   string(user.UserType),
		"is_verified": user.IsVerified,
		"exp":         expiresAt,
		"iss":         cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// GenerateRefreshToken generates a long-lived token used only to obtain a
// fresh access token
func GenerateRefreshToken(userID uuid.UUID, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.RefreshExpiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.RefreshSecret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// GenerateSessionToken generates a short-lived token binding a just-verified
// identifier to the set-password step. Signed with the dedicated session
// secret so it can never pass as an access token.
func GenerateSessionToken(identifier string, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.SessionExpiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"identifier": identifier,
		"exp":        expiresAt,
		"iss":        cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.SessionSecret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// GenerateResetToken generates a password reset token for the given user
func GenerateResetToken(userID uuid.UUID, cfg models.JWTConfig) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(resetTokenExpirationMinutes * time.Minute).Unix(),
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SessionSecret))
}

// ValidateToken validates a JWT token and returns the claims. Signature,
// expiry and malformed-token failures are indistinguishable to callers.
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// StringClaim extracts a string claim, returning an error when absent
func StringClaim(claims jwt.MapClaims, key string) (string, error) {
	value, ok := claims[key]
	if !ok {
		return "", fmt.Errorf("missing %s claim", key)
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s claim is not a string", key)
	}
	return str, nil
}
