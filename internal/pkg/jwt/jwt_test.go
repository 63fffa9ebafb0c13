package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftride/swiftride/internal/pkg/models"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		AccessSecret:      "test-access-secret",
		RefreshSecret:     "test-refresh-secret",
		SessionSecret:     "test-session-secret",
		AccessExpiration:  60,
		RefreshExpiration: 7 * 24 * 60,
		SessionExpiration: 10,
		Issuer:            "swiftride-test",
	}
}

func testUser() *models.User {
	return &models.User{
		ID:         uuid.New(),
		Email:      "user@example.com",
		FullName:   "John Doe",
		UserType:   models.UserTypeRider,
		IsVerified: true,
	}
}

func TestGenerateAccessToken(t *testing.T) {
	cfg := getTestConfig()
	user := testUser()

	tokenString, expiresAt, err := GenerateAccessToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.AccessSecret)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, user.FullName, claims["full_name"])
	assert.Equal(t, string(models.UserTypeRider), claims["user_type"])
	assert.Equal(t, true, claims["is_verified"])
	assert.Equal(t, cfg.Issuer, claims["iss"])
}

func TestGenerateSessionToken_DistinctKey(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateSessionToken("+15551234567", cfg)
	require.NoError(t, err)

	// validates against the session secret
	claims, err := ValidateToken(tokenString, cfg.SessionSecret)
	require.NoError(t, err)
	identifier, err := StringClaim(claims, "identifier")
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", identifier)

	// a session token must never verify as an access token
	_, err = ValidateToken(tokenString, cfg.AccessSecret)
	assert.Error(t, err)
}

func TestGenerateRefreshToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateRefreshToken(userID, cfg)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Add(6*24*time.Hour).Unix())

	claims, err := ValidateToken(tokenString, cfg.RefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	user := testUser()

	validToken, _, err := GenerateAccessToken(user, cfg)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
		setupToken  func() string
	}{
		{
			name:        "valid token",
			tokenString: validToken,
			secret:      cfg.AccessSecret,
			expectError: false,
		},
		{
			name:        "wrong secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "malformed token",
			tokenString: "invalid.token.string",
			secret:      cfg.AccessSecret,
			expectError: true,
		},
		{
			name:        "empty token",
			tokenString: "",
			secret:      cfg.AccessSecret,
			expectError: true,
		},
		{
			name: "expired token",
			setupToken: func() string {
				expiredCfg := cfg
				expiredCfg.AccessExpiration = -1
				token, _, _ := GenerateAccessToken(user, expiredCfg)
				return token
			},
			secret:      cfg.AccessSecret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenToTest := tt.tokenString
			if tt.setupToken != nil {
				tokenToTest = tt.setupToken()
			}

			claims, err := ValidateToken(tokenToTest, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}

func TestStringClaim(t *testing.T) {
	cfg := getTestConfig()
	tokenString, _, err := GenerateSessionToken("user@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.SessionSecret)
	require.NoError(t, err)

	_, err = StringClaim(claims, "missing")
	assert.Error(t, err)

	identifier, err := StringClaim(claims, "identifier")
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", identifier)
}
