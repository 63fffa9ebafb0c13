package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/swiftride/swiftride/internal/pkg/jwt"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT bearer authentication.
// Requests with a missing or malformed Authorization header are rejected
// with 401 before any business logic runs.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			// Uniform 401 regardless of whether the cause was a bad
			// signature, wrong key or expiry
			claims, err := jwtpkg.ValidateToken(tokenString, config.AccessSecret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			userIDStr, err := jwtpkg.StringClaim(claims, "user_id")
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			userType, err := jwtpkg.StringClaim(claims, "user_type")
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_type claim")
			}

			c.Set("user_id", userID)
			c.Set("user_type", models.UserType(userType))

			return next(c)
		}
	}
}

// RequireUserType restricts a route to callers of the given types. Must be
// chained after JWTAuthMiddleware.
func RequireUserType(allowed ...models.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, ok := c.Get("user_type").(models.UserType)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}

			for _, t := range allowed {
				if userType == t {
					return next(c)
				}
			}

			return utils.ForbiddenResponse(c, "Insufficient permissions")
		}
	}
}

// UserIDFromContext extracts the authenticated user ID set by the JWT
// middleware
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}
