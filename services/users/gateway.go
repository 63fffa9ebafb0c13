package users

import (
	"context"

	"github.com/swiftride/swiftride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/swiftride/swiftride/services/users UserGW

// UserGW publishes user lifecycle events to downstream consumers. Publishing
// is best-effort: failures are logged and never fail the request.
type UserGW interface {
	PublishUserRegistered(ctx context.Context, user *models.User) error
	PublishUserVerified(ctx context.Context, user *models.User) error
}
