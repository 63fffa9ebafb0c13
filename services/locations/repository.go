package locations

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// LocationRepo defines the location repository interface
type LocationRepo interface {
	CreateLocation(ctx context.Context, location *models.Location) error
	GetLocationByID(ctx context.Context, locationID uuid.UUID) (*models.Location, error)
	ListLocations(ctx context.Context, favouritesOnly bool) ([]models.Location, error)
	DeleteLocation(ctx context.Context, locationID uuid.UUID) error
	ListByGeohashPrefixes(ctx context.Context, prefixes []string) ([]models.Location, error)
}
