package locations

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// LocationUC represents the location usecase interface
type LocationUC interface {
	AddLocation(ctx context.Context, req *models.AddLocationRequest) (*models.Location, error)
	GetLocationByID(ctx context.Context, locationID uuid.UUID) (*models.Location, error)
	ListLocations(ctx context.Context, favouritesOnly bool) ([]models.Location, error)
	DeleteLocation(ctx context.Context, locationID uuid.UUID) error
	FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyLocation, error)
}
