package ratings

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/swiftride/swiftride/services/ratings RatingGW

// RatingGW publishes rating events to downstream consumers
type RatingGW interface {
	PublishRatingUpdated(ctx context.Context, ratedTo uuid.UUID, average float64) error
}
