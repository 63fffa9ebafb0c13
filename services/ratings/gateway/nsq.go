package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/swiftride/swiftride/internal/pkg/constants"
	"github.com/swiftride/swiftride/internal/pkg/nsq"
	"github.com/swiftride/swiftride/services/ratings"
)

// RatingGateway publishes rating events to NSQ. A nil producer turns
// publishing into a no-op.
type RatingGateway struct {
	producer *nsq.Producer
}

// NewRatingGateway creates a new rating event gateway
func NewRatingGateway(producer *nsq.Producer) ratings.RatingGW {
	return &RatingGateway{producer: producer}
}

type ratingUpdatedEvent struct {
	UserID        string    `json:"user_id"`
	AverageRating float64   `json:"average_rating"`
	Timestamp     time.Time `json:"timestamp"`
}

// PublishRatingUpdated announces a freshly recomputed average for a user
func (g *RatingGateway) PublishRatingUpdated(_ context.Context, ratedTo uuid.UUID, average float64) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(constants.TopicRatingUpdated, ratingUpdatedEvent{
		UserID:        ratedTo.String(),
		AverageRating: average,
		Timestamp:     time.Now(),
	})
}
