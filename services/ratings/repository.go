package ratings

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftride/swiftride/services/ratings RatingRepo

// RatingRepo defines the rating repository interface. Every mutation
// recomputes the rated user's average inside the same transaction and
// returns the fresh value.
type RatingRepo interface {
	CreateRating(ctx context.Context, rating *models.Rating) (float64, error)
	UpdateRating(ctx context.Context, rating *models.Rating) (float64, error)
	DeleteRating(ctx context.Context, ratingID uuid.UUID, ratedTo uuid.UUID) (float64, error)
	GetRatingByID(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error)
	GetRatingByRideAndRater(ctx context.Context, rideID, raterID uuid.UUID) (*models.Rating, error)
	ListRatingsForRide(ctx context.Context, rideID uuid.UUID) ([]models.Rating, error)
	ListRatingsForUser(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RatingPage, error)
}
