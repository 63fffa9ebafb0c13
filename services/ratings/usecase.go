package ratings

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftride/swiftride/services/ratings RatingUC

// RatingUC represents the rating usecase interface
type RatingUC interface {
	CreateRating(ctx context.Context, raterID uuid.UUID, req *models.CreateRatingRequest) (*models.Rating, error)
	UpdateRating(ctx context.Context, raterID, ratingID uuid.UUID, req *models.UpdateRatingRequest) (*models.Rating, error)
	DeleteRating(ctx context.Context, raterID, ratingID uuid.UUID) error
	GetRatingByID(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error)
	ListRatingsForRide(ctx context.Context, rideID uuid.UUID) ([]models.Rating, error)
	ListRatingsForUser(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RatingPage, error)
}
