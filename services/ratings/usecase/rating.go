package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

const (
	minRating = 1
	maxRating = 5

	defaultPageSize = 10
	maxPageSize     = 50
)

// CreateRating records a post-ride rating. A ride can be rated once per
// rater, a user cannot rate themselves, and the target's average is updated
// atomically with the insert.
func (uc *RatingUC) CreateRating(ctx context.Context, raterID uuid.UUID, req *models.CreateRatingRequest) (*models.Rating, error) {
	if req.Rating < minRating || req.Rating > maxRating {
		return nil, apperrors.InvalidArgument("rating must be between 1 and 5")
	}
	if req.RideID == uuid.Nil || req.RatedTo == uuid.Nil {
		return nil, apperrors.InvalidArgument("ride_id and rated_to are required")
	}
	if req.RatedTo == raterID {
		return nil, apperrors.InvalidArgument("users cannot rate themselves")
	}

	rating := &models.Rating{
		ID:      uuid.New(),
		RideID:  req.RideID,
		RatedBy: raterID,
		RatedTo: req.RatedTo,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	average, err := uc.repo.CreateRating(ctx, rating)
	if err != nil {
		return nil, err
	}

	uc.publishAverage(ctx, rating.RatedTo, average)

	logger.Info("Created rating",
		logger.String("rating_id", rating.ID.String()),
		logger.String("rated_to", rating.RatedTo.String()),
		logger.Int("rating", rating.Rating),
		logger.Float64("average", average))
	return rating, nil
}

// UpdateRating applies the non-nil fields of the request to a rating owned
// by the caller and refreshes the target's average.
func (uc *RatingUC) UpdateRating(ctx context.Context, raterID, ratingID uuid.UUID, req *models.UpdateRatingRequest) (*models.Rating, error) {
	if req.Rating == nil && req.Comment == nil {
		return nil, apperrors.InvalidArgument("nothing to update")
	}
	if req.Rating != nil && (*req.Rating < minRating || *req.Rating > maxRating) {
		return nil, apperrors.InvalidArgument("rating must be between 1 and 5")
	}

	rating, err := uc.repo.GetRatingByID(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	if rating.RatedBy != raterID {
		return nil, apperrors.Forbidden("only the author can modify a rating")
	}

	if req.Rating != nil {
		rating.Rating = *req.Rating
	}
	if req.Comment != nil {
		rating.Comment = *req.Comment
	}

	average, err := uc.repo.UpdateRating(ctx, rating)
	if err != nil {
		return nil, err
	}

	uc.publishAverage(ctx, rating.RatedTo, average)

	logger.Info("Updated rating",
		logger.String("rating_id", rating.ID.String()),
		logger.Float64("average", average))
	return rating, nil
}

// DeleteRating removes a rating owned by the caller. The target's average is
// recomputed from the remaining ratings, resetting to zero when none are left.
func (uc *RatingUC) DeleteRating(ctx context.Context, raterID, ratingID uuid.UUID) error {
	rating, err := uc.repo.GetRatingByID(ctx, ratingID)
	if err != nil {
		return err
	}
	if rating.RatedBy != raterID {
		return apperrors.Forbidden("only the author can delete a rating")
	}

	average, err := uc.repo.DeleteRating(ctx, ratingID, rating.RatedTo)
	if err != nil {
		return err
	}

	uc.publishAverage(ctx, rating.RatedTo, average)

	logger.Info("Deleted rating",
		logger.String("rating_id", ratingID.String()),
		logger.Float64("average", average))
	return nil
}

// GetRatingByID returns a single rating
func (uc *RatingUC) GetRatingByID(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error) {
	return uc.repo.GetRatingByID(ctx, ratingID)
}

// ListRatingsForRide returns the ratings exchanged on a ride. A ride nobody
// has rated yet is NotFound, not an empty list.
func (uc *RatingUC) ListRatingsForRide(ctx context.Context, rideID uuid.UUID) ([]models.Rating, error) {
	ratingsList, err := uc.repo.ListRatingsForRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if len(ratingsList) == 0 {
		return nil, apperrors.NotFound("rating not found for this ride")
	}
	return ratingsList, nil
}

// ListRatingsForUser returns one page of the ratings a user has received
func (uc *RatingUC) ListRatingsForUser(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RatingPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return uc.repo.ListRatingsForUser(ctx, userID, page, limit)
}

func (uc *RatingUC) publishAverage(ctx context.Context, ratedTo uuid.UUID, average float64) {
	if err := uc.gateway.PublishRatingUpdated(ctx, ratedTo, average); err != nil {
		logger.Warn("Failed to publish rating updated event",
			logger.String("rated_to", ratedTo.String()),
			logger.Err(err))
	}
}
