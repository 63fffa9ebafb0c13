package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	serializableTxAttempts = 3
)

const ratingColumns = `id, ride_id, rated_by, rated_to, rating, comment, created_at, updated_at`

// recomputeAverageQuery folds every rating for the target into a mean rounded
// to one decimal. No ratings left means the average resets to zero.
const recomputeAverageQuery = `
	UPDATE users SET
		average_rating = COALESCE(
			(SELECT ROUND(AVG(rating)::numeric, 1) FROM ratings WHERE rated_to = $1),
			0
		),
		updated_at = $2
	WHERE id = $1
	RETURNING average_rating`

// CreateRating inserts a rating and recomputes the target's average in one
// serializable transaction. A second rating for the same (ride, rater) pair
// is a conflict.
func (r *RatingRepository) CreateRating(ctx context.Context, rating *models.Rating) (float64, error) {
	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now

	return r.inSerializableTx(ctx, func(tx *sqlx.Tx) (float64, error) {
		query := `
			INSERT INTO ratings (id, ride_id, rated_by, rated_to, rating, comment, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

		_, err := tx.ExecContext(ctx, query,
			rating.ID, rating.RideID, rating.RatedBy, rating.RatedTo,
			rating.Rating, rating.Comment, rating.CreatedAt, rating.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return 0, apperrors.Conflict("ride has already been rated by this user")
			}
			return 0, apperrors.Internal("failed to create rating", err)
		}

		return recomputeAverage(ctx, tx, rating.RatedTo)
	})
}

// UpdateRating persists changed rating fields and recomputes the target's
// average in one serializable transaction
func (r *RatingRepository) UpdateRating(ctx context.Context, rating *models.Rating) (float64, error) {
	rating.UpdatedAt = time.Now()

	return r.inSerializableTx(ctx, func(tx *sqlx.Tx) (float64, error) {
		query := `UPDATE ratings SET rating = $1, comment = $2, updated_at = $3 WHERE id = $4`
		result, err := tx.ExecContext(ctx, query,
			rating.Rating, rating.Comment, rating.UpdatedAt, rating.ID,
		)
		if err != nil {
			return 0, apperrors.Internal("failed to update rating", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return 0, apperrors.Internal("failed to read rows affected", err)
		}
		if rows == 0 {
			return 0, apperrors.NotFound("rating not found")
		}

		return recomputeAverage(ctx, tx, rating.RatedTo)
	})
}

// DeleteRating removes a rating and recomputes the target's average in one
// serializable transaction. Deleting the last rating resets the average to
// zero.
func (r *RatingRepository) DeleteRating(ctx context.Context, ratingID uuid.UUID, ratedTo uuid.UUID) (float64, error) {
	return r.inSerializableTx(ctx, func(tx *sqlx.Tx) (float64, error) {
		result, err := tx.ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, ratingID)
		if err != nil {
			return 0, apperrors.Internal("failed to delete rating", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return 0, apperrors.Internal("failed to read rows affected", err)
		}
		if rows == 0 {
			return 0, apperrors.NotFound("rating not found")
		}

		return recomputeAverage(ctx, tx, ratedTo)
	})
}

// GetRatingByID retrieves a rating by primary key
func (r *RatingRepository) GetRatingByID(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`
	if err := r.db.GetDB().GetContext(ctx, &rating, query, ratingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("rating not found")
		}
		return nil, apperrors.Internal("failed to get rating", err)
	}
	return &rating, nil
}

// GetRatingByRideAndRater retrieves the rating a user left for a ride
func (r *RatingRepository) GetRatingByRideAndRater(ctx context.Context, rideID, raterID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE ride_id = $1 AND rated_by = $2`
	if err := r.db.GetDB().GetContext(ctx, &rating, query, rideID, raterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("rating not found")
		}
		return nil, apperrors.Internal("failed to get rating", err)
	}
	return &rating, nil
}

// ListRatingsForRide returns the ratings exchanged on a ride, at most one
// per direction
func (r *RatingRepository) ListRatingsForRide(ctx context.Context, rideID uuid.UUID) ([]models.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE ride_id = $1 ORDER BY created_at`

	ratingsList := []models.Rating{}
	if err := r.db.GetDB().SelectContext(ctx, &ratingsList, query, rideID); err != nil {
		return nil, apperrors.Internal("failed to list ride ratings", err)
	}
	return ratingsList, nil
}

// ListRatingsForUser returns one page of the ratings received by a user,
// newest first
func (r *RatingRepository) ListRatingsForUser(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RatingPage, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM ratings WHERE rated_to = $1`
	if err := r.db.GetDB().GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, apperrors.Internal("failed to count ratings", err)
	}

	offset := (page - 1) * limit
	listQuery := `SELECT ` + ratingColumns + `
		FROM ratings WHERE rated_to = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	ratingsList := []models.Rating{}
	if err := r.db.GetDB().SelectContext(ctx, &ratingsList, listQuery, userID, limit, offset); err != nil {
		return nil, apperrors.Internal("failed to list ratings", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &models.RatingPage{
		Ratings: ratingsList,
		Pagination: models.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalRatings: total,
		},
	}, nil
}

// inSerializableTx runs fn inside a SERIALIZABLE transaction so two
// concurrent mutations against the same rated user cannot both recompute
// from a snapshot missing the other's write. The loser of such a race fails
// with SQLSTATE 40001 and is retried on a fresh snapshot.
func (r *RatingRepository) inSerializableTx(ctx context.Context, fn func(tx *sqlx.Tx) (float64, error)) (float64, error) {
	var lastErr error
	for attempt := 0; attempt < serializableTxAttempts; attempt++ {
		average, err := r.runTxOnce(ctx, fn)
		if err == nil {
			return average, nil
		}
		if !isSerializationFailure(err) {
			return 0, err
		}
		lastErr = err
	}
	return 0, apperrors.Internal("rating transaction kept conflicting", lastErr)
}

func (r *RatingRepository) runTxOnce(ctx context.Context, fn func(tx *sqlx.Tx) (float64, error)) (float64, error) {
	tx, err := r.db.GetDB().BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, apperrors.Internal("failed to begin transaction", err)
	}
	defer tx.Rollback()

	average, err := fn(tx)
	if err != nil {
		return 0, err
	}

	// serialization conflicts can also surface at commit
	if err := tx.Commit(); err != nil {
		return 0, apperrors.Internal("failed to commit transaction", err)
	}
	return average, nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure
}

func recomputeAverage(ctx context.Context, tx *sqlx.Tx, ratedTo uuid.UUID) (float64, error) {
	var average float64
	if err := tx.GetContext(ctx, &average, recomputeAverageQuery, ratedTo, time.Now()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.NotFound("rated user not found")
		}
		return 0, apperrors.Internal("failed to recompute average rating", err)
	}
	return average, nil
}
