package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/database"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

func setupRatingRepo(t *testing.T) (*RatingRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewRatingRepository(database.NewPostgresClientFromDB(sqlxDB))
	return repo.(*RatingRepository), mock
}

func sampleRating() *models.Rating {
	return &models.Rating{
		ID:      uuid.New(),
		RideID:  uuid.New(),
		RatedBy: uuid.New(),
		RatedTo: uuid.New(),
		Rating:  4,
		Comment: "smooth ride",
	}
}

func TestCreateRating_RecomputesAverageInTx(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	rating := sampleRating()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ratings`).
		WithArgs(rating.ID, rating.RideID, rating.RatedBy, rating.RatedTo,
			rating.Rating, rating.Comment, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE users SET\s+average_rating`).
		WithArgs(rating.RatedTo, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating"}).AddRow(4.3))
	mock.ExpectCommit()

	average, err := repo.CreateRating(context.Background(), rating)
	require.NoError(t, err)
	assert.Equal(t, 4.3, average)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRating_DuplicatePerRide(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	rating := sampleRating()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ratings`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectRollback()

	_, err := repo.CreateRating(context.Background(), rating)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRating_RetriesOnSerializationFailure(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	rating := sampleRating()

	// first attempt loses the serialization race against a concurrent rater
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ratings`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE users SET\s+average_rating`).
		WillReturnError(&pgconn.PgError{Code: pgSerializationFailure})
	mock.ExpectRollback()

	// retry recomputes on a snapshot that includes the competing commit
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ratings`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE users SET\s+average_rating`).
		WithArgs(rating.RatedTo, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating"}).AddRow(4.0))
	mock.ExpectCommit()

	average, err := repo.CreateRating(context.Background(), rating)
	require.NoError(t, err)
	assert.Equal(t, 4.0, average)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRating_SerializationFailureExhaustsRetries(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	rating := sampleRating()

	for i := 0; i < serializableTxAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO ratings`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`UPDATE users SET\s+average_rating`).
			WillReturnError(&pgconn.PgError{Code: pgSerializationFailure})
		mock.ExpectRollback()
	}

	_, err := repo.CreateRating(context.Background(), rating)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRating_RecomputesAverage(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	rating := sampleRating()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE ratings SET rating`).
		WithArgs(rating.Rating, rating.Comment, sqlmock.AnyArg(), rating.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE users SET\s+average_rating`).
		WithArgs(rating.RatedTo, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating"}).AddRow(3.8))
	mock.ExpectCommit()

	average, err := repo.UpdateRating(context.Background(), rating)
	require.NoError(t, err)
	assert.Equal(t, 3.8, average)
}

func TestUpdateRating_NotFound(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	rating := sampleRating()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE ratings SET rating`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UpdateRating(context.Background(), rating)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteRating_LastRatingResetsAverage(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	ratingID := uuid.New()
	ratedTo := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM ratings WHERE id`).
		WithArgs(ratingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE users SET\s+average_rating`).
		WithArgs(ratedTo, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating"}).AddRow(0.0))
	mock.ExpectCommit()

	average, err := repo.DeleteRating(context.Background(), ratingID, ratedTo)
	require.NoError(t, err)
	assert.Zero(t, average)
}

func TestGetRatingByID(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	want := sampleRating()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM ratings WHERE id`).
		WithArgs(want.ID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "ride_id", "rated_by", "rated_to", "rating", "comment", "created_at", "updated_at",
		}).AddRow(want.ID, want.RideID, want.RatedBy, want.RatedTo, want.Rating, want.Comment, now, now))

	got, err := repo.GetRatingByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.Rating, got.Rating)
	assert.Equal(t, want.RatedTo, got.RatedTo)
}

func TestListRatingsForRide(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	rideID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM ratings WHERE ride_id`).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "ride_id", "rated_by", "rated_to", "rating", "comment", "created_at", "updated_at",
		}).
			AddRow(uuid.New(), rideID, uuid.New(), uuid.New(), 5, "great driver", now, now).
			AddRow(uuid.New(), rideID, uuid.New(), uuid.New(), 4, "polite passenger", now, now))

	got, err := repo.ListRatingsForRide(context.Background(), rideID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListRatingsForUser_Pagination(t *testing.T) {
	repo, mock := setupRatingRepo(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ratings WHERE rated_to`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	rows := sqlmock.NewRows([]string{
		"id", "ride_id", "rated_by", "rated_to", "rating", "comment", "created_at", "updated_at",
	})
	for i := 0; i < 5; i++ {
		rows.AddRow(uuid.New(), uuid.New(), uuid.New(), userID, 4, "", now, now)
	}
	mock.ExpectQuery(`SELECT (.+) FROM ratings WHERE rated_to (.+) LIMIT`).
		WithArgs(userID, 5, 5).
		WillReturnRows(rows)

	pageResult, err := repo.ListRatingsForUser(context.Background(), userID, 2, 5)
	require.NoError(t, err)
	assert.Len(t, pageResult.Ratings, 5)
	assert.Equal(t, 2, pageResult.Pagination.CurrentPage)
	assert.Equal(t, 3, pageResult.Pagination.TotalPages)
	assert.Equal(t, int64(11), pageResult.Pagination.TotalRatings)
}
