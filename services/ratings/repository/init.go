package repository

import (
	"github.com/swiftride/swiftride/internal/pkg/database"
	"github.com/swiftride/swiftride/services/ratings"
)

// RatingRepository implements ratings.RatingRepo backed by Postgres
type RatingRepository struct {
	db *database.PostgresClient
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *database.PostgresClient) ratings.RatingRepo {
	return &RatingRepository{db: db}
}
