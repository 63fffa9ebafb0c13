package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating represents a post-ride rating. At most one rating may exist per
// (ride, rated_by) pair; every mutation recomputes the target's average.
type Rating struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RideID    uuid.UUID `json:"ride_id" db:"ride_id"`
	RatedBy   uuid.UUID `json:"rated_by" db:"rated_by"`
	RatedTo   uuid.UUID `json:"rated_to" db:"rated_to"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateRatingRequest represents a rating creation request
type CreateRatingRequest struct {
	RideID  uuid.UUID `json:"ride_id" validate:"required"`
	RatedTo uuid.UUID `json:"rated_to" validate:"required"`
	Rating  int       `json:"rating" validate:"required,min=1,max=5"`
	Comment string    `json:"comment,omitempty"`
}

// UpdateRatingRequest represents a partial rating update. A nil field keeps
// the stored value.
type UpdateRatingRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// Pagination describes the page window of a list response
type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalRatings int64 `json:"total_ratings"`
}

// RatingPage is a single page of ratings for a user
type RatingPage struct {
	Ratings    []Rating   `json:"ratings"`
	Pagination Pagination `json:"pagination"`
}
