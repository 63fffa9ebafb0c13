package usecase

import (
	"github.com/swiftride/swiftride/services/ratings"
)

// RatingUC implements the ratings.RatingUC interface
type RatingUC struct {
	repo    ratings.RatingRepo
	gateway ratings.RatingGW
}

// NewRatingUC creates a new rating usecase
func NewRatingUC(repo ratings.RatingRepo, gateway ratings.RatingGW) ratings.RatingUC {
	return &RatingUC{
		repo:    repo,
		gateway: gateway,
	}
}
