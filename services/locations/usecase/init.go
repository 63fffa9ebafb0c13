package usecase

import (
	"github.com/swiftride/swiftride/services/locations"
)

// LocationUC implements the locations.LocationUC interface
type LocationUC struct {
	repo locations.LocationRepo
}

// NewLocationUC creates a new location usecase
func NewLocationUC(repo locations.LocationRepo) locations.LocationUC {
	return &LocationUC{repo: repo}
}
