package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
)

const defaultNearbyRadiusKm = 5.0

// AddLocation saves a geocoded address. The geohash is derived from the
// coordinates so nearby lookups can prune by prefix.
func (uc *LocationUC) AddLocation(ctx context.Context, req *models.AddLocationRequest) (*models.Location, error) {
	if req.Address == "" || req.City == "" || req.State == "" || req.Pincode == "" {
		return nil, apperrors.InvalidArgument("address, city, state and pincode are required")
	}
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	point := utils.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	location := &models.Location{
		ID:          uuid.New(),
		Address:     req.Address,
		Street:      req.Street,
		District:    req.District,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Pincode:     req.Pincode,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Geohash:     utils.EncodePoint(point, utils.LocationGeohashPrecision),
		IsFavourite: req.IsFavourite,
	}

	if err := uc.repo.CreateLocation(ctx, location); err != nil {
		return nil, err
	}

	logger.Info("Added location",
		logger.String("location_id", location.ID.String()),
		logger.String("city", location.City))
	return location, nil
}

// GetLocationByID returns a single saved location
func (uc *LocationUC) GetLocationByID(ctx context.Context, locationID uuid.UUID) (*models.Location, error) {
	return uc.repo.GetLocationByID(ctx, locationID)
}

// ListLocations returns saved locations, optionally only favourites
func (uc *LocationUC) ListLocations(ctx context.Context, favouritesOnly bool) ([]models.Location, error) {
	return uc.repo.ListLocations(ctx, favouritesOnly)
}

// DeleteLocation removes a saved location
func (uc *LocationUC) DeleteLocation(ctx context.Context, locationID uuid.UUID) error {
	if err := uc.repo.DeleteLocation(ctx, locationID); err != nil {
		return err
	}
	logger.Info("Deleted location", logger.String("location_id", locationID.String()))
	return nil
}

// FindNearby returns saved locations within radiusKm of the point, closest
// first. Candidates are pruned by geohash prefix before the exact Haversine
// check.
func (uc *LocationUC) FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyLocation, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}

	center := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	precision := prefixPrecisionForRadius(radiusKm)

	centerHash := utils.EncodePoint(center, precision)
	prefixes := append(utils.GeohashNeighbors(centerHash), centerHash)

	candidates, err := uc.repo.ListByGeohashPrefixes(ctx, prefixes)
	if err != nil {
		return nil, err
	}

	nearby := []models.NearbyLocation{}
	for _, candidate := range candidates {
		distance := utils.CalculateDistance(center, utils.GeoPoint{
			Latitude:  candidate.Latitude,
			Longitude: candidate.Longitude,
		})
		if distance <= radiusKm {
			nearby = append(nearby, models.NearbyLocation{
				Location:   candidate,
				DistanceKm: distance,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}

// prefixPrecisionForRadius picks the geohash prefix length whose cell size
// covers the search radius. Cell heights per precision: 4 is ~39km, 5 is
// ~4.9km, 6 is ~1.2km.
func prefixPrecisionForRadius(radiusKm float64) uint {
	switch {
	case radiusKm > 20:
		return 3
	case radiusKm > 2.4:
		return 4
	case radiusKm > 0.6:
		return 5
	default:
		return 6
	}
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return apperrors.InvalidArgument("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return apperrors.InvalidArgument("longitude must be between -180 and 180")
	}
	return nil
}
