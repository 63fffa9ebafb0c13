package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

const locationColumns = `id, address, street, district, city, state, country,
		pincode, latitude, longitude, geohash, is_favourite, created_at`

// CreateLocation inserts a saved location. The geohash must already be
// derived from the coordinates by the caller.
func (r *LocationRepository) CreateLocation(ctx context.Context, location *models.Location) error {
	location.CreatedAt = time.Now()

	query := `
		INSERT INTO locations (
			id, address, street, district, city, state, country,
			pincode, latitude, longitude, geohash, is_favourite, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.GetDB().ExecContext(ctx, query,
		location.ID, location.Address, location.Street, location.District,
		location.City, location.State, location.Country, location.Pincode,
		location.Latitude, location.Longitude, location.Geohash,
		location.IsFavourite, location.CreatedAt,
	)
	if err != nil {
		return apperrors.Internal("failed to create location", err)
	}
	return nil
}

// GetLocationByID retrieves a location by primary key
func (r *LocationRepository) GetLocationByID(ctx context.Context, locationID uuid.UUID) (*models.Location, error) {
	var location models.Location
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`
	if err := r.db.GetDB().GetContext(ctx, &location, query, locationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("location not found")
		}
		return nil, apperrors.Internal("failed to get location", err)
	}
	return &location, nil
}

// ListLocations returns all saved locations, optionally only favourites,
// newest first
func (r *LocationRepository) ListLocations(ctx context.Context, favouritesOnly bool) ([]models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations`
	if favouritesOnly {
		query += ` WHERE is_favourite = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	result := []models.Location{}
	if err := r.db.GetDB().SelectContext(ctx, &result, query); err != nil {
		return nil, apperrors.Internal("failed to list locations", err)
	}
	return result, nil
}

// DeleteLocation removes a saved location
func (r *LocationRepository) DeleteLocation(ctx context.Context, locationID uuid.UUID) error {
	result, err := r.db.GetDB().ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, locationID)
	if err != nil {
		return apperrors.Internal("failed to delete location", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("failed to read rows affected", err)
	}
	if rows == 0 {
		return apperrors.NotFound("location not found")
	}
	return nil
}

// ListByGeohashPrefixes returns locations whose geohash starts with any of
// the given prefixes. All prefixes must share the same length.
func (r *LocationRepository) ListByGeohashPrefixes(ctx context.Context, prefixes []string) ([]models.Location, error) {
	if len(prefixes) == 0 {
		return []models.Location{}, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+locationColumns+` FROM locations WHERE left(geohash, ?) IN (?)`,
		len(prefixes[0]), prefixes,
	)
	if err != nil {
		return nil, apperrors.Internal("failed to build geohash query", err)
	}
	query = r.db.GetDB().Rebind(query)

	result := []models.Location{}
	if err := r.db.GetDB().SelectContext(ctx, &result, query, args...); err != nil {
		return nil, apperrors.Internal("failed to query locations by geohash", err)
	}
	return result, nil
}
