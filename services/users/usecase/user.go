package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftride/swiftride/internal/pkg/apperrors"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// GetUserByID returns the sanitized user for the given ID
func (uc *UserUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// UpdateProfile applies the non-empty fields of the request to the user's
// profile. When imagePath names a local temp file it is pushed to the image
// host first and the resulting URL stored as the profile image.
func (uc *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest, imagePath string) (*models.User, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if imagePath != "" {
		url, err := uc.storage.Upload(ctx, imagePath)
		if err != nil {
			return nil, apperrors.Internal("failed to upload profile image", err)
		}
		user.ProfileImage = url
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Street != "" {
		user.Street = req.Street
	}
	if req.District != "" {
		user.District = req.District
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.State != "" {
		user.State = req.State
	}
	if req.ZipCode != "" {
		user.ZipCode = req.ZipCode
	}
	if req.Age > 0 {
		user.Age = req.Age
	}

	if err := uc.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Updated profile", logger.String("user_id", userID.String()))
	return user.Sanitized(), nil
}
