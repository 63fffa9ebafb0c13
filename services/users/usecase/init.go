package usecase

import (
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/pkg/storage"
	"github.com/swiftride/swiftride/services/users"
)

// UserUC implements the users.UserUC interface
type UserUC struct {
	cfg     *models.Config
	repo    users.UserRepo
	gateway users.UserGW
	storage storage.Client
}

// NewUserUC creates a new user usecase
func NewUserUC(cfg *models.Config, repo users.UserRepo, gateway users.UserGW, storageClient storage.Client) users.UserUC {
	return &UserUC{
		cfg:     cfg,
		repo:    repo,
		gateway: gateway,
		storage: storageClient,
	}
}
