package repository

import (
	"github.com/swiftride/swiftride/internal/pkg/database"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/users"
)

// UserRepository implements users.UserRepo backed by Postgres for the
// credential store and Redis for the OTP ledger.
type UserRepository struct {
	cfg   *models.Config
	db    *database.PostgresClient
	redis *database.RedisClient
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *database.PostgresClient, redis *database.RedisClient) users.UserRepo {
	return &UserRepository{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}
