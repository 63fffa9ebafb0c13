package gateway

import (
	"context"
	"time"

	"github.com/swiftride/swiftride/internal/pkg/constants"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/pkg/nsq"
	"github.com/swiftride/swiftride/services/users"
)

// UserGateway publishes user lifecycle events to NSQ. A nil producer turns
// publishing into a no-op so the service runs without a broker in local
// development.
type UserGateway struct {
	producer *nsq.Producer
}

// NewUserGateway creates a new user event gateway
func NewUserGateway(producer *nsq.Producer) users.UserGW {
	return &UserGateway{producer: producer}
}

type userEvent struct {
	UserID    string          `json:"user_id"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	UserType  models.UserType `json:"user_type"`
	Timestamp time.Time       `json:"timestamp"`
}

// PublishUserRegistered announces a new, still-unverified account
func (g *UserGateway) PublishUserRegistered(_ context.Context, user *models.User) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(constants.TopicUserRegistered, userEvent{
		UserID:    user.ID.String(),
		Phone:     user.Phone,
		Email:     user.Email,
		UserType:  user.UserType,
		Timestamp: time.Now(),
	})
}

// PublishUserVerified announces a successful OTP verification
func (g *UserGateway) PublishUserVerified(_ context.Context, user *models.User) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(constants.TopicUserVerified, userEvent{
		UserID:    user.ID.String(),
		Phone:     user.Phone,
		Email:     user.Email,
		UserType:  user.UserType,
		Timestamp: time.Now(),
	})
}
