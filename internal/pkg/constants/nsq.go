package constants

// NSQ topics for domain events
const (
	// User service
	TopicUserRegistered = "user.registered"
	TopicUserVerified   = "user.verified"

	// Rating service
	TopicRatingUpdated = "rating.updated"
)
