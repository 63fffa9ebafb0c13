package constants

// Redis key formats
const (
	// KeyUserOTP holds the outstanding OTP record for an identifier.
	// Format: user:otp:{identifier}
	KeyUserOTP = "user:otp:%s"
)
