package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Storage  StorageConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// JWTConfig contains token signing configuration.
// SessionSecret is scoped to the OTP verification step and must differ
// from AccessSecret so a session token can never pass as an access token.
type JWTConfig struct {
	AccessSecret      string
	RefreshSecret     string
	SessionSecret     string
	AccessExpiration  int // in minutes
	RefreshExpiration int // in minutes
	SessionExpiration int // in minutes
	Issuer            string
}

// OTPConfig contains one-time password settings
type OTPConfig struct {
	TTLMinutes int
	TestMode   bool // pins the generated code to "123456" for test environments
}

// StorageConfig contains object storage (image host) configuration
type StorageConfig struct {
	UploadURL string
	APIKey    string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
