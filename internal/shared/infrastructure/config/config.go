package config

import (
	"os"
	"time"

	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Database    database.PostgresConfig
	Redis       database.RedisConfig
	JWT         JWTConfig
	PayPal      PayPalConfig
	OpenAI      OpenAIConfig
	FileStorage FileStorageConfig
	Export      ExportConfig
	Google      GoogleConfig
	Logging     LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	BaseURL        string
	AllowedOrigins string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// PayPalConfig holds PayPal payment gateway configuration
type PayPalConfig struct {
	ClientID  string
	Secret    string
	APIBase   string
	WebhookID string
}

// OpenAIConfig holds completion API configuration for the chatbot proxy
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// FileStorageConfig holds file storage configuration
type FileStorageConfig struct {
	UseS3            bool
	S3Region         string
	S3Endpoint       string
	S3PublicEndpoint string
	S3AccessKey      string
	S3SecretKey      string
	S3BucketName     string
	S3UseSSL         bool
	LocalPath        string
	LocalBaseURL     string
}

// ExportConfig holds static-export pipeline configuration
type ExportConfig struct {
	IconStylesheetURL string
	FetchTimeout      time.Duration
	LockTTL           time.Duration
}

// GoogleConfig holds Google sign-in configuration
type GoogleConfig struct {
	ClientID string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			BaseURL:        getEnv("APP_BASE_URL", "http://localhost:3000"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Database: database.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "linkbio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: database.RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "default-dev-secret"),
			Expiry: parseDuration(getEnv("JWT_EXPIRATION", "24h"), 24*time.Hour),
		},
		PayPal: PayPalConfig{
			ClientID:  getEnv("PAYPAL_CLIENT_ID", ""),
			Secret:    getEnv("PAYPAL_CLIENT_SECRET", ""),
			APIBase:   getEnv("PAYPAL_API_BASE", "https://api-m.sandbox.paypal.com"),
			WebhookID: getEnv("PAYPAL_WEBHOOK_ID", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		FileStorage: FileStorageConfig{
			UseS3:            getEnv("USE_S3", "false") == "true",
			S3Region:         getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:       getEnv("S3_ENDPOINT", ""),
			S3PublicEndpoint: getEnv("S3_PUBLIC_ENDPOINT", getEnv("S3_ENDPOINT", "")),
			S3AccessKey:      getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:      getEnv("S3_SECRET_KEY", ""),
			S3BucketName:     getEnv("S3_BUCKET", ""),
			S3UseSSL:         getEnv("S3_USE_SSL", "true") == "true",
			LocalPath:        getEnv("LOCAL_STORAGE_PATH", "./uploads"),
			LocalBaseURL:     getEnv("LOCAL_STORAGE_BASE_URL", "http://localhost:8080/uploads"),
		},
		Export: ExportConfig{
			IconStylesheetURL: getEnv("EXPORT_ICON_CSS_URL", "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"),
			FetchTimeout:      parseDuration(getEnv("EXPORT_FETCH_TIMEOUT", "15s"), 15*time.Second),
			LockTTL:           parseDuration(getEnv("EXPORT_LOCK_TTL", "2m"), 2*time.Minute),
		},
		Google: GoogleConfig{
			ClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
