// internal/config/config.go
// Centralized configuration management
// Loads from environment variables with sensible defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultJWTSecret = "your-super-secret-key-change-this-in-production"

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string
	BaseURL     string
	LogLevel    string

	// Snapshot storage
	StoreDriver string // "memory", "redis" or "postgres"
	DatabaseURL string
	RedisURL    string
	KeyPrefix   string

	// Session
	JWTSecret     string
	SessionExpiry time.Duration

	// Simulated latencies
	LoginDelay time.Duration
	ResetDelay time.Duration
	ReplyDelay time.Duration
	StoryTick  time.Duration

	// Caption generation
	APIKey         string
	CaptionModel   string
	CaptionBaseURL string

	// Uploads
	UseS3          bool
	S3BucketName   string
	AWSRegion      string
	LocalUploadDir string
	MaxUploadSize  int64
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Snapshot storage
		StoreDriver: getEnv("STORE_DRIVER", "memory"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		KeyPrefix:   getEnv("STORE_KEY_PREFIX", ""),

		// Session
		JWTSecret:     getEnv("JWT_SECRET", defaultJWTSecret),
		SessionExpiry: getEnvDuration("SESSION_EXPIRY", "24h"),

		// Simulated latencies
		LoginDelay: getEnvDuration("LOGIN_DELAY", "1500ms"),
		ResetDelay: getEnvDuration("RESET_DELAY", "1000ms"),
		ReplyDelay: getEnvDuration("REPLY_DELAY", "2s"),
		StoryTick:  getEnvDuration("STORY_TICK", "50ms"),

		// Caption generation
		APIKey:         getEnv("API_KEY", os.Getenv("GEMINI_API_KEY")),
		CaptionModel:   getEnv("CAPTION_MODEL", "gemini-2.5-flash"),
		CaptionBaseURL: getEnv("CAPTION_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),

		// Uploads
		UseS3:          getEnvBool("USE_S3", false),
		S3BucketName:   getEnv("S3_BUCKET_NAME", "vibesnap-uploads"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		LocalUploadDir: getEnv("LOCAL_UPLOAD_DIR", "./uploads"),
		MaxUploadSize:  int64(getEnvInt("MAX_UPLOAD_SIZE", 10<<20)),
	}

	// Set BaseURL if not provided
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWTSecret == defaultJWTSecret && c.IsProduction() {
		return fmt.Errorf("JWT secret must be changed for production")
	}

	switch c.StoreDriver {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis store driver")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store driver")
		}
	default:
		return fmt.Errorf("invalid store driver: %s", c.StoreDriver)
	}

	if c.SessionExpiry <= 0 {
		return fmt.Errorf("session expiry must be positive")
	}

	if c.LoginDelay < 0 || c.ResetDelay < 0 || c.ReplyDelay < 0 {
		return fmt.Errorf("simulated delays cannot be negative")
	}

	if c.StoryTick <= 0 {
		return fmt.Errorf("story tick must be positive")
	}

	// Storage validation
	if c.UseS3 {
		if c.S3BucketName == "" || c.AWSRegion == "" {
			return fmt.Errorf("S3 configuration incomplete")
		}
	} else if c.LocalUploadDir == "" {
		return fmt.Errorf("local upload directory not specified")
	}

	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions

// getEnv gets a string value from environment with a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment with a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration value from environment with a default
func getEnvDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		// If parsing fails, try to parse the default
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

// getEnvBool gets a boolean value from environment with a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
