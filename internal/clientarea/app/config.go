package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientarea/pkg/accesstoken"
	"github.com/joho/godotenv"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	PublicBaseURL     string // Required: origin of the client area, used in activation links
	TokenAlgorithm    string // Optional: md5 or hmac-sha256 (default: md5)
	TokenSecret       string // Required for hmac-sha256
	RegistrationToken string // Optional: enables professional sign up when set

	Issuer     string        // Optional: issuer of session tokens (default: clientarea)
	NumKeys    int           // Optional: number of session signing keys (default: 3, max: 10)
	SessionTTL time.Duration // Optional: session token lifetime (default: 12h)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: SQLite database file (default: ./clientarea.db)
	DatabaseURL    string // Required for postgres
	PepperFile     string // Optional: pepper for password hashing (default: ./pepper)

	DefaultPhoneRegion string // Optional: region for numbers without a country code (default: IT)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	LogFile             string        // Optional: rotated log file mirrored from stdout
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	AuditInterval       time.Duration // Unique code audit interval (default: 1h)
}

// LoadEnvFile loads KEY=value pairs from path without overriding variables
// already set. A missing default .env is not an error.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !required && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func LoadConfig() Config {
	return Config{
		PublicBaseURL:     strings.TrimSuffix(os.Getenv("PUBLIC_BASE_URL"), "/"),
		TokenAlgorithm:    getEnvOrDefault("TOKEN_ALGORITHM", accesstoken.AlgorithmMD5),
		TokenSecret:       os.Getenv("TOKEN_SECRET"),
		RegistrationToken: os.Getenv("REGISTRATION_TOKEN"),

		Issuer:     getEnvOrDefault("AUTH_ISSUER", "clientarea"),
		NumKeys:    getEnvIntOrDefault("AUTH_NUM_KEYS", 3),
		SessionTTL: getEnvDurationOrDefault("SESSION_TTL", 12*time.Hour),

		DatabaseDriver: strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", DriverSQLite)),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "clientarea.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		PepperFile:     getEnvOrDefault("PEPPER_FILE", "pepper"),

		DefaultPhoneRegion: strings.ToUpper(getEnvOrDefault("DEFAULT_PHONE_REGION", "IT")),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		LogFile:             os.Getenv("LOG_FILE"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		AuditInterval:       getEnvDurationOrDefault("AUDIT_INTERVAL", 1*time.Hour),
	}
}

// Validate reports settings the service cannot start with. Database
// settings are checked separately so maintenance commands can run without
// the HTTP settings.
func (c Config) Validate() error {
	var errs []error
	if c.PublicBaseURL == "" {
		errs = append(errs, errors.New("PUBLIC_BASE_URL is required"))
	}
	if _, err := accesstoken.New(c.TokenAlgorithm, c.TokenSecret); err != nil {
		errs = append(errs, fmt.Errorf("TOKEN_ALGORITHM/TOKEN_SECRET: %w", err))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	errs = append(errs, c.ValidateDatabase())
	return errors.Join(errs...)
}

func (c Config) ValidateDatabase() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("DATABASE_FILE is required for sqlite")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for postgres")
		}
	default:
		return fmt.Errorf("DATABASE_DRIVER %q is not sqlite or postgres", c.DatabaseDriver)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
