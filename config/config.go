// Package config provides configuration management for the stellar-burgers
// state service.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Credential backends.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config holds the complete application configuration.
type Config struct {
	Log      LogConfig
	Server   ServerConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Session  SessionConfig
	Database DatabaseConfig
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
	// WaitTimeout bounds how long a ?wait=true request waits for a settle.
	WaitTimeout time.Duration
}

// UpstreamConfig holds the Stellar Burgers API client configuration.
type UpstreamConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RefreshLeeway time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// CacheConfig holds the order-by-number cache configuration.
type CacheConfig struct {
	Size   int
	TTL    time.Duration
	Shards int
}

// SessionConfig holds the configuration of the single session this process owns.
type SessionConfig struct {
	ID string
	// Backend is where credentials are kept: "memory" or "mongo".
	Backend string
	// RestoreOnStart fetches the profile at startup when credentials exist.
	RestoreOnStart bool
	// FetchCatalogOnStart loads the ingredient catalog at startup.
	FetchCatalogOnStart bool
	TTL                 time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LoadDotEnv loads variables from the given files (".env" when none) without
// overriding the environment. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
			WaitTimeout: getEnvDuration("WAIT_TIMEOUT", 15*time.Second),
		},
		Upstream: UpstreamConfig{
			BaseURL:                        getEnv("UPSTREAM_BASE_URL", "https://norma.nomoreparties.space/api"),
			Timeout:                        getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
			RefreshLeeway:                  getEnvDuration("UPSTREAM_REFRESH_LEEWAY", 30*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("UPSTREAM_CB_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("UPSTREAM_CB_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("UPSTREAM_CB_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("ORDER_CACHE_SIZE", 1000),
			TTL:    getEnvDuration("ORDER_CACHE_TTL", 10*time.Minute),
			Shards: getEnvInt("ORDER_CACHE_SHARDS", 16),
		},
		Session: SessionConfig{
			ID:                  getEnv("SESSION_ID", "default"),
			Backend:             strings.ToLower(getEnv("CREDENTIAL_BACKEND", BackendMemory)),
			RestoreOnStart:      getEnvBool("SESSION_RESTORE_ON_START", true),
			FetchCatalogOnStart: getEnvBool("FETCH_CATALOG_ON_START", true),
			TTL:                 getEnvDuration("SESSION_TTL", 30*24*time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "stellar_burgers"),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	switch c.Session.Backend {
	case BackendMemory, BackendMongo:
	default:
		return fmt.Errorf("unknown credential backend %q", c.Session.Backend)
	}
	if c.Session.ID == "" {
		return errors.New("session id must not be empty")
	}
	if c.Upstream.BaseURL == "" {
		return errors.New("upstream base url must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
