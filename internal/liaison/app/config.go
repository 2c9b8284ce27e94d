package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	GoogleClientID     string // Required: OAuth client ID
	GoogleClientSecret string // Required: OAuth client secret
	GoogleRedirectURL  string // Required: callback URL registered with Google
	GoogleAuthURL      string // Optional: overrides Google's consent endpoint
	GoogleTokenURL     string // Optional: overrides Google's token endpoint
	GoogleAPIEndpoint  string // Optional: root URL for the Calendar and Gmail APIs
	AppBaseURL         string // Frontend origin the callback redirects to (default: http://localhost:3000)

	IdentityMode         string        // jwt or header (default: jwt)
	IdentityJWKSURL      string        // Required in jwt mode: JWKS of the identity provider
	IdentityIssuer       string        // Optional: required iss claim
	IdentityAudience     []string      // Optional: comma separated accepted aud values
	IdentityHeader       string        // Header carrying the user ID in header mode (default: X-User-ID)
	IdentityJWKSRefresh  time.Duration // JWKS refresh interval (default: 15m)
	MasterKey            string        // Optional: token encryption key material
	MasterKeyPath        string        // Optional: file holding the key; wins over MasterKey
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./liaison.db)
	TokenRefreshBuffer   time.Duration // Refresh tokens expiring within this window (default: 5m)
	EmailSendConcurrency int           // Parallel Gmail sends per batch (default: 1)
	OAuthStateTTL        time.Duration // Lifetime of a pending consent (default: 10m)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		GoogleAuthURL:      os.Getenv("GOOGLE_OAUTH_AUTH_URL"),
		GoogleTokenURL:     os.Getenv("GOOGLE_OAUTH_TOKEN_URL"),
		GoogleAPIEndpoint:  os.Getenv("GOOGLE_API_ENDPOINT"),
		AppBaseURL:         getEnvOrDefault("APP_BASE_URL", "http://localhost:3000"),

		IdentityMode:         strings.ToLower(getEnvOrDefault("IDENTITY_MODE", "jwt")),
		IdentityJWKSURL:      os.Getenv("IDENTITY_JWKS_URL"),
		IdentityIssuer:       os.Getenv("IDENTITY_ISSUER"),
		IdentityAudience:     splitList(os.Getenv("IDENTITY_AUDIENCE")),
		IdentityHeader:       getEnvOrDefault("IDENTITY_HEADER", "X-User-ID"),
		IdentityJWKSRefresh:  getEnvDurationOrDefault("IDENTITY_JWKS_REFRESH", 15*time.Minute),
		MasterKey:            os.Getenv("LIAISON_MASTER_KEY"),
		MasterKeyPath:        os.Getenv("LIAISON_MASTER_KEY_PATH"),
		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "liaison.db"),
		TokenRefreshBuffer:   getEnvDurationOrDefault("TOKEN_REFRESH_BUFFER", 5*time.Minute),
		EmailSendConcurrency: getEnvIntOrDefault("EMAIL_SEND_CONCURRENCY", 1),
		OAuthStateTTL:        getEnvDurationOrDefault("OAUTH_STATE_TTL", 10*time.Minute),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
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

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
