package config

import (
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App       AppConfig
	API       APIConfig
	DevServer DevServerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
}

// APIConfig points the client at the lead-management backend. Token is the
// opaque bearer credential; how it was minted is not this repo's concern.
type APIConfig struct {
	BaseURL        string
	Token          string
	UserName       string // display name for the signed-in operator
	DefaultSource  string
	TimeoutSeconds int
}

// DevServerConfig drives the local stub backend.
type DevServerConfig struct {
	Port            string
	Token           string // bearer token the stub accepts; empty disables auth
	TokenTTLSeconds int    // upload token lifetime
	PreviewRows     int    // preview rows per sheet
	PreviewMaxBytes int64  // previews disabled above this upload size
}

// Load reads config from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Lead Console"),
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		API: APIConfig{
			BaseURL:        getEnv("LEAD_API_URL", "http://localhost:8080/api/v1"),
			Token:          getEnv("LEAD_API_TOKEN", ""),
			UserName:       getEnv("LEAD_API_USER", ""),
			DefaultSource:  getEnv("LEAD_UPLOAD_SOURCE", "bulk-upload"),
			TimeoutSeconds: getEnvInt("LEAD_API_TIMEOUT", 300),
		},
		DevServer: DevServerConfig{
			Port:            getEnv("DEVSERVER_PORT", "8080"),
			Token:           getEnv("DEVSERVER_TOKEN", ""),
			TokenTTLSeconds: getEnvInt("DEVSERVER_TOKEN_TTL", 600),
			PreviewRows:     getEnvInt("DEVSERVER_PREVIEW_ROWS", 5),
			PreviewMaxBytes: int64(getEnvInt("DEVSERVER_PREVIEW_MAX_BYTES", 5*1024*1024)),
		},
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
