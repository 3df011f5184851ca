/*
Package configs is responsible for loading and parsing the application's configuration settings.

Configuration comes from environment variables (with a .env file loaded in
development) through envconfig struct tags. It covers the HTTP server, the
storage file location, the reserved owner credentials, the assistant service,
and CORS origins.
*/
package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig contains all configuration parameters required for the application to run.
type AppConfig struct {
	// General Server Settings
	Environment string        `envconfig:"ENVIRONMENT" default:"development"`
	Host        string        `envconfig:"HOST" default:"127.0.0.1"`
	Port        int           `envconfig:"PORT" default:"8080"`
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`

	// Security Settings
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`

	// Storage Settings
	StoragePath string `envconfig:"STORAGE_PATH" default:"./data/bloxclone.db"`

	// Owner Account Settings. The password gates login on the reserved
	// identity only; regular accounts are not password checked.
	OwnerUsername string `envconfig:"OWNER_USERNAME" default:"Owner_Admin"`
	OwnerPassword string `envconfig:"OWNER_PASSWORD" default:"admin123"`

	// Assistant (text generation) Settings. An empty API key disables remote
	// calls; the assistant then answers with its static fallbacks.
	AssistantAPIKey  string  `envconfig:"ASSISTANT_API_KEY"`
	AssistantModel   string  `envconfig:"ASSISTANT_MODEL" default:"gemini-2.5-flash"`
	AssistantBaseURL string  `envconfig:"ASSISTANT_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	AssistantRate    float64 `envconfig:"ASSISTANT_RATE" default:"0.5"`
	AssistantBurst   int     `envconfig:"ASSISTANT_BURST" default:"3"`
}

// IsDevelopment returns true if running in development mode.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// Address returns the server address in host:port format.
func (c *AppConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig reads and parses the application configuration from environment variables.
// A .env file is loaded first if present (silent no-op otherwise).
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (1024-65535) to avoid privileged ports", cfg.Port)
	}

	if strings.TrimSpace(cfg.OwnerUsername) == "" {
		return nil, fmt.Errorf("OWNER_USERNAME must not be empty")
	}

	return cfg, nil
}
