package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Rental  RentalConfig
	Logging LoggingConfig
}

// ServerConfig holds catalog API server configuration.
type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	MoviesDBPath    string        `envconfig:"MOVIES_DB_PATH" default:"movies.db"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// CatalogConfig holds client-side catalog cache configuration.
type CatalogConfig struct {
	BaseURL      string        `envconfig:"CATALOG_URL" default:"http://localhost:8080"`
	CacheTTL     time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
	FetchTimeout time.Duration `envconfig:"CATALOG_FETCH_TIMEOUT" default:"15s"`
}

// RentalConfig holds local rental store configuration.
type RentalConfig struct {
	DBPath string `envconfig:"RENTAL_DB_PATH" default:"rentals.db"`
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Verbose bool `envconfig:"VERBOSE" default:"false"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// validate validates the configuration values.
func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Server.MoviesDBPath == "" {
		return fmt.Errorf("movies database path cannot be empty")
	}

	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog URL cannot be empty")
	}

	if c.Catalog.CacheTTL <= 0 {
		return fmt.Errorf("catalog cache TTL must be positive, got: %v", c.Catalog.CacheTTL)
	}

	if c.Catalog.FetchTimeout <= 0 {
		return fmt.Errorf("catalog fetch timeout must be positive, got: %v", c.Catalog.FetchTimeout)
	}

	if c.Rental.DBPath == "" {
		return fmt.Errorf("rental database path cannot be empty")
	}

	return nil
}
