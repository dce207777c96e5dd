package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// DefaultBackendURL is used when neither BACKEND_URL nor VITE_BACKEND_URL is set.
	DefaultBackendURL = "http://localhost:8000"
	// DefaultServerAddr is the address the portal listens on.
	DefaultServerAddr     = ":8080"
	defaultBackendTimeout = 10 * time.Second
)

// Provider exposes read-only access to the application configuration.
type Provider interface {
	GetBackendURL() string
	GetServerAddr() string
	GetBackendTimeout() time.Duration
	GetLogFormat() string
	GetLogLevel() string
	GetStaticDir() string
	GetSeedRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	BackendURL     string        `validate:"required,http_url"`
	ServerAddr     string        `validate:"required"`
	BackendTimeout time.Duration `validate:"gt=0"`
	LogFormat      string        `validate:"oneof=text json"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
	StaticDir      string
	SeedRateLimit  int `validate:"gte=0"` // requests per minute per IP, 0 disables
}

// Load reads configuration from the environment, after loading a .env file
// if one is present, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		BackendURL:     firstNonEmpty(getenv("BACKEND_URL"), getenv("VITE_BACKEND_URL"), DefaultBackendURL),
		ServerAddr:     firstNonEmpty(getenv("SERVER_ADDR"), DefaultServerAddr),
		BackendTimeout: defaultBackendTimeout,
		LogFormat:      firstNonEmpty(getenv("LOG_FORMAT"), "text"),
		LogLevel:       firstNonEmpty(getenv("LOG_LEVEL"), "debug"),
		StaticDir:      getenv("STATIC_DIR"),
	}

	if raw := getenv("BACKEND_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid BACKEND_TIMEOUT %q: %w", raw, err)
		}
		cfg.BackendTimeout = d
	}

	if raw := getenv("SEED_RATE_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid SEED_RATE_LIMIT %q: %w", raw, err)
		}
		cfg.SeedRateLimit = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New loads configuration and exits the process if it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) GetBackendURL() string            { return c.BackendURL }
func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetBackendTimeout() time.Duration { return c.BackendTimeout }
func (c *Config) GetLogFormat() string             { return c.LogFormat }
func (c *Config) GetLogLevel() string              { return c.LogLevel }
func (c *Config) GetStaticDir() string             { return c.StaticDir }
func (c *Config) GetSeedRateLimit() int            { return c.SeedRateLimit }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
