package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Redirect modes understood by REDIRECT_MODE.
const (
	RedirectModeHTTP   = "http"
	RedirectModeClient = "client"
)

// Provider exposes the configuration values the rest of the application needs.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetLogFormat() string
	GetLogLevel() string
	GetRedirectMode() string
	GetStaticDir() string
	GetRateLimit() float64
	GetShutdownTimeout() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	Addr            string        `validate:"required"`
	AppBaseURL      string        `validate:"omitempty,url"`
	LogFormat       string        `validate:"oneof=text json"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	RedirectMode    string        `validate:"oneof=http client"`
	StaticDir       string        `validate:"omitempty,dir"`
	RateLimit       float64       `validate:"gte=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

var _ Provider = (*Config)(nil)

// Load reads .env (if present) and the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// We don't have slog configured yet, so we use the standard logger here.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:         getenv("APP_ADDR", ":8080"),
		AppBaseURL:   strings.TrimRight(os.Getenv("APP_BASE_URL"), "/"),
		LogFormat:    strings.ToLower(getenv("LOG_FORMAT", "text")),
		LogLevel:     strings.ToLower(getenv("LOG_LEVEL", "info")),
		RedirectMode: strings.ToLower(getenv("REDIRECT_MODE", RedirectModeHTTP)),
		StaticDir:    os.Getenv("STATIC_DIR"),
	}

	var errs []error

	rate, err := strconv.ParseFloat(getenv("RATE_LIMIT", "20"), 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("RATE_LIMIT: %w", err))
	}
	cfg.RateLimit = rate

	timeout, err := time.ParseDuration(getenv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}
	cfg.ShutdownTimeout = timeout

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string                   { return c.Addr }
func (c *Config) GetAppBaseURL() string             { return c.AppBaseURL }
func (c *Config) GetLogFormat() string              { return c.LogFormat }
func (c *Config) GetLogLevel() string               { return c.LogLevel }
func (c *Config) GetRedirectMode() string           { return c.RedirectMode }
func (c *Config) GetStaticDir() string              { return c.StaticDir }
func (c *Config) GetRateLimit() float64             { return c.RateLimit }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }
