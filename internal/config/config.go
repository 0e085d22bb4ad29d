package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration handed to components.
type Provider interface {
	GetAddr() string
	GetAPIURL() string
	GetAPITimeout() time.Duration
	GetSessionSecret() string
	GetDefaultLocale() string
	GetStaticDir() string
	GetLiveUpdates() bool
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr          string        `validate:"required"`
	APIURL        string        `validate:"required,url"`
	APITimeout    time.Duration `validate:"gt=0"`
	SessionSecret string        `validate:"omitempty,min=16"`
	DefaultLocale string        `validate:"required,bcp47_language_tag"`
	StaticDir     string        `validate:"omitempty,dir"`
	LiveUpdates   bool
	LogFormat     string `validate:"oneof=text json"`
	LogLevel      string `validate:"oneof=debug info warn error"`
}

var _ Provider = (*Config)(nil)

// Defaults applied when a variable is unset.
const (
	DefaultAddr       = ":8080"
	DefaultAPITimeout = 10 * time.Second
	DefaultLocale     = "en"
)

// New loads configuration from the environment, reading a .env file first
// when one exists.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// We don't have slog configured yet, so the standard logger is used.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the current environment only.
func FromEnv() (*Config, error) {
	timeout, err := durationEnv("API_TIMEOUT", DefaultAPITimeout)
	if err != nil {
		return nil, err
	}
	live, err := boolEnv("LIVE_UPDATES", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:          stringEnv("APP_ADDR", DefaultAddr),
		APIURL:        os.Getenv("ACTIVITIES_API_URL"),
		APITimeout:    timeout,
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DefaultLocale: stringEnv("DEFAULT_LOCALE", DefaultLocale),
		StaticDir:     os.Getenv("STATIC_DIR"),
		LiveUpdates:   live,
		LogFormat:     strings.ToLower(stringEnv("LOG_FORMAT", "text")),
		LogLevel:      strings.ToLower(stringEnv("LOG_LEVEL", "info")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ValidateServe checks the settings only the web server needs. The session
// secret signs the flash cookie, so serving without one is refused.
func ValidateServe(p Provider) error {
	if err := validator.New().Var(p.GetSessionSecret(), "required,min=16"); err != nil {
		return fmt.Errorf("config: SESSION_SECRET is required to serve: %w", err)
	}
	return nil
}

func (c *Config) GetAddr() string              { return c.Addr }
func (c *Config) GetAPIURL() string            { return c.APIURL }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetDefaultLocale() string     { return c.DefaultLocale }
func (c *Config) GetStaticDir() string         { return c.StaticDir }
func (c *Config) GetLiveUpdates() bool         { return c.LiveUpdates }
func (c *Config) GetLogFormat() string         { return c.LogFormat }
func (c *Config) GetLogLevel() string          { return c.LogLevel }

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
