// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into
// structured Go types and validates that required values are
// present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional blocks (observability, token TTLs, storage expiry).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before koanf reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

/*
	Env vars are read using the TRAVEL_ prefix. Keys are lowercased with the
	prefix removed and nested struct fields use "." as the delimiter:

	  TRAVEL_SERVER.PORT        -> server.port        -> Config.Server.Port
	  TRAVEL_AUTH.ACCESS_SECRET -> auth.access_secret -> Config.Auth.AccessSecret
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "TRAVEL_"

// ServiceName tags logs, traces and New Relic data for this service.
const ServiceName = "travel-api"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Storage       StorageConfig        `koanf:"storage"`
	Integration   IntegrationConfig    `koanf:"integration"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains the MongoDB connection string and client tuning.
type DatabaseConfig struct {
	URI            string        `koanf:"uri" validate:"required"`
	Name           string        `koanf:"name" validate:"required"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	MaxPoolSize    uint64        `koanf:"max_pool_size"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores the token signing secrets and token lifetimes.
//
// Access and refresh tokens are signed with different secrets so a leaked
// refresh secret can not mint access tokens.
type AuthConfig struct {
	AccessSecret  string        `koanf:"access_secret" validate:"required"`
	RefreshSecret string        `koanf:"refresh_secret" validate:"required"`
	AccessTTL     time.Duration `koanf:"access_ttl"`
	RefreshTTL    time.Duration `koanf:"refresh_ttl"`
}

// StorageConfig configures the S3 bucket used for presigned uploads.
type StorageConfig struct {
	Bucket          string        `koanf:"bucket"`
	Region          string        `koanf:"region"`
	Endpoint        string        `koanf:"endpoint"`
	AccessKeyID     string        `koanf:"access_key_id"`
	SecretAccessKey string        `koanf:"secret_access_key"`
	UsePathStyle    bool          `koanf:"use_path_style"`
	PresignExpiry   time.Duration `koanf:"presign_expiry"`

	// PublicBaseURL is prefixed to stored object keys to build public image URLs.
	PublicBaseURL string `koanf:"public_base_url"`
}

// IntegrationConfig holds credentials for third-party services.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
}

// RateLimitConfig tunes the limiter applied to credential and chat endpoints.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

const (
	DefaultAccessTTL      = 365 * 24 * time.Hour
	DefaultRefreshTTL     = 30 * 24 * time.Hour
	DefaultPresignExpiry  = 60 * time.Second
	DefaultConnectTimeout = 10 * time.Second
	DefaultRatePerSecond  = 5
	DefaultRateBurst      = 10
)

// LoadConfig loads configuration from environment variables, validates it,
// applies defaults and returns the resulting config.
//
// It logs fatally on load, unmarshal and validation errors so a misconfigured
// process never starts serving.
func LoadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// applyDefaults fills optional values that were not provided.
//
// Service name and environment of the observability block are always forced
// from the primary config so telemetry stays consistently labelled.
func (c *Config) applyDefaults() {
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if c.Auth.AccessTTL <= 0 {
		c.Auth.AccessTTL = DefaultAccessTTL
	}
	if c.Auth.RefreshTTL <= 0 {
		c.Auth.RefreshTTL = DefaultRefreshTTL
	}
	if c.Storage.PresignExpiry <= 0 {
		c.Storage.PresignExpiry = DefaultPresignExpiry
	}
	if c.Database.ConnectTimeout <= 0 {
		c.Database.ConnectTimeout = DefaultConnectTimeout
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		c.RateLimit.RequestsPerSecond = DefaultRatePerSecond
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = DefaultRateBurst
	}
}

// IsLocal reports whether the process runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
