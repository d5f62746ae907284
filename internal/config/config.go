package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/database"
	"github.com/JaimeStill/jobtracker/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvJobTrackerEnv             = "JOBTRACKER_ENV"
	EnvJobTrackerShutdownTimeout = "JOBTRACKER_SHUTDOWN_TIMEOUT"
	EnvJobTrackerVersion         = "JOBTRACKER_VERSION"
	EnvJobTrackerLogLevel        = "JOBTRACKER_LOG_LEVEL"
)

var databaseEnv = &database.Env{
	URL:             "JOBTRACKER_DB_URL",
	Host:            "JOBTRACKER_DB_HOST",
	Port:            "JOBTRACKER_DB_PORT",
	Name:            "JOBTRACKER_DB_NAME",
	User:            "JOBTRACKER_DB_USER",
	Password:        "JOBTRACKER_DB_PASSWORD",
	SSLMode:         "JOBTRACKER_DB_SSL_MODE",
	MaxOpenConns:    "JOBTRACKER_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "JOBTRACKER_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "JOBTRACKER_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "JOBTRACKER_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	Provider:          "JOBTRACKER_STORAGE_PROVIDER",
	ContainerName:     "JOBTRACKER_STORAGE_CONTAINER_NAME",
	ConnectionString:  "JOBTRACKER_STORAGE_CONNECTION_STRING",
	AccountURL:        "JOBTRACKER_STORAGE_ACCOUNT_URL",
	S3Region:          "JOBTRACKER_STORAGE_S3_REGION",
	S3Endpoint:        "JOBTRACKER_STORAGE_S3_ENDPOINT",
	S3AccessKeyID:     "JOBTRACKER_STORAGE_S3_ACCESS_KEY_ID",
	S3SecretAccessKey: "JOBTRACKER_STORAGE_S3_SECRET_ACCESS_KEY",
	S3UsePathStyle:    "JOBTRACKER_STORAGE_S3_USE_PATH_STYLE",
}

var authEnv = &auth.Env{
	SigningSecret:     "JOBTRACKER_AUTH_SIGNING_SECRET",
	Issuer:            "JOBTRACKER_AUTH_ISSUER",
	Audience:          "JOBTRACKER_AUTH_AUDIENCE",
	TokenLifetime:     "JOBTRACKER_AUTH_TOKEN_LIFETIME",
	BcryptCost:        "JOBTRACKER_AUTH_BCRYPT_COST",
	ExternalIssuerURL: "JOBTRACKER_AUTH_EXTERNAL_ISSUER_URL",
	ExternalClientID:  "JOBTRACKER_AUTH_EXTERNAL_CLIENT_ID",
}

// Config is the root configuration for the jobtracker service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	API             APIConfig       `toml:"api"`
	Auth            auth.Config     `toml:"auth"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
	LogLevel        string          `toml:"log_level"`
}

// Env returns the JOBTRACKER_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvJobTrackerEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	var level slog.Level
	level.UnmarshalText([]byte(c.LogLevel))
	return level
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Auth.Merge(&overlay.Auth)
}

// Finalize applies defaults, environment overrides and validation to every
// section. A missing signing secret fails here so the server never starts
// without one.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvJobTrackerShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvJobTrackerVersion); v != "" {
		c.Version = v
	}
	if v := os.Getenv(EnvJobTrackerLogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvJobTrackerEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
