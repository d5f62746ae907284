package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Minimum signing secret length in bytes for HS256.
const minSecretLength = 32

// Config holds credential issuance and validation settings.
type Config struct {
	SigningSecret string         `toml:"signing_secret"`
	Issuer        string         `toml:"issuer"`
	Audience      string         `toml:"audience"`
	TokenLifetime string         `toml:"token_lifetime"`
	BcryptCost    int            `toml:"bcrypt_cost"`
	External      ExternalConfig `toml:"external"`
}

// ExternalConfig enables validation of tokens minted by an OpenID Connect
// provider. Disabled when IssuerURL is empty.
type ExternalConfig struct {
	IssuerURL string `toml:"issuer_url"`
	ClientID  string `toml:"client_id"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	SigningSecret     string
	Issuer            string
	Audience          string
	TokenLifetime     string
	BcryptCost        string
	ExternalIssuerURL string
	ExternalClientID  string
}

// TokenLifetimeDuration returns TokenLifetime as a time.Duration.
func (c *Config) TokenLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenLifetime)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
// A missing signing secret is an error: the service must not start without one.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.SigningSecret != "" {
		c.SigningSecret = overlay.SigningSecret
	}
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
	if overlay.Audience != "" {
		c.Audience = overlay.Audience
	}
	if overlay.TokenLifetime != "" {
		c.TokenLifetime = overlay.TokenLifetime
	}
	if overlay.BcryptCost != 0 {
		c.BcryptCost = overlay.BcryptCost
	}
	if overlay.External.IssuerURL != "" {
		c.External.IssuerURL = overlay.External.IssuerURL
	}
	if overlay.External.ClientID != "" {
		c.External.ClientID = overlay.External.ClientID
	}
}

func (c *Config) loadDefaults() {
	if c.Issuer == "" {
		c.Issuer = "jobtracker"
	}
	if c.Audience == "" {
		c.Audience = "jobtracker-api"
	}
	if c.TokenLifetime == "" {
		c.TokenLifetime = "24h"
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
}

func (c *Config) loadEnv(env *Env) {
	envString(env.SigningSecret, &c.SigningSecret)
	envString(env.Issuer, &c.Issuer)
	envString(env.Audience, &c.Audience)
	envString(env.TokenLifetime, &c.TokenLifetime)
	envString(env.ExternalIssuerURL, &c.External.IssuerURL)
	envString(env.ExternalClientID, &c.External.ClientID)

	if env.BcryptCost != "" {
		if v := os.Getenv(env.BcryptCost); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.BcryptCost = n
			}
		}
	}
}

func envString(key string, dst *string) {
	if key == "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) validate() error {
	if c.SigningSecret == "" {
		return ErrMissingSecret
	}
	if len(c.SigningSecret) < minSecretLength {
		return fmt.Errorf("signing_secret must be at least %d bytes", minSecretLength)
	}
	d, err := time.ParseDuration(c.TokenLifetime)
	if err != nil {
		return fmt.Errorf("invalid token_lifetime: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("token_lifetime must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.External.IssuerURL != "" && c.External.ClientID == "" {
		return fmt.Errorf("external.client_id required when external.issuer_url is set")
	}
	return nil
}
