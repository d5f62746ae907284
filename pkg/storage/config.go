package storage

import (
	"fmt"
	"os"
	"strconv"
)

// Supported storage providers.
const (
	ProviderAzure = "azure"
	ProviderS3    = "s3"
)

// Config holds object storage connection parameters.
//
// For Azure either ConnectionString (shared key signing) or AccountURL
// (Entra ID credential, user delegation signing) must be set. For S3 the
// container name is used as the bucket.
type Config struct {
	Provider         string   `toml:"provider"`
	ContainerName    string   `toml:"container_name"`
	ConnectionString string   `toml:"connection_string"`
	AccountURL       string   `toml:"account_url"`
	S3               S3Config `toml:"s3"`
}

// S3Config holds S3 (or S3-compatible) connection parameters.
// Static credentials are optional; the default AWS credential chain is used
// when AccessKeyID is empty.
type S3Config struct {
	Region          string `toml:"region"`
	Endpoint        string `toml:"endpoint"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	UsePathStyle    bool   `toml:"use_path_style"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Provider          string
	ContainerName     string
	ConnectionString  string
	AccountURL        string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3UsePathStyle    string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.AccountURL != "" {
		c.AccountURL = overlay.AccountURL
	}
	if overlay.S3.Region != "" {
		c.S3.Region = overlay.S3.Region
	}
	if overlay.S3.Endpoint != "" {
		c.S3.Endpoint = overlay.S3.Endpoint
	}
	if overlay.S3.AccessKeyID != "" {
		c.S3.AccessKeyID = overlay.S3.AccessKeyID
	}
	if overlay.S3.SecretAccessKey != "" {
		c.S3.SecretAccessKey = overlay.S3.SecretAccessKey
	}
	if overlay.S3.UsePathStyle {
		c.S3.UsePathStyle = true
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderAzure
	}
	if c.ContainerName == "" {
		c.ContainerName = "attachments"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(key string, dst *string) {
		if key == "" {
			return
		}
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(env.Provider, &c.Provider)
	set(env.ContainerName, &c.ContainerName)
	set(env.ConnectionString, &c.ConnectionString)
	set(env.AccountURL, &c.AccountURL)
	set(env.S3Region, &c.S3.Region)
	set(env.S3Endpoint, &c.S3.Endpoint)
	set(env.S3AccessKeyID, &c.S3.AccessKeyID)
	set(env.S3SecretAccessKey, &c.S3.SecretAccessKey)

	if env.S3UsePathStyle != "" {
		if v := os.Getenv(env.S3UsePathStyle); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.S3.UsePathStyle = b
			}
		}
	}
}

func (c *Config) validate() error {
	if c.ContainerName == "" {
		return fmt.Errorf("container_name required")
	}

	switch c.Provider {
	case ProviderAzure:
		if c.ConnectionString == "" && c.AccountURL == "" {
			return fmt.Errorf("connection_string or account_url required")
		}
	case ProviderS3:
		if c.S3.Region == "" {
			return fmt.Errorf("s3.region required")
		}
		if (c.S3.AccessKeyID == "") != (c.S3.SecretAccessKey == "") {
			return fmt.Errorf("s3.access_key_id and s3.secret_access_key must be set together")
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}

	return nil
}
