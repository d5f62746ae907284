package config

import (
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/jobtracker/pkg/formatting"
	"github.com/JaimeStill/jobtracker/pkg/middleware"
	"github.com/JaimeStill/jobtracker/pkg/openapi"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
)

const (
	EnvAPIBasePath          = "JOBTRACKER_API_BASE_PATH"
	EnvAPIMaxAttachmentSize = "JOBTRACKER_API_MAX_ATTACHMENT_SIZE"
	EnvAPIUploadURLExpiry   = "JOBTRACKER_API_UPLOAD_URL_EXPIRY"
	EnvAPIDownloadURLExpiry = "JOBTRACKER_API_DOWNLOAD_URL_EXPIRY"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "JOBTRACKER_CORS_ENABLED",
	Origins:          "JOBTRACKER_CORS_ORIGINS",
	AllowedMethods:   "JOBTRACKER_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "JOBTRACKER_CORS_ALLOWED_HEADERS",
	AllowCredentials: "JOBTRACKER_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "JOBTRACKER_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "JOBTRACKER_OPENAPI_TITLE",
	Description: "JOBTRACKER_OPENAPI_DESCRIPTION",
	Path:        "JOBTRACKER_OPENAPI_PATH",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "JOBTRACKER_PAGINATION_DEFAULT_PAGE_SIZE",
	ChildPageSize:   "JOBTRACKER_PAGINATION_CHILD_PAGE_SIZE",
	MaxPageSize:     "JOBTRACKER_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, attachment limits, CORS, pagination and
// OpenAPI document settings.
type APIConfig struct {
	BasePath          string                `toml:"base_path"`
	MaxAttachmentSize string                `toml:"max_attachment_size"`
	UploadURLExpiry   string                `toml:"upload_url_expiry"`
	DownloadURLExpiry string                `toml:"download_url_expiry"`
	CORS              middleware.CORSConfig `toml:"cors"`
	Pagination        pagination.Config     `toml:"pagination"`
	OpenAPI           openapi.Config        `toml:"openapi"`
}

// MaxAttachmentSizeBytes returns MaxAttachmentSize in bytes.
func (c *APIConfig) MaxAttachmentSizeBytes() int64 {
	size, _ := formatting.ParseBytes(c.MaxAttachmentSize)
	return size
}

// UploadURLExpiryDuration returns UploadURLExpiry as a time.Duration.
func (c *APIConfig) UploadURLExpiryDuration() time.Duration {
	d, _ := time.ParseDuration(c.UploadURLExpiry)
	return d
}

// DownloadURLExpiryDuration returns DownloadURLExpiry as a time.Duration.
func (c *APIConfig) DownloadURLExpiryDuration() time.Duration {
	d, _ := time.ParseDuration(c.DownloadURLExpiry)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxAttachmentSize != "" {
		c.MaxAttachmentSize = overlay.MaxAttachmentSize
	}
	if overlay.UploadURLExpiry != "" {
		c.UploadURLExpiry = overlay.UploadURLExpiry
	}
	if overlay.DownloadURLExpiry != "" {
		c.DownloadURLExpiry = overlay.DownloadURLExpiry
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxAttachmentSize == "" {
		c.MaxAttachmentSize = "25MB"
	}
	if c.UploadURLExpiry == "" {
		c.UploadURLExpiry = "15m"
	}
	if c.DownloadURLExpiry == "" {
		c.DownloadURLExpiry = "1h"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxAttachmentSize); v != "" {
		c.MaxAttachmentSize = v
	}
	if v := os.Getenv(EnvAPIUploadURLExpiry); v != "" {
		c.UploadURLExpiry = v
	}
	if v := os.Getenv(EnvAPIDownloadURLExpiry); v != "" {
		c.DownloadURLExpiry = v
	}
}

func (c *APIConfig) validate() error {
	size, err := formatting.ParseBytes(c.MaxAttachmentSize)
	if err != nil {
		return fmt.Errorf("invalid max_attachment_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_attachment_size must be positive")
	}
	for name, v := range map[string]string{
		"upload_url_expiry":   c.UploadURLExpiry,
		"download_url_expiry": c.DownloadURLExpiry,
	} {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}
