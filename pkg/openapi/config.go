package openapi

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the document metadata and the path it is served at,
// relative to the module that serves it.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Path        string `toml:"path"`
}

// ConfigEnv maps config fields to environment variable names for override injection.
type ConfigEnv struct {
	Title       string
	Description string
	Path        string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	for _, f := range c.fields(overlay, nil) {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
}

// Pattern returns the ServeMux pattern for the document.
func (c *Config) Pattern() string {
	return "GET " + c.Path
}

type field struct {
	dst *string
	src *string
	env string
	def string
}

func (c *Config) fields(other *Config, env *ConfigEnv) []field {
	if other == nil {
		other = c
	}
	if env == nil {
		env = &ConfigEnv{}
	}
	return []field{
		{&c.Title, &other.Title, env.Title, "JobTracker API"},
		{&c.Description, &other.Description, env.Description, "Track job applications, interviews, status history and attachments."},
		{&c.Path, &other.Path, env.Path, "/openapi.json"},
	}
}

func (c *Config) loadDefaults() {
	for _, f := range c.fields(nil, nil) {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	for _, f := range c.fields(nil, env) {
		if f.env == "" {
			continue
		}
		if v := os.Getenv(f.env); v != "" {
			*f.dst = v
		}
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("openapi path must start with /: %s", c.Path)
	}
	return nil
}
