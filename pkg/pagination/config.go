// Package pagination provides continuation-token paging primitives.
package pagination

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds page size settings.
// DefaultPageSize applies to top-level collections (applications) and
// ChildPageSize to collections scoped by a parent application.
type Config struct {
	DefaultPageSize int `toml:"default_page_size" json:"default_page_size"`
	ChildPageSize   int `toml:"child_page_size" json:"child_page_size"`
	MaxPageSize     int `toml:"max_page_size" json:"max_page_size"`
}

// ConfigEnv maps environment variable names for pagination configuration.
type ConfigEnv struct {
	DefaultPageSize string
	ChildPageSize   string
	MaxPageSize     string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.ChildPageSize != 0 {
		c.ChildPageSize = overlay.ChildPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}

func (c *Config) loadDefaults() {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 20
	}
	if c.ChildPageSize <= 0 {
		c.ChildPageSize = 50
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = 100
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	envInt(env.DefaultPageSize, &c.DefaultPageSize)
	envInt(env.ChildPageSize, &c.ChildPageSize)
	envInt(env.MaxPageSize, &c.MaxPageSize)
}

func envInt(key string, dst *int) {
	if key == "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func (c *Config) validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be positive")
	}
	if c.ChildPageSize < 1 {
		return fmt.Errorf("child_page_size must be positive")
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("max_page_size must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize || c.ChildPageSize > c.MaxPageSize {
		return fmt.Errorf("page sizes cannot exceed max_page_size")
	}
	return nil
}
