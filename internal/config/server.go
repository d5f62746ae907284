package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost              = "JOBTRACKER_SERVER_HOST"
	EnvServerPort              = "JOBTRACKER_SERVER_PORT"
	EnvServerReadTimeout       = "JOBTRACKER_SERVER_READ_TIMEOUT"
	EnvServerReadHeaderTimeout = "JOBTRACKER_SERVER_READ_HEADER_TIMEOUT"
	EnvServerWriteTimeout      = "JOBTRACKER_SERVER_WRITE_TIMEOUT"
	EnvServerIdleTimeout       = "JOBTRACKER_SERVER_IDLE_TIMEOUT"
	EnvServerShutdownTimeout   = "JOBTRACKER_SERVER_SHUTDOWN_TIMEOUT"
)

// ServerConfig holds HTTP listener parameters. Request bodies are small JSON
// documents; file bytes never pass through the server.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ReadTimeout       string `toml:"read_timeout"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
	WriteTimeout      string `toml:"write_timeout"`
	IdleTimeout       string `toml:"idle_timeout"`
	ShutdownTimeout   string `toml:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	return mustDuration(c.ReadTimeout)
}

func (c *ServerConfig) ReadHeaderTimeoutDuration() time.Duration {
	return mustDuration(c.ReadHeaderTimeout)
}

func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	return mustDuration(c.WriteTimeout)
}

func (c *ServerConfig) IdleTimeoutDuration() time.Duration {
	return mustDuration(c.IdleTimeout)
}

// ShutdownTimeoutDuration bounds how long in-flight requests may drain.
func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return mustDuration(c.ShutdownTimeout)
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	for _, f := range c.durations(overlay) {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
}

// durationField describes one duration setting: dst is the field on the
// receiver and src the same field on another config (an overlay when merging).
type durationField struct {
	name string
	env  string
	def  string
	dst  *string
	src  *string
}

func (c *ServerConfig) durations(other *ServerConfig) []durationField {
	return []durationField{
		{"read_timeout", EnvServerReadTimeout, "30s", &c.ReadTimeout, &other.ReadTimeout},
		{"read_header_timeout", EnvServerReadHeaderTimeout, "10s", &c.ReadHeaderTimeout, &other.ReadHeaderTimeout},
		{"write_timeout", EnvServerWriteTimeout, "30s", &c.WriteTimeout, &other.WriteTimeout},
		{"idle_timeout", EnvServerIdleTimeout, "2m", &c.IdleTimeout, &other.IdleTimeout},
		{"shutdown_timeout", EnvServerShutdownTimeout, "30s", &c.ShutdownTimeout, &other.ShutdownTimeout},
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	for _, f := range c.durations(c) {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	for _, f := range c.durations(c) {
		if v := os.Getenv(f.env); v != "" {
			*f.dst = v
		}
	}
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for _, f := range c.durations(c) {
		d, err := time.ParseDuration(*f.dst)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", f.name)
		}
	}
	return nil
}

// mustDuration parses a value already checked by validate.
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
