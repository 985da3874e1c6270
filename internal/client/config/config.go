// Package config holds settings for the blogkeeper operator CLI.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerURL: base URL of the blog API.
//   - Token: access token sent as a bearer token on protected calls.
//   - RequestTimeout: per request HTTP timeout.
type Config struct {
	ServerURL      string
	Token          string
	RequestTimeout time.Duration
}

// ValueFlags lists the flags that take a value; everything else on the
// command line is the command to run.
var ValueFlags = []string{"-a", "-token", "-w", "-c", "-config"}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3000"
	c.Token = ""
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}

func parseEnv(cfg *Config) {
	if v := os.Getenv("BLOG_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("BLOG_TOKEN"); v != "" {
		cfg.Token = v
	}
}
