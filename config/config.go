package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime settings for the fixture server. Values come from
// FIXSERVE_* environment variables; command line flags override them.
type Config struct {
	Port      int    `envconfig:"PORT" default:"8080"`
	Directory string `envconfig:"DIR" default:"."`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"INFO"`

	// WatcherEnabled controls the fsnotify-based catalog refresh. The
	// serving path never depends on the catalog, so disabling the watcher
	// only affects the inventory endpoints.
	WatcherEnabled bool `envconfig:"WATCHER" default:"true"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("FIXSERVE", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveRoot turns the configured directory into an absolute serving root.
// The root is resolved once at startup and threaded into every handler; the
// process working directory is never changed.
func (c *Config) ResolveRoot() (string, error) {
	abs, err := filepath.Abs(c.Directory)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &os.PathError{Op: "serve", Path: abs, Err: os.ErrInvalid}
	}
	return abs, nil
}
