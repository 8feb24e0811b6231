// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "scylla"
	DefaultServer  = "http://localhost:3000"
	DefaultTimeout = 30 * time.Second

	// EnvServer overrides the server from the config file
	EnvServer = "SCYLLA_SERVER"
)

var (
	ErrInvalidServer  = errors.New("invalid server: must be an absolute http(s) URL")
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")
)

// Config holds the dashboard client settings.
type Config struct {
	Server  string        `yaml:"server"`
	Timeout time.Duration `yaml:"timeout"`
}

func DefaultConfig() Config {
	return Config{Server: DefaultServer, Timeout: DefaultTimeout}
}

// ConfigDir returns the XDG config directory, e.g. ~/.config/scylla on Linux.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigPath returns the default location of client.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "client.yaml")
}

// LoadConfig reads path over the defaults and applies SCYLLA_SERVER.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read client config: %w", err)
	default:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if file.Server != "" {
			cfg.Server = file.Server
		}
		if file.Timeout != 0 {
			cfg.Timeout = file.Timeout
		}
	}

	if server := os.Getenv(EnvServer); server != "" {
		cfg.Server = server
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode client config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func (c Config) Validate() error {
	u, err := url.Parse(c.Server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidServer
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
