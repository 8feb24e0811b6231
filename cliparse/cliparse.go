package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultPort              = 3000
	DefaultDatabaseType      = "sqlite"
	DefaultDatabaseURL       = "file:scylla.db"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultAllowedOrigin     = "*"
	DefaultReadHeaderTimeout = 10 * time.Second
)

var (
	ErrInvalidPort         = errors.New("invalid port: must be between 1 and 65535")
	ErrInvalidDatabaseType = errors.New("invalid database type: must be sqlite or postgres")
	ErrInvalidLogLevel     = errors.New("invalid log level: must be debug, info, warn or error")
	ErrInvalidLogFormat    = errors.New("invalid log format: must be text or json")
	ErrConfigNotFound      = errors.New("configuration file not found")
)

type Config struct {
	Port              int           `yaml:"port"`
	DatabaseType      string        `yaml:"database_type"`
	DatabaseURL       string        `yaml:"database_url"`
	LogLevel          string        `yaml:"log_level"`
	LogFormat         string        `yaml:"log_format"`
	AllowedOrigin     string        `yaml:"allowed_origin"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

// Default returns the configuration used when nothing else is set
func Default() Config {
	return Config{
		Port:              DefaultPort,
		DatabaseType:      DefaultDatabaseType,
		DatabaseURL:       DefaultDatabaseURL,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
		AllowedOrigin:     DefaultAllowedOrigin,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}
}

// ParseFlags builds the configuration.
// Precedence: flags > environment (.env included) > config file > defaults.
func ParseFlags(args []string) (Config, error) {
	var (
		flags      Config
		configPath string
		envFile    string
	)

	set := flag.NewFlagSet("scylla", flag.ContinueOnError)
	set.IntVar(&flags.Port, "p", 0, "Server port")
	set.StringVar(&flags.DatabaseURL, "d", "", "Database URL")
	set.StringVar(&flags.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	set.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	set.StringVar(&flags.LogFormat, "log-format", "", "Log format (text or json)")
	set.StringVar(&flags.AllowedOrigin, "origin", "", "Allowed CORS origin")
	set.StringVar(&configPath, "c", "", "Path to a YAML config file")
	set.StringVar(&envFile, "env-file", ".env", "Path to a .env file")

	if err := set.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables that are already set
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := Default()

	if configPath == "" {
		configPath = os.Getenv("SCYLLA_CONFIG")
	}
	if configPath != "" {
		fileCfg, err := LoadFile(configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(cfg, fileCfg)
	}

	envCfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg = merge(cfg, envCfg)
	cfg = merge(cfg, flags)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func fromEnv() (Config, error) {
	var cfg Config
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, errors.New("invalid PORT env variable")
		}
		cfg.Port = port
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.LogFormat = os.Getenv("LOG_FORMAT")
	cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	if v := os.Getenv("READ_HEADER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid READ_HEADER_TIMEOUT env variable: %w", err)
		}
		cfg.ReadHeaderTimeout = d
	}
	return cfg, nil
}

// merge overlays the non-zero fields of over onto dst
func merge(dst, over Config) Config {
	if over.Port != 0 {
		dst.Port = over.Port
	}
	if over.DatabaseType != "" {
		dst.DatabaseType = over.DatabaseType
	}
	if over.DatabaseURL != "" {
		dst.DatabaseURL = over.DatabaseURL
	}
	if over.LogLevel != "" {
		dst.LogLevel = over.LogLevel
	}
	if over.LogFormat != "" {
		dst.LogFormat = over.LogFormat
	}
	if over.AllowedOrigin != "" {
		dst.AllowedOrigin = over.AllowedOrigin
	}
	if over.ReadHeaderTimeout != 0 {
		dst.ReadHeaderTimeout = over.ReadHeaderTimeout
	}
	return dst
}

// Validate checks the configuration values
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if c.DatabaseType != "sqlite" && c.DatabaseType != "postgres" {
		return ErrInvalidDatabaseType
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return ErrInvalidLogFormat
	}
	return nil
}

// SlogLevel converts LogLevel into a slog.Level
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, ErrInvalidLogLevel
}

// Logger builds the process logger described by the configuration
func (c Config) Logger() *slog.Logger {
	level, _ := c.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
