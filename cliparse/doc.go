// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default: file:scylla.db)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: text or json (default: text)
  - AllowedOrigin: CORS origin, "*" reflects the caller (default: *)
  - ReadHeaderTimeout: server read header timeout (default: 10s)

# Sources

Values are resolved in this order, first match wins:

 1. CLI flags: -p, -d, -t, -log-level, -log-format, -origin
 2. Environment: PORT, DATABASE_URL, DATABASE_TYPE, LOG_LEVEL, LOG_FORMAT,
    ALLOWED_ORIGIN, READ_HEADER_TIMEOUT. A .env file (-env-file, default
    ".env") is loaded first and never overrides variables already set.
 3. YAML file given by -c or SCYLLA_CONFIG:

	port: 8080
	database_type: postgres
	database_url: postgres://scylla@localhost/scylla?sslmode=disable
	read_header_timeout: 5s

 4. Defaults.

# Validation

ParseFlags returns one of ErrInvalidPort, ErrInvalidDatabaseType,
ErrInvalidLogLevel, ErrInvalidLogFormat or ErrConfigNotFound when the
resolved configuration cannot be used.
*/
package cliparse
