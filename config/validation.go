package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a Config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks cfg and reports all problems at once.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		add("SERVER_PORT", "must be a port number, got %q", cfg.ServerPort)
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "is required when DB_DRIVER is sqlite")
		}
	case DriverPostgres:
		if cfg.DatabaseURI == "" {
			if cfg.DBHost == "" {
				add("DB_HOST", "is required")
			}
			if cfg.DBName == "" {
				add("DB_NAME", "is required")
			}
			if cfg.DBUser == "" {
				add("DB_USER", "is required")
			}
			if cfg.Env == Production && cfg.DBPassword == "" {
				add("DB_PASSWORD", "db_password secret is required in production")
			}
		}
	default:
		add("DB_DRIVER", "must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.DBDriver)
	}

	if cfg.RateLimitPerMinute < 0 {
		add("RATE_LIMIT_PER_MINUTE", "must not be negative")
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		add("LOG_FORMAT", "must be json or console, got %q", cfg.LogFormat)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
