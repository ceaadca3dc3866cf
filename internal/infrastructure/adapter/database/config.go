package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver string
	// URL is a full connection string (DATABASE_URL). When set it wins over
	// the discrete host/port/user fields.
	URL             string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string // database name, or file path / DSN for sqlite
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	SlowThreshold   time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
	MonitorInterval time.Duration
	// IsolationLevel is applied to every unit of work on postgres; empty keeps the server default
	IsolationLevel string
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.URL == "" {
			if c.Host == "" {
				return errors.New("database host is required")
			}
			if c.Port <= 0 || c.Port > 65535 {
				return fmt.Errorf("invalid port number: %d", c.Port)
			}
			if c.Username == "" {
				return errors.New("database username is required")
			}
			if c.Database == "" {
				return errors.New("database name is required")
			}
		}
		validSSLModes := map[string]bool{
			"":            true,
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	case DriverSQLite:
		if c.Database == "" {
			return errors.New("sqlite database path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout < 0 {
		return errors.New("query timeout must be non-negative")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	switch strings.ToUpper(strings.TrimSpace(c.IsolationLevel)) {
	case "", "READ UNCOMMITTED", "READ COMMITTED", "REPEATABLE READ", "SERIALIZABLE":
	default:
		return fmt.Errorf("invalid isolation level: %s", c.IsolationLevel)
	}

	return nil
}

// DSN returns the driver connection string
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Database
	}
	if c.URL != "" {
		return c.URL
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database,
	)
	if c.SSLMode != "" {
		dsn += " sslmode=" + c.SSLMode
	}
	return dsn
}

// Target describes where the connection points without leaking credentials
func (c *Config) Target() map[string]any {
	if c.Driver == DriverSQLite {
		return map[string]any{"driver": c.Driver, "path": c.Database}
	}
	if c.URL != "" {
		if u, err := url.Parse(c.URL); err == nil {
			return map[string]any{"driver": c.Driver, "host": u.Host, "name": u.Path}
		}
		return map[string]any{"driver": c.Driver}
	}
	return map[string]any{"driver": c.Driver, "host": c.Host, "port": c.Port, "name": c.Database}
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}
