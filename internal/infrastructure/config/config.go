package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/logger"
)

// minSecretLength matches what the token service accepts
const minSecretLength = 16

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	CORS        CORSConfig     `mapstructure:"cors"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
	Seed        SeedConfig     `mapstructure:"seed"`

	// Sources that were actually read, for the startup log
	ConfigFile string `mapstructure:"-"`
	DotEnvFile string `mapstructure:"-"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
	// StaticDir holds the front-end assets served for unmatched GETs; empty disables them
	StaticDir string `mapstructure:"staticDir"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	URL             string        `mapstructure:"url"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
	MonitorInterval time.Duration `mapstructure:"monitorInterval"`
	IsolationLevel  string        `mapstructure:"isolationLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
	Compress   bool   `mapstructure:"compress"`
}

// AuthConfig contains token and password hashing settings
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwtSecret"`
	TokenTTL   time.Duration `mapstructure:"tokenTTL"`
	BcryptCost int           `mapstructure:"bcryptCost"`
}

// CORSConfig lists the browser origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// MetricsConfig toggles the /metrics endpoint
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SeedConfig controls startup fixtures
type SeedConfig struct {
	DemoPlayers bool `mapstructure:"demoPlayers"`
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate ensures all required configuration values are present and sane
func (c *Config) Validate() error {
	var missing []string

	switch c.Environment {
	case Development, Production, Test:
	case "":
		missing = append(missing, "environment")
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if c.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret (or JWT_SECRET environment variable)")
	}
	if c.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	if len(c.Auth.JWTSecret) < minSecretLength {
		return fmt.Errorf("auth.jwtSecret must be at least %d characters", minSecretLength)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTTL must be positive")
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return errors.New("cors.allowedOrigins must not contain empty entries")
		}
	}

	dbConfig := c.ToDatabaseConfig()
	if c.IsProduction() && dbConfig.Driver != database.DriverPostgres {
		return fmt.Errorf("production requires the %s driver, got: %s", database.DriverPostgres, dbConfig.Driver)
	}
	if err := dbConfig.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// ToDatabaseConfig maps the database section onto the adapter configuration.
// A connection URL always means postgres.
func (c *Config) ToDatabaseConfig() *database.Config {
	driver := strings.ToLower(c.Database.Driver)
	if c.Database.URL != "" {
		driver = database.DriverPostgres
	}

	return &database.Config{
		Driver:          driver,
		URL:             c.Database.URL,
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		Username:        c.Database.Username,
		Password:        c.Database.Password,
		Database:        c.Database.Database,
		SSLMode:         c.Database.SSLMode,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
		QueryTimeout:    c.Database.QueryTimeout,
		SlowThreshold:   c.Database.SlowThreshold,
		LogLevel:        strings.ToLower(c.Database.LogLevel),
		RetryAttempts:   c.Database.RetryAttempts,
		RetryDelay:      c.Database.RetryDelay,
		MonitorInterval: c.Database.MonitorInterval,
		IsolationLevel:  c.Database.IsolationLevel,
	}
}

// ToLoggerConfig maps the logger section onto the zap adapter configuration
func (c *Config) ToLoggerConfig() logger.Config {
	return logger.Config{
		Level:      c.Logger.Level,
		Format:     c.Logger.Format,
		Output:     c.Logger.Output,
		MaxSizeMB:  c.Logger.MaxSizeMB,
		MaxBackups: c.Logger.MaxBackups,
		MaxAgeDays: c.Logger.MaxAgeDays,
		Compress:   c.Logger.Compress,
	}
}

// Address is the listen address of the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
