package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix namespaces every environment override, e.g. CC_SERVER_PORT
const EnvPrefix = "CC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envAliases are the bare variable names deployments already use. They are
// consulted after the prefixed name.
var envAliases = map[string]string{
	"server.port":       "PORT",
	"database.url":      "DATABASE_URL",
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.username": "DB_USER",
	"database.password": "DB_PASSWORD",
	"database.database": "DB_NAME",
	"auth.jwtSecret":    "JWT_SECRET",
}

// LoadConfig loads configuration for the environment named by CC_ENV
func LoadConfig() (*Config, error) {
	return Load(ConfigPaths, DotEnvPaths)
}

// Load reads the first .env file found in dotEnvPaths, then the optional
// <env>.yaml from configPaths, then environment overrides
func Load(configPaths, dotEnvPaths []string) (*Config, error) {
	dotEnvFile, err := loadDotEnvFile(dotEnvPaths)
	if err != nil {
		return nil, err
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvAliases(v); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	config.ConfigFile = v.ConfigFileUsed()
	config.DotEnvFile = dotEnvFile
	config.CORS.AllowedOrigins = trimAll(config.CORS.AllowedOrigins)

	return &config, nil
}

// loadDotEnvFile loads the first .env file that exists. A missing file is
// not an error; a malformed one is.
func loadDotEnvFile(paths []string) (string, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("could not load %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

func bindEnvAliases(v *viper.Viper) error {
	for key, alias := range envAliases {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, alias); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")
	v.SetDefault("server.staticDir", "public")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "")
	v.SetDefault("database.maxOpenConns", 20)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "15m")
	v.SetDefault("database.queryTimeout", "5s")
	v.SetDefault("database.slowThreshold", "200ms")
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", "2s")
	v.SetDefault("database.monitorInterval", "30s")
	v.SetDefault("database.isolationLevel", "")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.maxSizeMB", 100)
	v.SetDefault("logger.maxBackups", 5)
	v.SetDefault("logger.maxAgeDays", 28)
	v.SetDefault("logger.compress", true)

	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.tokenTTL", "720h")
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("cors.allowedOrigins", []string{
		"https://ericliucs.github.io",
		"http://localhost:3000",
		"http://localhost:3001",
	})

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("seed.demoPlayers", false)
}

// getEnvironment determines the environment from CC_ENV, defaulting to development
func getEnvironment() string {
	env := strings.ToLower(strings.TrimSpace(os.Getenv(EnvPrefix + "_ENV")))
	if env == "" {
		return Development
	}
	return env
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
