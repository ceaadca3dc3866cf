package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv blanks every variable the loader reads. Viper ignores empty values.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CC_ENV", "")
	for key, alias := range envAliases {
		t.Setenv(alias, "")
		t.Setenv("CC_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), "")
	}
	t.Setenv("CC_DATABASE_DRIVER", "")
	t.Setenv("CC_CORS_ALLOWEDORIGINS", "")
	t.Setenv("CC_LOGGER_LEVEL", "")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsWithoutFiles(t *testing.T) {
	isolateEnv(t)
	t.Setenv("JWT_SECRET", "a-sufficiently-long-secret")

	cfg, err := Load([]string{t.TempDir()}, nil)
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Empty(t, cfg.ConfigFile)
	assert.Empty(t, cfg.DotEnvFile)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{
		"https://ericliucs.github.io",
		"http://localhost:3000",
		"http://localhost:3001",
	}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "a-sufficiently-long-secret", cfg.Auth.JWTSecret)
}

func TestLoad_EnvironmentFileAndOverrides(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "test.yaml", `
server:
  port: 4000
database:
  driver: sqlite
  database: game.db
  queryTimeout: 3s
auth:
  jwtSecret: file-secret-0123456789
cors:
  allowedOrigins: [https://example.com]
`)
	t.Setenv("CC_ENV", "TEST")
	t.Setenv("PORT", "5000")
	t.Setenv("CC_CORS_ALLOWEDORIGINS", "https://a.example, https://b.example")

	cfg, err := Load([]string{dir}, nil)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, filepath.Join(dir, "test.yaml"), cfg.ConfigFile)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "file-secret-0123456789", cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PrefixedVariableWinsOverAlias(t *testing.T) {
	isolateEnv(t)
	t.Setenv("DB_HOST", "alias-host")
	t.Setenv("CC_DATABASE_HOST", "prefixed-host")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load([]string{t.TempDir()}, nil)
	require.NoError(t, err)

	assert.Equal(t, "prefixed-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolateEnv(t)
	// godotenv never overrides a variable that is already present
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	t.Cleanup(func() { _ = os.Unsetenv("JWT_SECRET") })

	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "JWT_SECRET=dotenv-secret-0123456789\n")

	cfg, err := Load([]string{dir}, []string{filepath.Join(dir, "missing.env"), path})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.DotEnvFile)
	assert.Equal(t, "dotenv-secret-0123456789", cfg.Auth.JWTSecret)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "development.yaml", "server: [unclosed\n")

	_, err := Load([]string{dir}, nil)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: Development,
			Server:      ServerConfig{Port: 3001, ShutdownTimeout: time.Second},
			Database: DatabaseConfig{
				Driver:       "sqlite",
				Database:     "game.db",
				MaxOpenConns: 1,
				LogLevel:     "warn",
			},
			Logger: LoggerConfig{Level: "info"},
			Auth:   AuthConfig{JWTSecret: "0123456789abcdef", TokenTTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }, true},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, true},
		{"no token ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"no shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, true},
		{"production on sqlite", func(c *Config) { c.Environment = Production }, true},
		{"empty origin", func(c *Config) { c.CORS.AllowedOrigins = []string{" "} }, true},
		{"invalid database section", func(c *Config) { c.Database.MaxOpenConns = 0 }, true},
		{"production on postgres url", func(c *Config) {
			c.Environment = Production
			c.Database.URL = "postgres://u:p@db:5432/app"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_DatabaseConfigURLImpliesPostgres(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "sqlite", URL: "postgres://db/app", LogLevel: "WARN"}}

	dbConfig := cfg.ToDatabaseConfig()

	assert.Equal(t, database.DriverPostgres, dbConfig.Driver)
	assert.Equal(t, "warn", dbConfig.LogLevel)
}

func TestConfig_Address(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "0.0.0.0", Port: 3001}}
	assert.Equal(t, "0.0.0.0:3001", cfg.Address())
}
