package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestDBManager provides an isolated, migrated database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestSQLiteConfig returns a config for a private in-memory sqlite database
func NewTestSQLiteConfig() *Config {
	return &Config{
		Driver: DriverSQLite,
		// Named shared-cache memory DB so every pooled connection sees the same data
		Database:      fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString()),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}
}

// NewTestDBManager connects to a fresh in-memory database and migrates it.
// The connection is closed when the test ends.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	return NewTestDBManagerWithConfig(t, logger, NewTestSQLiteConfig())
}

// NewTestDBManagerWithConfig is NewTestDBManager for an explicit config,
// used by the postgres integration tests
func NewTestDBManagerWithConfig(t *testing.T, logger coreport.Logger, config *Config) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()
	manager := NewManager(config, logger, timeProvider)

	ctx := context.Background()
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the underlying GORM handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// TruncateAllTables removes every row so a test starts from an empty store
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	for _, table := range []any{&model.LeaderboardEntry{}, &model.GameSave{}, &model.User{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			t.Fatalf("Failed to truncate tables: %v", err)
		}
	}
}
