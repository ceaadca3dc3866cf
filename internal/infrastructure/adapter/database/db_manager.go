package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/repository"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultPingTimeout = 5 * time.Second

var errNotConnected = errors.New("database is not connected")

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	queryObserver     QueryObserver
	poolObserver      PoolStatsObserver
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// WithObservers attaches query and pool observers, typically metrics.
// Must be called before Connect.
func (m *Manager) WithObservers(queries QueryObserver, pool PoolStatsObserver) *Manager {
	m.queryObserver = queries
	m.poolObserver = pool
	return m
}

// Connect opens the database, retrying the initial connection per config
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", m.config.Target())

	attempts := max(m.config.RetryAttempts, 1)

	var err error
	var gormDB *gorm.DB
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			if sleepErr := m.timeProvider.Sleep(ctx, m.config.RetryDelay); sleepErr != nil {
				return nil, fmt.Errorf("database connection aborted: %w", sleepErr)
			}
		}

		gormDB, err = m.open(ctx)
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	if m.config.MonitorInterval > 0 {
		sqlDB, dbErr := gormDB.DB()
		if dbErr == nil {
			m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger, m.poolObserver)
			if startErr := m.connectionMonitor.Start(m.config.MonitorInterval); startErr != nil {
				m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": startErr.Error()})
				m.connectionMonitor = nil
			}
		}
	}

	return m.db, nil
}

func (m *Manager) open(ctx context.Context) (*gorm.DB, error) {
	dbLogger := NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold).
		WithObserver(m.queryObserver)

	gormConfig := &gorm.Config{
		Logger:         dbLogger,
		NowFunc:        m.timeProvider.Now,
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch m.config.Driver {
	case DriverPostgres:
		dialector = postgres.Open(m.config.DSN())
		gormConfig.PrepareStmt = true
	case DriverSQLite:
		dialector = sqlite.Open(m.config.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	pingCtx, cancel := m.timeProvider.WithTimeout(ctx, m.pingTimeout())
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if m.config.Driver == DriverSQLite {
		if err := gormDB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return gormDB, nil
}

func (m *Manager) pingTimeout() time.Duration {
	if m.config.QueryTimeout > 0 {
		return m.config.QueryTimeout
	}
	return defaultPingTimeout
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return errNotConnected
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// Close stops monitoring and closes the connection pool
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// PoolMetrics returns the latest connection pool sample
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	isolation := ""
	if m.config.Driver == DriverPostgres {
		isolation = m.config.IsolationLevel
	}
	return NewUnitOfWork(m.db, m.logger, m.timeProvider, m.config.QueryTimeout, isolation)
}

// UserRepository returns a user repository bound to the pool
func (m *Manager) UserRepository() persistence.UserRepository {
	return repository.NewUserRepository(m.db, m.timeProvider, m.logger, m.config.QueryTimeout)
}

// SaveRepository returns a save repository bound to the pool
func (m *Manager) SaveRepository() persistence.SaveRepository {
	return repository.NewSaveRepository(m.db, m.timeProvider, m.logger, m.config.QueryTimeout)
}

// LeaderboardRepository returns a leaderboard repository bound to the pool
func (m *Manager) LeaderboardRepository() persistence.LeaderboardRepository {
	return repository.NewLeaderboardRepository(m.db, m.timeProvider, m.logger, m.config.QueryTimeout)
}

// StatusRepository returns a status repository bound to the pool
func (m *Manager) StatusRepository() persistence.StatusRepository {
	return repository.NewStatusRepository(m.db, m.timeProvider, m.logger, m.config.QueryTimeout)
}
