package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// leaderboardRankIndex serves the ranking query's ORDER BY
const leaderboardRankIndex = "CREATE INDEX IF NOT EXISTS idx_leaderboard_total_loc ON leaderboard (total_loc DESC, user_id)"

// MigrationManager bootstraps the schema. Every step is idempotent, so it
// runs on each startup.
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll creates missing tables and indexes and stamps the schema version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(
		&model.User{},
		&model.GameSave{},
		&model.LeaderboardEntry{},
		&model.SchemaVersion{},
	); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("auto-migrate: %w", err)
	}

	if err := db.Exec(leaderboardRankIndex).Error; err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("create indexes: %w", err)
	}

	previous, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if previous != CurrentSchemaVersion {
		m.logger.Info("Recording schema version", map[string]any{
			"from_version": previous,
			"to_version":   CurrentSchemaVersion,
		})
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "initial schema"); err != nil {
		m.logger.Error("Failed to record schema version", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("record schema version: %w", err)
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied schema version, or ""
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.SchemaVersion
	err := m.db.WithContext(ctx).Order("applied_at DESC, id DESC").Take(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

// setVersion records a schema version once
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	schemaVersion := model.SchemaVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "version"}},
		DoNothing: true,
	}).Create(&schemaVersion).Error
}
