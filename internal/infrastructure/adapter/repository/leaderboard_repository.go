package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaderboardRepository implements LeaderboardRepository interface using GORM
type LeaderboardRepository struct {
	baseRepository
}

var _ persistence.LeaderboardRepository = (*LeaderboardRepository)(nil)

// NewLeaderboardRepository creates a new LeaderboardRepository instance
func NewLeaderboardRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) *LeaderboardRepository {
	return &LeaderboardRepository{
		baseRepository: newBaseRepository(db, timeProvider, logger, queryTimeout),
	}
}

// Upsert replaces the user's ranking row
func (r *LeaderboardRepository) Upsert(ctx context.Context, entry *entity.LeaderboardEntry) error {
	db, cancel := r.session(ctx)
	defer cancel()

	entryModel := model.LeaderboardEntry{
		UserID:       entry.UserID,
		TotalLoc:     entry.TotalLoc,
		LocPerSecond: entry.LocPerSecond,
		LastUpdated:  entry.LastUpdated,
	}
	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_loc", "loc_per_second", "last_updated"}),
	}).Create(&entryModel).Error
	if err != nil {
		return r.handleDatabaseError("upsert leaderboard", entry.UserID, err, errs.ErrUserNotFound)
	}
	return nil
}

// Top returns the best players, highest total LoC first
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rows []model.RankedEntry
	err := db.Table("leaderboard AS l").
		Select("l.user_id, u.username, l.total_loc, l.loc_per_second, l.last_updated").
		Joins("JOIN users u ON u.id = l.user_id").
		Order("l.total_loc DESC").
		Order("l.user_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("top leaderboard", 0, err, errs.ErrUserNotFound)
	}

	entries := make([]*entity.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.LeaderboardEntry{
			UserID:       row.UserID,
			Username:     row.Username,
			TotalLoc:     row.TotalLoc,
			LocPerSecond: row.LocPerSecond,
			LastUpdated:  row.LastUpdated,
		})
	}
	return entries, nil
}
