package leaderboard

import (
	"context"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
)

// LeaderboardUseCase serves the public ranking
type LeaderboardUseCase struct {
	leaderboardRepo persistence.LeaderboardRepository
	logger          coreport.Logger
}

var _ usecase.LeaderboardUseCase = (*LeaderboardUseCase)(nil)

// NewLeaderboardUseCase creates a new LeaderboardUseCase
func NewLeaderboardUseCase(leaderboardRepo persistence.LeaderboardRepository, logger coreport.Logger) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		leaderboardRepo: leaderboardRepo,
		logger:          logger,
	}
}

// Top returns at most MaxLeaderboardLimit entries, best first
func (l *LeaderboardUseCase) Top(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	entries, err := l.leaderboardRepo.Top(ctx, entity.ClampLeaderboardLimit(limit))
	if err != nil {
		l.logger.Error("Failed to fetch leaderboard", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, err
	}
	if entries == nil {
		entries = []*entity.LeaderboardEntry{}
	}
	return entries, nil
}
