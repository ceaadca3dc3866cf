package usecase

import (
	"context"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
)

// LeaderboardUseCase reads the public ranking
type LeaderboardUseCase interface {
	// Top returns the best players; limit is clamped to the allowed range
	Top(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)
}

// HealthUseCase checks that the service can reach its database
type HealthUseCase interface {
	Check(ctx context.Context) (string, error)
}
