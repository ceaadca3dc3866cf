package persistence

import (
	"context"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
)

// LeaderboardRepository maintains the ranking projection of game saves
type LeaderboardRepository interface {
	// Upsert replaces the user's ranking row
	Upsert(ctx context.Context, entry *entity.LeaderboardEntry) error

	// Top returns up to limit entries ordered by total LoC descending,
	// ties broken by user ID ascending. Username is filled from users.
	Top(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)
}
