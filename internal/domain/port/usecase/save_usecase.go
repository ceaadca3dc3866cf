package usecase

import (
	"context"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
)

// SaveUseCase persists and restores player progress
type SaveUseCase interface {
	// Save replaces the user's save and refreshes their leaderboard row atomically
	Save(ctx context.Context, userID uint64, progress entity.Progress) (*entity.GameSave, error)

	// Load returns the user's save, creating the default one if it is missing
	Load(ctx context.Context, userID uint64) (*entity.GameSave, error)
}
