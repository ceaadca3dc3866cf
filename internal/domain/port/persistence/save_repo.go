package persistence

import (
	"context"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
)

// SaveRepository stores at most one game save per user
type SaveRepository interface {
	// GetByUserID returns the user's save
	//
	// Possible errors:
	// - ErrSaveNotFound: If the user has no save
	// - ErrDatabaseConnection: If database connection fails
	GetByUserID(ctx context.Context, userID uint64) (*entity.GameSave, error)

	// Upsert replaces the user's save, creating it if absent
	Upsert(ctx context.Context, save *entity.GameSave) error

	// CreateIfAbsent inserts save unless one already exists for the user.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, save *entity.GameSave) (bool, error)
}
