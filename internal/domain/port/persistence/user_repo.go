package persistence

import (
	"context"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
)

// UserRepository defines methods to interact with registered players
type UserRepository interface {
	// Create inserts a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByUsername retrieves a user by exact username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
