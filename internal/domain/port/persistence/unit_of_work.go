package persistence

import (
	"context"
)

// UnitOfWork coordinates several repositories inside one database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetSaveRepository returns a save repository bound to the current transaction
	GetSaveRepository(ctx context.Context) SaveRepository

	// GetLeaderboardRepository returns a leaderboard repository bound to the current transaction
	GetLeaderboardRepository(ctx context.Context) LeaderboardRepository
}
