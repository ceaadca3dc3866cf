package repository

import (
	"context"
	"time"

	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
	"gorm.io/gorm"
)

const greetingQuery = "SELECT 'Connected to Code Clicker API!' AS msg"

// StatusRepository runs liveness queries
type StatusRepository struct {
	baseRepository
}

var _ persistence.StatusRepository = (*StatusRepository)(nil)

// NewStatusRepository creates a new StatusRepository instance
func NewStatusRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) *StatusRepository {
	return &StatusRepository{
		baseRepository: newBaseRepository(db, timeProvider, logger, queryTimeout),
	}
}

// Greeting returns the database's answer to the greeting query
func (r *StatusRepository) Greeting(ctx context.Context) (string, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var msg string
	if err := db.Raw(greetingQuery).Row().Scan(&msg); err != nil {
		return "", r.handleDatabaseError("greeting", 0, err, errs.ErrDatabaseConnection)
	}
	return msg, nil
}
