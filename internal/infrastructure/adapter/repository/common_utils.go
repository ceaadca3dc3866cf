package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	ConnectionError   ErrorType = "connection"
	NotFoundError     ErrorType = "not_found"
)

// Postgres SQLSTATE codes we react to
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" for anything unrecognized
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return ""
	}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// IsTransientError checks if the statement lost a deadlock or serialization
// race and can be retried as a whole transaction
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "database is locked")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "eof")
}

// baseRepository holds what every GORM repository needs
type baseRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	queryTimeout    time.Duration
}

func newBaseRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) baseRepository {
	return baseRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		queryTimeout:    queryTimeout,
	}
}

// session returns a handle bound to ctx, limited by the query timeout when set
func (r *baseRepository) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return r.db.WithContext(ctx), func() {}
	}
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	return r.db.WithContext(ctx), cancel
}

// handleDatabaseError maps a driver error to the domain error for operation.
// notFound is returned for gorm.ErrRecordNotFound.
func (r *baseRepository) handleDatabaseError(operation string, userID uint64, err error, notFound error) error {
	switch r.errorClassifier.Classify(err) {
	case NotFoundError:
		return notFound
	case DuplicateKeyError:
		r.logger.Warn("Unique constraint violated", map[string]any{
			"operation": operation,
			"user_id":   userID,
		})
		return errs.NewStoreError(operation, userID, errs.ErrDuplicateUser)
	case TransientError:
		r.logger.Warn("Transient database conflict", map[string]any{
			"operation": operation,
			"user_id":   userID,
			"error":     err.Error(),
		})
		return errs.NewStoreError(operation, userID, errs.ErrTransientConflict)
	case ConnectionError:
		r.logger.Error("Database unreachable", map[string]any{
			"operation": operation,
			"user_id":   userID,
			"error":     err.Error(),
		})
		return errs.NewStoreError(operation, userID, errs.ErrDatabaseConnection)
	default:
		r.logger.Error("Database error", map[string]any{
			"operation": operation,
			"user_id":   userID,
			"error":     err.Error(),
		})
		return errs.NewStoreError(operation, userID, errs.ErrInternalServer)
	}
}
