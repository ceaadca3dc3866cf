// Package unitofwork runs use case steps inside a single store transaction.
package unitofwork

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
)

// RetryPolicy holds the backoff settings for transient conflicts
type RetryPolicy struct {
	MaxAttempts  int
	BaseInterval time.Duration
	MaxInterval  time.Duration
	JitterFactor float64 // 0.0-1.0, added on top of the backoff
}

// DefaultRetryPolicy returns the policy used by the game use cases
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  4,
		BaseInterval: 50 * time.Millisecond,
		MaxInterval:  time.Second,
		JitterFactor: 0.2,
	}
}

// Backoff returns the delay before retry number attempt (0-based)
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	backoff := p.MaxInterval
	if attempt < 32 {
		backoff = p.BaseInterval << uint(attempt)
	}
	if backoff <= 0 || backoff > p.MaxInterval {
		backoff = p.MaxInterval
	}
	if p.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * p.JitterFactor * rand.Float64())
	}
	return backoff
}

// Run executes fn with a transactional context. The transaction is committed
// when fn returns nil and rolled back otherwise, including on panic.
func Run(ctx context.Context, uow persistence.UnitOfWork, logger coreport.Logger, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if r := recover(); r != nil {
			rollback(txCtx, uow, logger)
			panic(r)
		}
		rollback(txCtx, uow, logger)
	}()

	if err = fn(txCtx); err != nil {
		return err
	}
	if err = uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true
	return nil
}

// RunWithRetry behaves like Run but starts over while the store reports a
// transient conflict, up to policy.MaxAttempts attempts
func RunWithRetry(
	ctx context.Context,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	policy RetryPolicy,
	fn func(txCtx context.Context) error,
) error {
	attempts := max(policy.MaxAttempts, 1)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = Run(ctx, uow, logger, fn)
		if err == nil || !errors.Is(err, errs.ErrTransientConflict) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		backoff := policy.Backoff(attempt)
		logger.Warn("Transient store conflict, retrying", map[string]any{
			"attempt":      attempt + 1,
			"max_attempts": attempts,
			"retry_after":  backoff.String(),
			"error":        err.Error(),
		})
		if sleepErr := timeProvider.Sleep(ctx, backoff); sleepErr != nil {
			return sleepErr
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}

func rollback(txCtx context.Context, uow persistence.UnitOfWork, logger coreport.Logger) {
	if err := uow.Rollback(txCtx); err != nil {
		logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
