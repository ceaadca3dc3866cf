package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock so token expiry and save timestamps can be
// pinned in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(ctx context.Context, d time.Duration) error
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
