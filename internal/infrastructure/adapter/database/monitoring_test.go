package database

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	stats sql.DBStats
}

func (f *fakeStats) Stats() sql.DBStats {
	return f.stats
}

type recordingPoolObserver struct {
	mu      sync.Mutex
	samples []sql.DBStats
}

func (r *recordingPoolObserver) ObservePool(stats sql.DBStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, stats)
}

func (r *recordingPoolObserver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

func TestConnectionPoolMonitor_SamplesAndWarns(t *testing.T) {
	source := &fakeStats{stats: sql.DBStats{MaxOpenConnections: 10, InUse: 9, Idle: 1, OpenConnections: 10}}
	observer := &recordingPoolObserver{}

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Maybe()

	monitor := NewConnectionPoolMonitor(source, logger, observer)
	require.NoError(t, monitor.Start(time.Millisecond))

	assert.Eventually(t, func() bool { return observer.count() >= 2 }, time.Second, time.Millisecond)
	monitor.Stop()
	monitor.Stop()

	metrics := monitor.GetMetrics()
	assert.Equal(t, 9, metrics.InUse)
	assert.Equal(t, 10, metrics.MaxOpenConnections)
	logger.AssertCalled(t, "Warn", "Database connection pool nearly exhausted", mock.Anything)
}

func TestConnectionPoolMonitor_RejectsBadInterval(t *testing.T) {
	monitor := NewConnectionPoolMonitor(&fakeStats{}, coremocks.NewMockLogger(t), nil)

	assert.Error(t, monitor.Start(0))
	assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
}
