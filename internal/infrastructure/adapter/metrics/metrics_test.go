package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObserveRequest("/save", http.MethodPost, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("/save", http.MethodPost, http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest("", http.MethodGet, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/save", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", "GET", "404")))

	series, err := testutil.GatherAndCount(m.Registry(), "code_clicker_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)

	m.ObserveQuery("SELECT", "users", time.Millisecond, nil)
	m.ObserveQuery("INSERT", "users", time.Millisecond, errors.New("boom"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbErrors.WithLabelValues("INSERT", "users")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.dbErrors.WithLabelValues("SELECT", "users")))

	m.ObservePool(sql.DBStats{OpenConnections: 5, InUse: 3, Idle: 2, WaitCount: 7})
	assert.Equal(t, 3.0, testutil.ToFloat64(m.poolInUse))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.poolWait))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveQuery("SELECT", "leaderboard", time.Millisecond, errors.New("timeout"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `code_clicker_db_query_errors_total{table="leaderboard",type="SELECT"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
