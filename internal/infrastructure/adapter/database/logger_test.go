package database

import (
	"context"
	"errors"
	"testing"
	"time"

	applogger "github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type observedQuery struct {
	queryType string
	table     string
	err       error
}

type recordingQueryObserver struct {
	queries []observedQuery
}

func (r *recordingQueryObserver) ObserveQuery(queryType, table string, elapsed time.Duration, err error) {
	r.queries = append(r.queries, observedQuery{queryType: queryType, table: table, err: err})
}

func TestExtractQueryInfo(t *testing.T) {
	tests := []struct {
		sql       string
		wantType  string
		wantTable string
	}{
		{`SELECT * FROM "users" WHERE username = 'a'`, "SELECT", "users"},
		{`  INSERT INTO "game_saves" ("user_id") VALUES (1)`, "INSERT", "game_saves"},
		{`UPDATE leaderboard SET total_loc = 1`, "UPDATE", "leaderboard"},
		{`DELETE FROM users`, "DELETE", "users"},
		{`PRAGMA foreign_keys = ON`, "OTHER", ""},
	}

	for _, tt := range tests {
		t.Run(tt.wantType+"_"+tt.wantTable, func(t *testing.T) {
			assert.Equal(t, tt.wantType, extractQueryType(tt.sql))
			assert.Equal(t, tt.wantTable, extractTableName(tt.sql))
		})
	}
}

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sql := func() (string, int64) { return `SELECT * FROM "users"`, 1 }

	t.Run("errors are logged with request id", func(t *testing.T) {
		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(begin).Return(10 * time.Millisecond)
		coreLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["request_id"] == "req-9" && fields["table"] == "users" && fields["error"] == "boom"
		})).Once()

		observer := &recordingQueryObserver{}
		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, "warn", time.Second).WithObserver(observer)

		ctx := applogger.WithRequestID(context.Background(), "req-9")
		dbLogger.Trace(ctx, begin, sql, errors.New("boom"))

		assert.Len(t, observer.queries, 1)
		assert.Equal(t, "SELECT", observer.queries[0].queryType)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(begin).Return(time.Millisecond)

		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, "warn", time.Second)
		dbLogger.Trace(context.Background(), begin, sql, gorm.ErrRecordNotFound)
	})

	t.Run("slow queries warn", func(t *testing.T) {
		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(begin).Return(2 * time.Second)
		coreLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, "warn", time.Second)
		dbLogger.Trace(context.Background(), begin, sql, nil)
	})

	t.Run("silent without observer does nothing", func(t *testing.T) {
		dbLogger := NewDatabaseLogger(coremocks.NewMockLogger(t), coremocks.NewMockTimeProvider(t), "silent", time.Second)
		dbLogger.Trace(context.Background(), begin, sql, errors.New("boom"))
	})
}

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, ParseGormLogLevel("ERROR"))
	assert.Equal(t, gormlogger.Warn, ParseGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, ParseGormLogLevel("debug"))
}

func TestDatabaseLogger_ParamsFilter(t *testing.T) {
	dbLogger := NewDatabaseLogger(applogger.NewNoopLogger(), nil, "error", 0)
	var _ gorm.ParamsFilter = dbLogger

	sql, params := dbLogger.ParamsFilter(context.Background(),
		`INSERT INTO "users" ("username","password_hash") VALUES (?,?)`, "alice", "$2a$10$secret")

	assert.Equal(t, `INSERT INTO "users" ("username","password_hash") VALUES (?,?)`, sql)
	assert.Empty(t, params)
}
