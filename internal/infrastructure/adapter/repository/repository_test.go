package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/repository"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func newTestDB(t *testing.T) *database.TestDBManager {
	t.Helper()
	return database.NewTestDBManager(t, logger.NewNoopLogger())
}

func newUser(t *testing.T, tdb *database.TestDBManager, username string) *entity.User {
	t.Helper()

	user, err := entity.NewUser(username, "hash", tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, tdb.Manager.UserRepository().Create(context.Background(), user))
	return user
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	tdb := newTestDB(t)
	repo := tdb.Manager.UserRepository()
	ctx := context.Background()

	user := newUser(t, tdb, "alice")
	assert.NotZero(t, user.ID)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "hash", byName.PasswordHash)

	assert.Equal(t, "alice", byName.Username)
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	tdb := newTestDB(t)
	newUser(t, tdb, "alice")

	_, err := tdb.Manager.UserRepository().GetByUsername(context.Background(), "Alice")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	newUser(t, tdb, "Alice")
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	tdb := newTestDB(t)
	newUser(t, tdb, "alice")

	dup, err := entity.NewUser("alice", "other", tdb.TimeProvider)
	require.NoError(t, err)

	err = tdb.Manager.UserRepository().Create(context.Background(), dup)
	assert.ErrorIs(t, err, errs.ErrDuplicateUser)

	var count int64
	require.NoError(t, tdb.DB().Model(&model.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository_NotFound(t *testing.T) {
	tdb := newTestDB(t)

	_, err := tdb.Manager.UserRepository().GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUserRepository_FailedInsertLogsNoValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.log")
	appLogger, err := logger.NewZapLogger(logger.Config{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	config := database.NewTestSQLiteConfig()
	config.LogLevel = "error"
	tdb := database.NewTestDBManagerWithConfig(t, appLogger, config)
	repo := tdb.Manager.UserRepository()
	ctx := context.Background()

	first, err := entity.NewUser("alice", "$2a$10$FIRSTHASH", tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	again, err := entity.NewUser("alice", "$2a$10$SECONDHASH", tdb.TimeProvider)
	require.NoError(t, err)
	require.ErrorIs(t, repo.Create(ctx, again), errs.ErrDuplicateUser)
	require.NoError(t, appLogger.Flush())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	output := string(raw)
	assert.Contains(t, output, "SQL Error")
	assert.NotContains(t, output, "SECONDHASH")
	assert.NotContains(t, output, "FIRSTHASH")
}

func TestSaveRepository_UpsertRoundTrip(t *testing.T) {
	tdb := newTestDB(t)
	repo := tdb.Manager.SaveRepository()
	ctx := context.Background()
	user := newUser(t, tdb, "alice")

	upgrades, err := entity.ParseCollection([]byte(`[{"id":"ide","count":2},{"id":"linter","count":1}]`))
	require.NoError(t, err)

	save, err := entity.NewGameSave(user.ID, entity.Progress{
		Loc:          decimal.RequireFromString("12.5"),
		LocPerSecond: decimal.NewFromInt(3),
		LocPerClick:  decimal.NewFromInt(2),
		Upgrades:     upgrades,
		GameVersion:  "0.2",
	}, tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, save))

	loaded, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Loc.Equal(decimal.RequireFromString("12.5")), loaded.Loc.String())
	assert.True(t, loaded.LocPerSecond.Equal(decimal.NewFromInt(3)))
	assert.True(t, loaded.LocPerClick.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "0.2", loaded.GameVersion)
	assert.Equal(t, 0, loaded.Buildings.Len())
	if diff := cmp.Diff(string(upgrades.Bytes()), string(loaded.Upgrades.Bytes())); diff != "" {
		t.Errorf("upgrades mismatch (-want +got):\n%s", diff)
	}

	// A second save overwrites the single row
	save.Loc = decimal.NewFromInt(100)
	save.Upgrades = entity.Collection{}
	require.NoError(t, repo.Upsert(ctx, save))

	loaded, err = repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Loc.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 0, loaded.Upgrades.Len())

	var count int64
	require.NoError(t, tdb.DB().Model(&model.GameSave{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveRepository_CreateIfAbsent(t *testing.T) {
	tdb := newTestDB(t)
	repo := tdb.Manager.SaveRepository()
	ctx := context.Background()
	user := newUser(t, tdb, "alice")

	defaults, err := entity.NewDefaultGameSave(user.ID, tdb.TimeProvider)
	require.NoError(t, err)

	created, err := repo.CreateIfAbsent(ctx, defaults)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, defaults)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, tdb.DB().Model(&model.GameSave{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveRepository_NotFound(t *testing.T) {
	tdb := newTestDB(t)

	_, err := tdb.Manager.SaveRepository().GetByUserID(context.Background(), 42)
	assert.ErrorIs(t, err, errs.ErrSaveNotFound)
}

func TestSaveRepository_ReadsLegacyCollections(t *testing.T) {
	tdb := newTestDB(t)
	user := newUser(t, tdb, "alice")

	// Older rows hold a serialized string or garbage instead of an array
	require.NoError(t, tdb.DB().Omit(clause.Associations).Create(&model.GameSave{
		UserID:      user.ID,
		Loc:         decimal.NewFromInt(5),
		LocPerClick: decimal.NewFromInt(1),
		Upgrades:    datatypes.JSON(`"[{\"id\":\"ide\"}]"`),
		Buildings:   datatypes.JSON(`{"not":"an array"}`),
		GameVersion: "0.1",
		LastUpdated: tdb.TimeProvider.Now(),
	}).Error)

	loaded, err := tdb.Manager.SaveRepository().GetByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Upgrades.Len())
	assert.JSONEq(t, `{"id":"ide"}`, string(loaded.Upgrades[0]))
	assert.Equal(t, 0, loaded.Buildings.Len())
	assert.Equal(t, json.RawMessage(`[]`), json.RawMessage(loaded.Buildings.Bytes()))
}

func TestLeaderboardRepository_TopOrdering(t *testing.T) {
	tdb := newTestDB(t)
	repo := tdb.Manager.LeaderboardRepository()
	ctx := context.Background()

	now := tdb.TimeProvider.Now()
	scores := map[string]int64{"alice": 500, "bob": 900, "carol": 500, "dave": 10}
	ids := map[string]uint64{}
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		user := newUser(t, tdb, name)
		ids[name] = user.ID
		require.NoError(t, repo.Upsert(ctx, &entity.LeaderboardEntry{
			UserID:       user.ID,
			TotalLoc:     decimal.NewFromInt(scores[name]),
			LocPerSecond: decimal.NewFromInt(1),
			LastUpdated:  now,
		}))
	}

	top, err := repo.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)

	names := []string{top[0].Username, top[1].Username, top[2].Username}
	// Equal scores fall back to user id order
	assert.Equal(t, []string{"bob", "alice", "carol"}, names)
	assert.Equal(t, ids["bob"], top[0].UserID)
	assert.True(t, top[0].TotalLoc.Equal(decimal.NewFromInt(900)))

	// Upsert replaces rather than appends
	require.NoError(t, repo.Upsert(ctx, &entity.LeaderboardEntry{
		UserID:       ids["dave"],
		TotalLoc:     decimal.NewFromInt(10000),
		LocPerSecond: decimal.NewFromInt(50),
		LastUpdated:  now.Add(time.Second),
	}))

	top, err = repo.Top(ctx, 50)
	require.NoError(t, err)
	require.Len(t, top, 4)
	assert.Equal(t, "dave", top[0].Username)
	assert.True(t, top[0].LocPerSecond.Equal(decimal.NewFromInt(50)))
}

func TestLeaderboardRepository_EmptyBoard(t *testing.T) {
	tdb := newTestDB(t)

	top, err := tdb.Manager.LeaderboardRepository().Top(context.Background(), 50)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestStatusRepository_Greeting(t *testing.T) {
	tdb := newTestDB(t)

	msg, err := tdb.Manager.StatusRepository().Greeting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Connected to Code Clicker API!", msg)
}

func TestErrorClassifier(t *testing.T) {
	classifier := repository.NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want repository.ErrorType
	}{
		{"nil", nil, ""},
		{"not found", gorm.ErrRecordNotFound, repository.NotFoundError},
		{"gorm duplicate", gorm.ErrDuplicatedKey, repository.DuplicateKeyError},
		{"pg unique", &pgconn.PgError{Code: "23505"}, repository.DuplicateKeyError},
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.username"), repository.DuplicateKeyError},
		{"pg serialization", &pgconn.PgError{Code: "40001"}, repository.TransientError},
		{"pg deadlock", &pgconn.PgError{Code: "40P01"}, repository.TransientError},
		{"sqlite busy", errors.New("database is locked"), repository.TransientError},
		{"timeout", context.DeadlineExceeded, repository.ConnectionError},
		{"refused", errors.New("dial tcp: connection refused"), repository.ConnectionError},
		{"other", errors.New("syntax error"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}
