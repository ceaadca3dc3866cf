package save

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/usecase/unitofwork"
	coremocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey{}, "tx")
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	progress := entity.Progress{
		Loc:          decimal.RequireFromString("1234.5"),
		LocPerSecond: decimal.NewFromInt(12),
		LocPerClick:  decimal.NewFromInt(3),
		Upgrades:     entity.Collection{json.RawMessage(`{"id":"keyboard"}`)},
		GameVersion:  "0.2",
	}

	t.Run("Writes save and leaderboard row in one transaction", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		saves := persistencemocks.NewMockSaveRepository(t)
		board := persistencemocks.NewMockLeaderboardRepository(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(fixedTime).Once()

		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		uow.EXPECT().GetSaveRepository(txCtx).Return(saves).Once()
		saves.EXPECT().Upsert(txCtx, mock.MatchedBy(func(s *entity.GameSave) bool {
			return s.UserID == 7 && s.Loc.Equal(progress.Loc) && s.Upgrades.Len() == 1 &&
				s.Buildings != nil && s.GameVersion == "0.2"
		})).Return(nil).Once()
		uow.EXPECT().GetLeaderboardRepository(txCtx).Return(board).Once()
		board.EXPECT().Upsert(txCtx, &entity.LeaderboardEntry{
			UserID:       7,
			TotalLoc:     progress.Loc,
			LocPerSecond: progress.LocPerSecond,
			LastUpdated:  fixedTime,
		}).Return(nil).Once()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()

		useCase := NewSaveUseCase(uow, saves, clock, quietLogger(t))
		save, err := useCase.Save(ctx, 7, progress)

		require.NoError(t, err)
		assert.Equal(t, fixedTime, save.LastUpdated)
		assert.Equal(t, entity.Collection{}, save.Buildings)
	})

	t.Run("Leaderboard failure rolls back the save", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		saves := persistencemocks.NewMockSaveRepository(t)
		board := persistencemocks.NewMockLeaderboardRepository(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(fixedTime).Once()

		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		uow.EXPECT().GetSaveRepository(txCtx).Return(saves).Once()
		saves.EXPECT().Upsert(txCtx, mock.Anything).Return(nil).Once()
		uow.EXPECT().GetLeaderboardRepository(txCtx).Return(board).Once()
		board.EXPECT().Upsert(txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		useCase := NewSaveUseCase(uow, saves, clock, quietLogger(t))
		save, err := useCase.Save(ctx, 7, progress)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, save)
	})

	t.Run("Transient conflict is retried", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		saves := persistencemocks.NewMockSaveRepository(t)
		board := persistencemocks.NewMockLeaderboardRepository(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(fixedTime).Once()
		clock.EXPECT().Sleep(ctx, mock.AnythingOfType("time.Duration")).Return(nil).Once()

		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Twice()
		uow.EXPECT().GetSaveRepository(txCtx).Return(saves).Twice()
		saves.EXPECT().Upsert(txCtx, mock.Anything).Return(errs.ErrTransientConflict).Once()
		uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		saves.EXPECT().Upsert(txCtx, mock.Anything).Return(nil).Once()
		uow.EXPECT().GetLeaderboardRepository(txCtx).Return(board).Once()
		board.EXPECT().Upsert(txCtx, mock.Anything).Return(nil).Once()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()

		useCase := NewSaveUseCase(uow, saves, clock, quietLogger(t)).WithRetryPolicy(unitofwork.RetryPolicy{
			MaxAttempts:  3,
			BaseInterval: time.Millisecond,
			MaxInterval:  time.Millisecond,
		})
		save, err := useCase.Save(ctx, 7, progress)

		require.NoError(t, err)
		assert.NotNil(t, save)
	})

	t.Run("Missing version falls back to default", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		saves := persistencemocks.NewMockSaveRepository(t)
		board := persistencemocks.NewMockLeaderboardRepository(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(fixedTime).Once()

		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		uow.EXPECT().GetSaveRepository(txCtx).Return(saves).Once()
		saves.EXPECT().Upsert(txCtx, mock.MatchedBy(func(s *entity.GameSave) bool {
			return s.GameVersion == entity.DefaultGameVersion
		})).Return(nil).Once()
		uow.EXPECT().GetLeaderboardRepository(txCtx).Return(board).Once()
		board.EXPECT().Upsert(txCtx, mock.Anything).Return(nil).Once()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()

		noVersion := progress
		noVersion.GameVersion = ""
		useCase := NewSaveUseCase(uow, saves, clock, quietLogger(t))
		_, err := useCase.Save(ctx, 7, noVersion)

		require.NoError(t, err)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		saves := persistencemocks.NewMockSaveRepository(t)
		clock := coremocks.NewMockTimeProvider(t)

		useCase := NewSaveUseCase(uow, saves, clock, quietLogger(t))
		save, err := useCase.Save(ctx, 0, progress)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, save)
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("Existing save", func(t *testing.T) {
		saves := persistencemocks.NewMockSaveRepository(t)
		stored := &entity.GameSave{UserID: 7, Loc: decimal.NewFromInt(99), GameVersion: "0.3"}
		saves.EXPECT().GetByUserID(ctx, uint64(7)).Return(stored, nil).Once()

		useCase := NewSaveUseCase(persistencemocks.NewMockUnitOfWork(t), saves, coremocks.NewMockTimeProvider(t), quietLogger(t))
		save, err := useCase.Load(ctx, 7)

		require.NoError(t, err)
		assert.Same(t, stored, save)
	})

	t.Run("Missing save is created with defaults", func(t *testing.T) {
		saves := persistencemocks.NewMockSaveRepository(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(fixedTime).Once()

		saves.EXPECT().GetByUserID(ctx, uint64(7)).Return(nil, errs.ErrSaveNotFound).Once()
		saves.EXPECT().CreateIfAbsent(ctx, mock.AnythingOfType("*entity.GameSave")).Return(true, nil).Once()

		useCase := NewSaveUseCase(persistencemocks.NewMockUnitOfWork(t), saves, clock, quietLogger(t))
		save, err := useCase.Load(ctx, 7)

		require.NoError(t, err)
		assert.True(t, save.Loc.IsZero())
		assert.True(t, save.LocPerSecond.IsZero())
		assert.True(t, save.LocPerClick.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, entity.Collection{}, save.Upgrades)
		assert.Equal(t, entity.Collection{}, save.Buildings)
		assert.Equal(t, entity.DefaultGameVersion, save.GameVersion)
	})

	t.Run("Concurrent creation re-reads the stored row", func(t *testing.T) {
		saves := persistencemocks.NewMockSaveRepository(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(fixedTime).Once()
		winner := &entity.GameSave{UserID: 7, LocPerClick: decimal.NewFromInt(1), GameVersion: "0.1"}

		saves.EXPECT().GetByUserID(ctx, uint64(7)).Return(nil, errs.ErrSaveNotFound).Once()
		saves.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(false, nil).Once()
		saves.EXPECT().GetByUserID(ctx, uint64(7)).Return(winner, nil).Once()

		useCase := NewSaveUseCase(persistencemocks.NewMockUnitOfWork(t), saves, clock, quietLogger(t))
		save, err := useCase.Load(ctx, 7)

		require.NoError(t, err)
		assert.Same(t, winner, save)
	})

	t.Run("Store error is returned", func(t *testing.T) {
		saves := persistencemocks.NewMockSaveRepository(t)
		saves.EXPECT().GetByUserID(ctx, uint64(7)).Return(nil, errs.ErrDatabaseConnection).Once()

		useCase := NewSaveUseCase(persistencemocks.NewMockUnitOfWork(t), saves, coremocks.NewMockTimeProvider(t), quietLogger(t))
		save, err := useCase.Load(ctx, 7)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, save)
	})
}
