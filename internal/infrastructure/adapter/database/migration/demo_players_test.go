package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSeedDemoPlayers(t *testing.T) {
	players := []DemoPlayer{
		{Username: "ada", Password: "pw", Loc: 100, Rate: 5},
		{Username: "linus", Password: "pw", Loc: 50, Rate: 2},
	}

	t.Run("registers and saves each player", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		saves := usecasemocks.NewMockSaveUseCase(t)

		auth.EXPECT().Register(mock.Anything, "ada", "pw").
			Return(&usecase.Session{User: entity.Principal{UserID: 1, Username: "ada"}}, nil).Once()
		auth.EXPECT().Register(mock.Anything, "linus", "pw").
			Return(&usecase.Session{User: entity.Principal{UserID: 2, Username: "linus"}}, nil).Once()
		saves.EXPECT().Save(mock.Anything, uint64(1), mock.MatchedBy(func(p entity.Progress) bool {
			return p.Loc.Equal(decimal.NewFromInt(100)) && p.LocPerSecond.Equal(decimal.NewFromInt(5))
		})).Return(&entity.GameSave{}, nil).Once()
		saves.EXPECT().Save(mock.Anything, uint64(2), mock.Anything).Return(&entity.GameSave{}, nil).Once()

		err := SeedDemoPlayers(context.Background(), auth, saves, logger.NewNoopLogger(), players)
		assert.NoError(t, err)
	})

	t.Run("existing players are left alone", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		saves := usecasemocks.NewMockSaveUseCase(t)

		auth.EXPECT().Register(mock.Anything, mock.Anything, "pw").Return(nil, errs.ErrUsernameTaken).Twice()

		err := SeedDemoPlayers(context.Background(), auth, saves, logger.NewNoopLogger(), players)
		assert.NoError(t, err)
	})

	t.Run("store failure stops seeding", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		saves := usecasemocks.NewMockSaveUseCase(t)
		boom := errors.New("boom")

		auth.EXPECT().Register(mock.Anything, "ada", "pw").Return(nil, boom).Once()

		err := SeedDemoPlayers(context.Background(), auth, saves, logger.NewNoopLogger(), players)
		assert.ErrorIs(t, err, boom)
	})
}
