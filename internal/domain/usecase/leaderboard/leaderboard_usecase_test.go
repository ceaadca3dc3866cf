package leaderboard

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTop(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		requested int
		expected  int
	}{
		{"default when unset", 0, entity.DefaultLeaderboardLimit},
		{"negative uses default", -3, entity.DefaultLeaderboardLimit},
		{"within range", 10, 10},
		{"clamped to max", 500, entity.MaxLeaderboardLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := persistencemocks.NewMockLeaderboardRepository(t)
			logger := coremocks.NewMockLogger(t)
			entries := []*entity.LeaderboardEntry{
				{UserID: 1, Username: "alice", TotalLoc: decimal.NewFromInt(500)},
			}
			repo.EXPECT().Top(ctx, tc.expected).Return(entries, nil).Once()

			result, err := NewLeaderboardUseCase(repo, logger).Top(ctx, tc.requested)

			require.NoError(t, err)
			assert.Equal(t, entries, result)
		})
	}

	t.Run("Empty board is an empty slice", func(t *testing.T) {
		repo := persistencemocks.NewMockLeaderboardRepository(t)
		repo.EXPECT().Top(ctx, entity.DefaultLeaderboardLimit).Return(nil, nil).Once()

		result, err := NewLeaderboardUseCase(repo, coremocks.NewMockLogger(t)).Top(ctx, 0)

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := persistencemocks.NewMockLeaderboardRepository(t)
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Error("Failed to fetch leaderboard", mock.Anything).Once()
		repo.EXPECT().Top(ctx, entity.DefaultLeaderboardLimit).Return(nil, errs.ErrDatabaseConnection).Once()

		result, err := NewLeaderboardUseCase(repo, logger).Top(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, result)
	})
}
