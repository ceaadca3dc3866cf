package migration

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// DemoPlayer is a seeded account with some progress on the leaderboard
type DemoPlayer struct {
	Username string
	Password string
	Loc      int64
	Rate     int64
}

// DefaultDemoPlayers populate an empty leaderboard in development
var DefaultDemoPlayers = []DemoPlayer{
	{Username: "ada", Password: "demo-password", Loc: 15000, Rate: 120},
	{Username: "linus", Password: "demo-password", Loc: 9000, Rate: 75},
	{Username: "grace", Password: "demo-password", Loc: 4200, Rate: 30},
}

// SeedDemoPlayers registers each player and stores their progress. Players
// that already exist are left untouched.
func SeedDemoPlayers(
	ctx context.Context,
	auth usecase.AuthUseCase,
	saves usecase.SaveUseCase,
	logger coreport.Logger,
	players []DemoPlayer,
) error {
	created := 0
	for _, player := range players {
		session, err := auth.Register(ctx, player.Username, player.Password)
		if errors.Is(err, errs.ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return err
		}

		_, err = saves.Save(ctx, session.User.UserID, entity.Progress{
			Loc:          decimal.NewFromInt(player.Loc),
			LocPerSecond: decimal.NewFromInt(player.Rate),
			LocPerClick:  decimal.NewFromInt(1),
		})
		if err != nil {
			return err
		}
		created++
	}

	logger.Info("Demo players seeded", map[string]any{
		"created": created,
		"total":   len(players),
	})
	return nil
}
