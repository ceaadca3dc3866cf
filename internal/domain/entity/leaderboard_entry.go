package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultLeaderboardLimit is the page size when none is requested
	DefaultLeaderboardLimit = 50
	// MaxLeaderboardLimit caps any requested page size
	MaxLeaderboardLimit = 50
)

// LeaderboardEntry is one ranked player, denormalized from their latest save
type LeaderboardEntry struct {
	UserID       uint64
	Username     string
	TotalLoc     decimal.Decimal
	LocPerSecond decimal.Decimal
	LastUpdated  time.Time
}

// ClampLeaderboardLimit maps a requested limit into 1..MaxLeaderboardLimit,
// using the default for non-positive values
func ClampLeaderboardLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		return MaxLeaderboardLimit
	default:
		return limit
	}
}
