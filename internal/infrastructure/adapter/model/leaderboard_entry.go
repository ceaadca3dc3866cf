package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaderboardEntry is the denormalized ranking row kept in step with game_saves
type LeaderboardEntry struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	UserID       uint64          `gorm:"not null;uniqueIndex:idx_leaderboard_user_id"`
	TotalLoc     decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	LocPerSecond decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	LastUpdated  time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for LeaderboardEntry
func (LeaderboardEntry) TableName() string {
	return "leaderboard"
}

// RankedEntry is the leaderboard row joined with its username
type RankedEntry struct {
	UserID       uint64
	Username     string
	TotalLoc     decimal.Decimal
	LocPerSecond decimal.Decimal
	LastUpdated  time.Time
}
