package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// GameSave represents the database model for a player's saved game
type GameSave struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	UserID       uint64          `gorm:"not null;uniqueIndex:idx_game_saves_user_id"`
	Loc          decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	LocPerSecond decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	LocPerClick  decimal.Decimal `gorm:"type:numeric;not null;default:1"`
	Upgrades     datatypes.JSON  `gorm:"not null"`
	Buildings    datatypes.JSON  `gorm:"not null"`
	GameVersion  string          `gorm:"size:32;not null;default:'0.1'"`
	LastUpdated  time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GameSave
func (GameSave) TableName() string {
	return "game_saves"
}
