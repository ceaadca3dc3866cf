package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// DefaultGameVersion is recorded for saves that don't report a version
const DefaultGameVersion = "0.1"

// MaxGameVersionLength bounds the stored version string, in characters
const MaxGameVersionLength = 32

// Counter limits match the Postgres NUMERIC range
const (
	MaxCounterIntegerDigits  = 131072
	MaxCounterFractionDigits = 16383
)

// Progress is the client-reported state of one game
type Progress struct {
	Loc          decimal.Decimal
	LocPerSecond decimal.Decimal
	LocPerClick  decimal.Decimal
	Upgrades     Collection
	Buildings    Collection
	GameVersion  string
}

// GameSave is the persisted snapshot of one player's progress
type GameSave struct {
	UserID       uint64
	Loc          decimal.Decimal // lines of code, the game currency
	LocPerSecond decimal.Decimal
	LocPerClick  decimal.Decimal
	Upgrades     Collection
	Buildings    Collection
	GameVersion  string
	LastUpdated  time.Time
}

// NewDefaultGameSave returns the starting state for a fresh player
func NewDefaultGameSave(userID uint64, timeProvider coreport.TimeProvider) (*GameSave, error) {
	return NewGameSave(userID, Progress{
		Loc:          decimal.Zero,
		LocPerSecond: decimal.Zero,
		LocPerClick:  decimal.NewFromInt(1),
	}, timeProvider)
}

// NewGameSave builds a save for userID from reported progress
func NewGameSave(userID uint64, progress Progress, timeProvider coreport.TimeProvider) (*GameSave, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	counters := []struct {
		field string
		value decimal.Decimal
	}{
		{"loc", progress.Loc},
		{"locPerSecond", progress.LocPerSecond},
		{"locPerClick", progress.LocPerClick},
	}
	for _, counter := range counters {
		if err := ValidateCounter(counter.field, counter.value); err != nil {
			return nil, err
		}
	}

	version := truncateRunes(strings.TrimSpace(progress.GameVersion), MaxGameVersionLength)
	if version == "" {
		version = DefaultGameVersion
	}

	upgrades := progress.Upgrades
	if upgrades == nil {
		upgrades = Collection{}
	}
	buildings := progress.Buildings
	if buildings == nil {
		buildings = Collection{}
	}

	return &GameSave{
		UserID:       userID,
		Loc:          progress.Loc,
		LocPerSecond: progress.LocPerSecond,
		LocPerClick:  progress.LocPerClick,
		Upgrades:     upgrades,
		Buildings:    buildings,
		GameVersion:  version,
		LastUpdated:  timeProvider.Now(),
	}, nil
}

// ValidateCounter rejects values outside the storable NUMERIC range. Only the
// exponent and coefficient length are inspected, so huge exponents are caught
// before anything renders them.
func ValidateCounter(field string, d decimal.Decimal) error {
	exp := int64(d.Exponent())
	if exp+int64(d.NumDigits()) > MaxCounterIntegerDigits {
		return fmt.Errorf("%w: %s is too large", errs.ErrInvalidRequest, field)
	}
	if -exp > MaxCounterFractionDigits {
		return fmt.Errorf("%w: %s has too many decimal places", errs.ErrInvalidRequest, field)
	}
	return nil
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}

// LeaderboardEntry projects the save onto its ranking row
func (s *GameSave) LeaderboardEntry() *LeaderboardEntry {
	return &LeaderboardEntry{
		UserID:       s.UserID,
		TotalLoc:     s.Loc,
		LocPerSecond: s.LocPerSecond,
		LastUpdated:  s.LastUpdated,
	}
}
