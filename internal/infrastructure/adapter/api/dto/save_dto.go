package dto

import (
	"encoding/json"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SaveRequest is the body of POST /save. Counters accept JSON numbers or
// numeric strings. Collections accept an array or a serialized array string.
type SaveRequest struct {
	Loc          *decimal.Decimal `json:"loc" binding:"required"`
	LocPerSecond *decimal.Decimal `json:"locPerSecond" binding:"required"`
	LocPerClick  *decimal.Decimal `json:"locPerClick" binding:"required"`
	Upgrades     json.RawMessage  `json:"upgrades"`
	Buildings    json.RawMessage  `json:"buildings"`
	GameVersion  string           `json:"gameVersion"`
}

// LoadResponse is the body of GET /load. Counters are strings so large values
// survive clients that parse numbers as doubles.
type LoadResponse struct {
	Loc          string            `json:"loc"`
	LocPerSecond string            `json:"locPerSecond"`
	LocPerClick  string            `json:"locPerClick"`
	Upgrades     entity.Collection `json:"upgrades"`
	Buildings    entity.Collection `json:"buildings"`
	GameVersion  string            `json:"gameVersion"`
}

// NewLoadResponse converts a save into its wire form
func NewLoadResponse(save *entity.GameSave) LoadResponse {
	return LoadResponse{
		Loc:          save.Loc.String(),
		LocPerSecond: save.LocPerSecond.String(),
		LocPerClick:  save.LocPerClick.String(),
		Upgrades:     save.Upgrades,
		Buildings:    save.Buildings,
		GameVersion:  save.GameVersion,
	}
}
