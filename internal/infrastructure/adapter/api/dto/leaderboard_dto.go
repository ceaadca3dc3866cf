package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
)

// LeaderboardEntryResponse is one ranked player. Counters are emitted as
// JSON number literals taken from the exact decimal text.
type LeaderboardEntryResponse struct {
	Username     string      `json:"username"`
	TotalLoc     json.Number `json:"total_loc"`
	LocPerSecond json.Number `json:"loc_per_second"`
	LastUpdated  time.Time   `json:"last_updated"`
}

// NewLeaderboardResponse converts ranked entries into their wire form
func NewLeaderboardResponse(entries []*entity.LeaderboardEntry) []LeaderboardEntryResponse {
	response := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, LeaderboardEntryResponse{
			Username:     entry.Username,
			TotalLoc:     json.Number(entry.TotalLoc.String()),
			LocPerSecond: json.Number(entry.LocPerSecond.String()),
			LastUpdated:  entry.LastUpdated,
		})
	}
	return response
}
