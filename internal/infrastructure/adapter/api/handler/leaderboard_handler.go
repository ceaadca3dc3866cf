package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LeaderboardHandler serves the public ranking
type LeaderboardHandler struct {
	leaderboardUseCase usecase.LeaderboardUseCase
	logger             coreport.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler instance
func NewLeaderboardHandler(leaderboardUseCase usecase.LeaderboardUseCase, logger coreport.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
		logger:             logger,
	}
}

// Top handles GET /leaderboard. An unparsable ?limit= falls back to the default.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	entries, err := h.leaderboardUseCase.Top(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err, "Server error while fetching leaderboard")
		return
	}

	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(entries))
}
