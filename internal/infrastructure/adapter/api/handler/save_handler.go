package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SaveHandler handles game progress requests. Both routes sit behind the
// auth middleware.
type SaveHandler struct {
	saveUseCase usecase.SaveUseCase
	logger      coreport.Logger
}

// NewSaveHandler creates a new save handler instance
func NewSaveHandler(saveUseCase usecase.SaveUseCase, logger coreport.Logger) *SaveHandler {
	return &SaveHandler{
		saveUseCase: saveUseCase,
		logger:      logger,
	}
}

// Save handles POST /save
func (h *SaveHandler) Save(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	upgrades := h.collection(principal.UserID, "upgrades", req.Upgrades)
	buildings := h.collection(principal.UserID, "buildings", req.Buildings)

	_, err := h.saveUseCase.Save(c.Request.Context(), principal.UserID, entity.Progress{
		Loc:          *req.Loc,
		LocPerSecond: *req.LocPerSecond,
		LocPerClick:  *req.LocPerClick,
		Upgrades:     upgrades,
		Buildings:    buildings,
		GameVersion:  req.GameVersion,
	})
	if err != nil {
		respondError(c, h.logger, err, "Server error while saving game")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Game progress saved successfully"})
}

// Load handles GET /load
func (h *SaveHandler) Load(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	save, err := h.saveUseCase.Load(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, h.logger, err, "Server error while loading game")
		return
	}

	c.JSON(http.StatusOK, dto.NewLoadResponse(save))
}

// collection normalizes a client collection, dropping input that isn't an array
func (h *SaveHandler) collection(userID uint64, field string, raw []byte) entity.Collection {
	collection, ok := entity.NormalizeCollection(raw)
	if !ok {
		h.logger.Warn("Discarding malformed collection", map[string]any{
			"user_id": userID,
			"field":   field,
			"size":    len(raw),
		})
	}
	return collection
}
