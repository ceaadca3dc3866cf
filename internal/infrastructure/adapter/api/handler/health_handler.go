package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// HealthHandler answers connectivity probes
type HealthHandler struct {
	healthUseCase usecase.HealthUseCase
	logger        coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(healthUseCase usecase.HealthUseCase, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		healthUseCase: healthUseCase,
		logger:        logger,
	}
}

// Root handles GET / by round-tripping a query through the database
func (h *HealthHandler) Root(c *gin.Context) {
	msg, err := h.healthUseCase.Check(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Database connection failed")
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Msg: msg})
}

// Liveness handles GET /healthz without touching the database
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
