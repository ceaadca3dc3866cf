package status

import (
	"context"

	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
)

// HealthUseCase checks database reachability
type HealthUseCase struct {
	statusRepo persistence.StatusRepository
	logger     coreport.Logger
}

var _ usecase.HealthUseCase = (*HealthUseCase)(nil)

// NewHealthUseCase creates a new HealthUseCase
func NewHealthUseCase(statusRepo persistence.StatusRepository, logger coreport.Logger) *HealthUseCase {
	return &HealthUseCase{
		statusRepo: statusRepo,
		logger:     logger,
	}
}

// Check returns the database greeting
func (h *HealthUseCase) Check(ctx context.Context) (string, error) {
	msg, err := h.statusRepo.Greeting(ctx)
	if err != nil {
		h.logger.Error("Database health check failed", map[string]any{
			"error": err.Error(),
		})
		return "", err
	}
	return msg, nil
}
