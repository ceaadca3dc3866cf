package save

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/usecase/unitofwork"
)

// SaveUseCase persists and restores game progress
type SaveUseCase struct {
	uow          persistence.UnitOfWork
	saveRepo     persistence.SaveRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	retryPolicy  unitofwork.RetryPolicy
}

var _ usecase.SaveUseCase = (*SaveUseCase)(nil)

// NewSaveUseCase creates a new SaveUseCase
func NewSaveUseCase(
	uow persistence.UnitOfWork,
	saveRepo persistence.SaveRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *SaveUseCase {
	return &SaveUseCase{
		uow:          uow,
		saveRepo:     saveRepo,
		timeProvider: timeProvider,
		logger:       logger,
		retryPolicy:  unitofwork.DefaultRetryPolicy(),
	}
}

// WithRetryPolicy overrides the backoff used for transient store conflicts
func (s *SaveUseCase) WithRetryPolicy(policy unitofwork.RetryPolicy) *SaveUseCase {
	s.retryPolicy = policy
	return s
}

// Save overwrites the user's save and their leaderboard row. Concurrent saves
// for the same user resolve last-write-wins.
func (s *SaveUseCase) Save(ctx context.Context, userID uint64, progress entity.Progress) (*entity.GameSave, error) {
	save, err := entity.NewGameSave(userID, progress, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = unitofwork.RunWithRetry(ctx, s.uow, s.timeProvider, s.logger, s.retryPolicy, func(txCtx context.Context) error {
		if err := s.uow.GetSaveRepository(txCtx).Upsert(txCtx, save); err != nil {
			return err
		}
		return s.uow.GetLeaderboardRepository(txCtx).Upsert(txCtx, save.LeaderboardEntry())
	})
	if err != nil {
		s.logger.Error("Failed to save game progress", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Game progress saved", map[string]any{
		"user_id":   userID,
		"loc":       save.Loc.String(),
		"upgrades":  save.Upgrades.Len(),
		"buildings": save.Buildings.Len(),
	})
	return save, nil
}

// Load returns the user's save. A user without one gets the default save,
// which is stored so later loads see the same row.
func (s *SaveUseCase) Load(ctx context.Context, userID uint64) (*entity.GameSave, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	save, err := s.saveRepo.GetByUserID(ctx, userID)
	if err == nil {
		return save, nil
	}
	if !errors.Is(err, errs.ErrSaveNotFound) {
		return nil, err
	}

	defaults, err := entity.NewDefaultGameSave(userID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	created, err := s.saveRepo.CreateIfAbsent(ctx, defaults)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("Created default game save", map[string]any{
			"user_id": userID,
		})
		return defaults, nil
	}

	// Another request created the row first.
	return s.saveRepo.GetByUserID(ctx, userID)
}
