package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// saveColumns are overwritten wholesale on every save
var saveColumns = []string{
	"loc", "loc_per_second", "loc_per_click",
	"upgrades", "buildings", "game_version", "last_updated",
}

// SaveRepository implements SaveRepository interface using GORM
type SaveRepository struct {
	baseRepository
}

var _ persistence.SaveRepository = (*SaveRepository)(nil)

// NewSaveRepository creates a new SaveRepository instance
func NewSaveRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) *SaveRepository {
	return &SaveRepository{
		baseRepository: newBaseRepository(db, timeProvider, logger, queryTimeout),
	}
}

func saveEntityToModel(save *entity.GameSave) *model.GameSave {
	return &model.GameSave{
		UserID:       save.UserID,
		Loc:          save.Loc,
		LocPerSecond: save.LocPerSecond,
		LocPerClick:  save.LocPerClick,
		Upgrades:     datatypes.JSON(save.Upgrades.Bytes()),
		Buildings:    datatypes.JSON(save.Buildings.Bytes()),
		GameVersion:  save.GameVersion,
		LastUpdated:  save.LastUpdated,
	}
}

func (r *SaveRepository) modelToEntity(saveModel *model.GameSave) *entity.GameSave {
	upgrades, ok := entity.NormalizeCollection(json.RawMessage(saveModel.Upgrades))
	if !ok {
		r.logger.Warn("Stored upgrades are not a JSON array", map[string]any{
			"user_id": saveModel.UserID,
		})
	}
	buildings, ok := entity.NormalizeCollection(json.RawMessage(saveModel.Buildings))
	if !ok {
		r.logger.Warn("Stored buildings are not a JSON array", map[string]any{
			"user_id": saveModel.UserID,
		})
	}

	return &entity.GameSave{
		UserID:       saveModel.UserID,
		Loc:          saveModel.Loc,
		LocPerSecond: saveModel.LocPerSecond,
		LocPerClick:  saveModel.LocPerClick,
		Upgrades:     upgrades,
		Buildings:    buildings,
		GameVersion:  saveModel.GameVersion,
		LastUpdated:  saveModel.LastUpdated,
	}
}

// GetByUserID returns the user's save
func (r *SaveRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.GameSave, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var saveModel model.GameSave
	if err := db.Where("user_id = ?", userID).Take(&saveModel).Error; err != nil {
		return nil, r.handleDatabaseError("get save", userID, err, errs.ErrSaveNotFound)
	}
	return r.modelToEntity(&saveModel), nil
}

// Upsert writes the save in a single INSERT ... ON CONFLICT (user_id) DO UPDATE
func (r *SaveRepository) Upsert(ctx context.Context, save *entity.GameSave) error {
	db, cancel := r.session(ctx)
	defer cancel()

	saveModel := saveEntityToModel(save)
	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(saveColumns),
	}).Create(saveModel).Error
	if err != nil {
		return r.handleDatabaseError("upsert save", save.UserID, err, errs.ErrSaveNotFound)
	}

	r.logger.Debug("Game save upserted", map[string]any{
		"user_id": save.UserID,
		"loc":     save.Loc.String(),
	})
	return nil
}

// CreateIfAbsent inserts the save unless the user already has one
func (r *SaveRepository) CreateIfAbsent(ctx context.Context, save *entity.GameSave) (bool, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	result := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(saveEntityToModel(save))
	if result.Error != nil {
		return false, r.handleDatabaseError("create save", save.UserID, result.Error, errs.ErrSaveNotFound)
	}
	return result.RowsAffected > 0, nil
}
