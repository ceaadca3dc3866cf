package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	baseRepository
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) *UserRepository {
	return &UserRepository{
		baseRepository: newBaseRepository(db, timeProvider, logger, queryTimeout),
	}
}

func userModelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		PasswordHash: userModel.PasswordHash,
		CreatedAt:    userModel.CreatedAt,
	}
}

// Create inserts the user and copies the generated ID back onto it
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"username": user.Username,
	})

	userModel := model.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	db, cancel := r.session(ctx)
	defer cancel()

	if err := db.Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("create user", 0, err, errs.ErrUserNotFound)
	}

	user.ID = userModel.ID
	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// GetByUsername retrieves a user by exact, case-sensitive username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var userModel model.User
	if err := db.Where("username = ?", username).Take(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("get user by username", 0, err, errs.ErrUserNotFound)
	}
	return userModelToEntity(&userModel), nil
}
