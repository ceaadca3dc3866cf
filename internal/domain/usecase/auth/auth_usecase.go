package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/security"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/usecase/unitofwork"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown user, so both failure paths cost one bcrypt comparison
const dummyPassword = "code-clicker-timing-equalizer"

// fallbackTimingHash is a cost-10 bcrypt hash used when dummyPassword cannot be hashed
const fallbackTimingHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthUseCase handles registration, login and token verification
type AuthUseCase struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	dummyOnce sync.Once
	dummyHash string
}

// Ensure AuthUseCase implements the port
var _ usecase.AuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		uow:          uow,
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates the user and their starting save in one transaction
func (a *AuthUseCase) Register(ctx context.Context, username, password string) (*usecase.Session, error) {
	if err := entity.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(password); err != nil {
		return nil, err
	}

	// Hash outside the transaction so the row locks are held only for the inserts.
	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(username, hash, a.timeProvider)
	if err != nil {
		return nil, err
	}

	err = unitofwork.Run(ctx, a.uow, a.logger, func(txCtx context.Context) error {
		if err := a.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
			if errors.Is(err, errs.ErrDuplicateUser) {
				return errs.ErrUsernameTaken
			}
			return err
		}

		save, err := entity.NewDefaultGameSave(user.ID, a.timeProvider)
		if err != nil {
			return err
		}
		_, err = a.uow.GetSaveRepository(txCtx).CreateIfAbsent(txCtx, save)
		return err
	})
	if err != nil {
		if !errors.Is(err, errs.ErrUsernameTaken) {
			a.logger.Error("Failed to register user", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	session, err := a.issue(user.Principal())
	if err != nil {
		return nil, err
	}

	a.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return session, nil
}

// Login verifies credentials and issues a new session
func (a *AuthUseCase) Login(ctx context.Context, username, password string) (*usecase.Session, error) {
	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			a.logger.Error("Failed to look up user", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
			return nil, err
		}

		_ = a.hasher.Compare(a.timingHash(), password)
		return nil, errs.ErrInvalidCredentials
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Debug("Password mismatch", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return a.issue(user.Principal())
}

// VerifyToken returns the principal carried by a valid token
func (a *AuthUseCase) VerifyToken(_ context.Context, token string) (*entity.Principal, error) {
	if token == "" {
		return nil, errs.ErrMissingToken
	}
	return a.tokens.Verify(token)
}

func (a *AuthUseCase) issue(principal entity.Principal) (*usecase.Session, error) {
	token, expiresAt, err := a.tokens.Issue(principal)
	if err != nil {
		a.logger.Error("Failed to issue token", map[string]any{
			"user_id": principal.UserID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	return &usecase.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      principal,
	}, nil
}

func (a *AuthUseCase) timingHash() string {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Warn("Failed to prepare timing hash, using fallback", map[string]any{
				"error": err.Error(),
			})
			hash = fallbackTimingHash
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}
