package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/persistence"
	securitymocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/security"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

type authMocks struct {
	uow      *persistencemocks.MockUnitOfWork
	users    *persistencemocks.MockUserRepository
	saves    *persistencemocks.MockSaveRepository
	hasher   *securitymocks.MockPasswordHasher
	tokens   *securitymocks.MockTokenService
	clock    *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
	useCase  *AuthUseCase
	fixedNow time.Time
}

func newAuthMocks(t *testing.T) *authMocks {
	m := &authMocks{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		users:    persistencemocks.NewMockUserRepository(t),
		saves:    persistencemocks.NewMockSaveRepository(t),
		hasher:   securitymocks.NewMockPasswordHasher(t),
		tokens:   securitymocks.NewMockTokenService(t),
		clock:    coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
		fixedNow: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
	m.clock.EXPECT().Now().Return(m.fixedNow).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	m.useCase = NewAuthUseCase(m.uow, m.users, m.hasher, m.tokens, m.clock, m.logger)
	return m
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey{}, "tx")

	t.Run("Successful registration", func(t *testing.T) {
		m := newAuthMocks(t)
		expiresAt := m.fixedNow.Add(30 * 24 * time.Hour)

		m.hasher.EXPECT().Hash("hunter2").Return("hashed-hunter2", nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.users).Once()
		m.users.EXPECT().Create(txCtx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.PasswordHash == "hashed-hunter2"
		})).Run(func(_ context.Context, u *entity.User) {
			u.ID = 7
		}).Return(nil).Once()
		m.uow.EXPECT().GetSaveRepository(txCtx).Return(m.saves).Once()
		m.saves.EXPECT().CreateIfAbsent(txCtx, mock.MatchedBy(func(s *entity.GameSave) bool {
			return s.UserID == 7 && s.Loc.IsZero() && s.LocPerClick.Equal(decimal.NewFromInt(1)) &&
				s.GameVersion == entity.DefaultGameVersion
		})).Return(true, nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.tokens.EXPECT().Issue(entity.Principal{UserID: 7, Username: "alice"}).Return("signed-token", expiresAt, nil).Once()

		session, err := m.useCase.Register(ctx, "alice", "hunter2")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", session.Token)
		assert.Equal(t, expiresAt, session.ExpiresAt)
		assert.Equal(t, entity.Principal{UserID: 7, Username: "alice"}, session.User)
	})

	t.Run("Username already taken", func(t *testing.T) {
		m := newAuthMocks(t)

		m.hasher.EXPECT().Hash("hunter2").Return("hashed", nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.users).Once()
		m.users.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrDuplicateUser).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		session, err := m.useCase.Register(ctx, "alice", "hunter2")

		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
		assert.Nil(t, session)
	})

	t.Run("Default save failure rolls back", func(t *testing.T) {
		m := newAuthMocks(t)
		storeErr := errs.NewStoreError("create save", 7, errs.ErrDatabaseConnection)

		m.hasher.EXPECT().Hash("hunter2").Return("hashed", nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.users).Once()
		m.users.EXPECT().Create(txCtx, mock.Anything).Run(func(_ context.Context, u *entity.User) {
			u.ID = 7
		}).Return(nil).Once()
		m.uow.EXPECT().GetSaveRepository(txCtx).Return(m.saves).Once()
		m.saves.EXPECT().CreateIfAbsent(txCtx, mock.Anything).Return(false, storeErr).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		session, err := m.useCase.Register(ctx, "alice", "hunter2")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, session)
	})

	t.Run("Invalid input is rejected before hashing", func(t *testing.T) {
		testCases := []struct {
			name     string
			username string
			password string
			expected error
		}{
			{"empty username", "", "pw", errs.ErrInvalidUsername},
			{"padded username", " alice", "pw", errs.ErrInvalidUsername},
			{"empty password", "alice", "", errs.ErrInvalidPassword},
			{"long password", "alice", string(make([]byte, errs.MaxPasswordBytes+1)), errs.ErrInvalidPassword},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				m := newAuthMocks(t)

				session, err := m.useCase.Register(ctx, tc.username, tc.password)

				assert.ErrorIs(t, err, tc.expected)
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				assert.Nil(t, session)
			})
		}
	})

	t.Run("Hashing failure", func(t *testing.T) {
		m := newAuthMocks(t)
		m.hasher.EXPECT().Hash("hunter2").Return("", errors.New("entropy exhausted")).Once()

		session, err := m.useCase.Register(ctx, "alice", "hunter2")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.Nil(t, session)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	stored := &entity.User{ID: 7, Username: "alice", PasswordHash: "hashed-hunter2"}

	t.Run("Successful login", func(t *testing.T) {
		m := newAuthMocks(t)
		expiresAt := m.fixedNow.Add(time.Hour)

		m.users.EXPECT().GetByUsername(ctx, "alice").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("hashed-hunter2", "hunter2").Return(nil).Once()
		m.tokens.EXPECT().Issue(entity.Principal{UserID: 7, Username: "alice"}).Return("signed-token", expiresAt, nil).Once()

		session, err := m.useCase.Login(ctx, "alice", "hunter2")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", session.Token)
		assert.Equal(t, uint64(7), session.User.UserID)
	})

	t.Run("Wrong password and unknown user fail identically", func(t *testing.T) {
		m := newAuthMocks(t)

		m.users.EXPECT().GetByUsername(ctx, "alice").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("hashed-hunter2", "wrong").Return(errors.New("mismatch")).Once()

		m.users.EXPECT().GetByUsername(ctx, "nobody").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
		m.hasher.EXPECT().Compare("dummy-hash", "wrong").Return(errors.New("mismatch")).Once()

		_, wrongPasswordErr := m.useCase.Login(ctx, "alice", "wrong")
		_, unknownUserErr := m.useCase.Login(ctx, "nobody", "wrong")

		assert.ErrorIs(t, wrongPasswordErr, errs.ErrInvalidCredentials)
		assert.Equal(t, wrongPasswordErr, unknownUserErr)
	})

	t.Run("Timing hash is prepared once", func(t *testing.T) {
		m := newAuthMocks(t)

		m.users.EXPECT().GetByUsername(ctx, "nobody").Return(nil, errs.ErrUserNotFound).Twice()
		m.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
		m.hasher.EXPECT().Compare("dummy-hash", mock.Anything).Return(errors.New("mismatch")).Twice()

		_, err := m.useCase.Login(ctx, "nobody", "a")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		_, err = m.useCase.Login(ctx, "nobody", "b")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Timing hash falls back when hashing fails", func(t *testing.T) {
		m := newAuthMocks(t)

		m.users.EXPECT().GetByUsername(ctx, "nobody").Return(nil, errs.ErrUserNotFound).Twice()
		m.hasher.EXPECT().Hash(dummyPassword).Return("", errors.New("entropy exhausted")).Once()
		m.hasher.EXPECT().Compare(fallbackTimingHash, mock.Anything).Return(errors.New("mismatch")).Twice()

		_, err := m.useCase.Login(ctx, "nobody", "a")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		_, err = m.useCase.Login(ctx, "nobody", "b")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Store failure is not reported as bad credentials", func(t *testing.T) {
		m := newAuthMocks(t)

		m.users.EXPECT().GetByUsername(ctx, "alice").Return(nil, errs.ErrDatabaseConnection).Once()

		session, err := m.useCase.Login(ctx, "alice", "hunter2")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, session)
	})
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty token", func(t *testing.T) {
		m := newAuthMocks(t)

		principal, err := m.useCase.VerifyToken(ctx, "")

		assert.ErrorIs(t, err, errs.ErrMissingToken)
		assert.Nil(t, principal)
	})

	t.Run("Delegates to token service", func(t *testing.T) {
		m := newAuthMocks(t)
		expected := &entity.Principal{UserID: 7, Username: "alice"}
		m.tokens.EXPECT().Verify("signed-token").Return(expected, nil).Once()
		m.tokens.EXPECT().Verify("stale-token").Return(nil, errs.ErrExpiredToken).Once()

		principal, err := m.useCase.VerifyToken(ctx, "signed-token")
		require.NoError(t, err)
		assert.Equal(t, expected, principal)

		_, err = m.useCase.VerifyToken(ctx, "stale-token")
		assert.ErrorIs(t, err, errs.ErrExpiredToken)
	})
}
