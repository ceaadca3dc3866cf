package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
)

// Session is the result of a successful registration or login
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entity.Principal
}

// AuthUseCase handles account creation and session tokens
type AuthUseCase interface {
	// Register creates the user together with a default game save and
	// returns a session for it
	Register(ctx context.Context, username, password string) (*Session, error)

	// Login checks credentials and returns a new session
	Login(ctx context.Context, username, password string) (*Session, error)

	// VerifyToken validates a session token and returns its identity
	VerifyToken(ctx context.Context, token string) (*entity.Principal, error)
}
