package security

import (
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
)

// PasswordHasher turns plaintext passwords into salted one-way hashes
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash
	Compare(hash, password string) error
}

// TokenService issues and verifies signed session tokens
type TokenService interface {
	Issue(principal entity.Principal) (token string, expiresAt time.Time, err error)
	Verify(token string) (*entity.Principal, error)
}
