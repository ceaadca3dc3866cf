package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
)

// User represents a registered player
type User struct {
	ID           uint64    // Assigned by the store on insert
	Username     string    // Unique, case-sensitive
	PasswordHash string    // bcrypt hash, never leaves the server
	CreatedAt    time.Time // When the user registered
}

// Principal is the authenticated identity carried by a session token
type Principal struct {
	UserID   uint64
	Username string
}

// NewUser creates a user that has not been persisted yet
func NewUser(username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", errs.ErrInvalidRequest)
	}

	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// Principal returns the token identity for the user
func (u *User) Principal() Principal {
	return Principal{
		UserID:   u.ID,
		Username: u.Username,
	}
}

// ValidateUsername checks length limits. The username is stored exactly as
// given, so surrounding whitespace is rejected instead of trimmed.
func ValidateUsername(username string) error {
	length := utf8.RuneCountInString(username)
	if length == 0 || length > errs.MaxUsernameLength {
		return errs.ErrInvalidUsername
	}
	if strings.TrimSpace(username) != username {
		return errs.ErrInvalidUsername
	}
	return nil
}

// ValidatePassword checks the password against the hashing limits
func ValidatePassword(password string) error {
	if len(password) == 0 || len(password) > errs.MaxPasswordBytes {
		return errs.ErrInvalidPassword
	}
	return nil
}
