package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest     = 4000
	CodeInvalidCredentials = 4010
	CodeMissingToken       = 4011
	CodeInvalidToken       = 4030
	CodeExpiredToken       = 4031
	CodeUserNotFound       = 4040
	CodeSaveNotFound       = 4041
	CodeUsernameTaken      = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request payload fails validation
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidUsername is returned when a username is empty or too long
	ErrInvalidUsername = fmt.Errorf("%w: username must be between 1 and %d characters", ErrInvalidRequest, MaxUsernameLength)

	// ErrInvalidPassword is returned when a password is empty or exceeds the hashing limit
	ErrInvalidPassword = fmt.Errorf("%w: password must be between 1 and %d bytes", ErrInvalidRequest, MaxPasswordBytes)

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = fmt.Errorf("%w: user ID must be positive", ErrInvalidRequest)

	// ErrUsernameTaken is returned when registering a username that already exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	// Both cases share this error so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrMissingToken is returned when no bearer token accompanies a protected request
	ErrMissingToken = errors.New("missing or malformed authorization header")

	// ErrInvalidToken is returned when a token signature or format is invalid
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is past its expiry
	ErrExpiredToken = errors.New("token expired")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrSaveNotFound is returned when a user has no game save yet
	ErrSaveNotFound = errors.New("game save not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned by the store when a unique user constraint is violated
	ErrDuplicateUser = errors.New("user already exists")

	// ErrTransientConflict is returned when the store aborted an operation due to
	// a deadlock or serialization failure
	ErrTransientConflict = errors.New("transient database conflict")
)

// Input limits
const (
	MaxUsernameLength = 50
	// MaxPasswordBytes is the bcrypt input limit
	MaxPasswordBytes = 72
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrMissingToken):
		return CodeMissingToken
	case errors.Is(err, ErrExpiredToken):
		return CodeExpiredToken
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrSaveNotFound):
		return CodeSaveNotFound
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrDuplicateUser):
		return CodeUsernameTaken
	case errors.Is(err, ErrDatabaseConnection), errors.Is(err, ErrTransientConflict):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// StoreError carries the failed operation alongside the classified store error
type StoreError struct {
	Operation string
	UserID    uint64
	Err       error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %q failed for user %d: %v", e.Operation, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewStoreError wraps err with the operation that produced it
func NewStoreError(operation string, userID uint64, err error) error {
	return &StoreError{
		Operation: operation,
		UserID:    userID,
		Err:       err,
	}
}

// IsAuthError checks if the error should be answered with 401
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrMissingToken)
}

// IsForbiddenError checks if the error is a rejected token
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrSaveNotFound)
}

// IsConflictError checks if the error is a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrDuplicateUser)
}

// IsValidationError checks if the error is a client input error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}
