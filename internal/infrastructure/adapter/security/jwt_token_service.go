package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/security"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long a session token stays valid
const DefaultTokenTTL = 30 * 24 * time.Hour

// minSecretLength guards against trivially guessable HMAC keys
const minSecretLength = 16

// sessionClaims is the JWT payload. id and username mirror the principal;
// sub carries the same id as a string for generic JWT tooling.
type sessionClaims struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTTokenService issues HS256 session tokens
type JWTTokenService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
	parser       *jwt.Parser
}

var _ security.TokenService = (*JWTTokenService)(nil)

// NewJWTTokenService creates a token service signing with secret
func NewJWTTokenService(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTTokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", minSecretLength)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &JWTTokenService{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithTimeFunc(timeProvider.Now),
		),
	}, nil
}

// Issue signs a token for principal
func (s *JWTTokenService) Issue(principal entity.Principal) (string, time.Time, error) {
	now := s.timeProvider.Now()
	claims := sessionClaims{
		ID:       principal.UserID,
		Username: principal.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(principal.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// Verify checks signature and expiry and returns the embedded principal
func (s *JWTTokenService) Verify(token string) (*entity.Principal, error) {
	var claims sessionClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, errs.ErrExpiredToken
	case err != nil:
		return nil, errs.ErrInvalidToken
	}

	if claims.ID == 0 || claims.Username == "" || claims.Subject != strconv.FormatUint(claims.ID, 10) {
		return nil, errs.ErrInvalidToken
	}

	return &entity.Principal{
		UserID:   claims.ID,
		Username: claims.Username,
	}, nil
}
