package security

import (
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/code-clicker-api/mocks/port/core"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "a-test-secret-of-sufficient-length"

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func newTokenService(t *testing.T, c *clock, secret string) *JWTTokenService {
	t.Helper()

	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().RunAndReturn(c.Now).Maybe()

	service, err := NewJWTTokenService(secret, time.Hour, timeProvider)
	require.NoError(t, err)
	return service
}

func TestJWTTokenService_RoundTrip(t *testing.T) {
	c := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	service := newTokenService(t, c, testSecret)

	token, expiresAt, err := service.Issue(entity.Principal{UserID: 42, Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, c.now.Add(time.Hour), expiresAt)
	assert.Len(t, strings.Split(token, "."), 3)

	principal, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, &entity.Principal{UserID: 42, Username: "alice"}, principal)
}

func TestJWTTokenService_Expired(t *testing.T) {
	c := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	service := newTokenService(t, c, testSecret)

	token, _, err := service.Issue(entity.Principal{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	c.now = c.now.Add(2 * time.Hour)
	_, err = service.Verify(token)
	assert.ErrorIs(t, err, errs.ErrExpiredToken)
}

func TestJWTTokenService_RejectsForeignTokens(t *testing.T) {
	c := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	service := newTokenService(t, c, testSecret)
	other := newTokenService(t, c, "another-secret-entirely-different")

	forged, _, err := other.Issue(entity.Principal{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id": 1, "username": "bob", "sub": "1",
		"exp": c.now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": 1, "username": "bob", "sub": "1",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": forged,
		"alg none":     unsigned,
		"no expiry":    noExpiry,
		"garbage":      "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := service.Verify(token)
			assert.ErrorIs(t, err, errs.ErrInvalidToken)
		})
	}
}

func TestNewJWTTokenService_ShortSecret(t *testing.T) {
	_, err := NewJWTTokenService("short", time.Hour, coremocks.NewMockTimeProvider(t))
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, hasher.Compare(hash, "hunter2"))
	assert.ErrorIs(t, hasher.Compare(hash, "hunter3"), errs.ErrInvalidCredentials)
	assert.Error(t, hasher.Compare("not-a-hash", "hunter2"))

	second, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, hash, second, "hashes are salted")
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	hasher, err := NewBcryptHasher(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, hasher.cost)

	_, err = NewBcryptHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}
