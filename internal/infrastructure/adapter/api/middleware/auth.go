package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Auth requires a valid "Authorization: Bearer <token>" header. A missing
// or malformed header is 401; a token that fails verification is 403.
func Auth(auth usecase.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortAuth(c, http.StatusUnauthorized, domainerr.ErrMissingToken, "Access token required")
			return
		}

		principal, err := auth.VerifyToken(c.Request.Context(), token)
		switch {
		case errors.Is(err, domainerr.ErrMissingToken):
			abortAuth(c, http.StatusUnauthorized, err, "Access token required")
			return
		case errors.Is(err, domainerr.ErrExpiredToken):
			abortAuth(c, http.StatusForbidden, err, "Token expired")
			return
		case err != nil:
			abortAuth(c, http.StatusForbidden, domainerr.ErrInvalidToken, "Invalid token")
			return
		}

		SetPrincipal(c, *principal)
		c.Next()
	}
}

// SetPrincipal attaches an authenticated identity to the request
func SetPrincipal(c *gin.Context, principal entity.Principal) {
	c.Set(principalKey, principal)
}

// PrincipalFrom returns the identity attached by Auth
func PrincipalFrom(c *gin.Context) (entity.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return entity.Principal{}, false
	}
	principal, ok := value.(entity.Principal)
	return principal, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortAuth(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:  domainerr.ErrorCode(err),
		Error: message,
	})
}
