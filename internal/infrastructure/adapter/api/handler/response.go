package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/dto"
	applogger "github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// respondError maps a use case error to its status and client message.
// Anything unexpected is logged and answered with serverMessage.
func respondError(c *gin.Context, logger coreport.Logger, err error, serverMessage string) {
	status := http.StatusInternalServerError
	message := serverMessage

	switch {
	case domainerr.IsConflictError(err):
		// Registering a taken name has always been a 400
		status = http.StatusBadRequest
		message = "Username already taken"
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsAuthError(err):
		status = http.StatusUnauthorized
		message = "Invalid username or password"
		if domainerr.ErrorCode(err) == domainerr.CodeMissingToken {
			message = "Access token required"
		}
	case domainerr.IsForbiddenError(err):
		status = http.StatusForbidden
		message = "Invalid token"
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = "Not found"
	default:
		fields := map[string]any{
			"path":       c.Request.URL.Path,
			"request_id": applogger.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		}
		var storeErr *domainerr.StoreError
		if errors.As(err, &storeErr) {
			for k, v := range storeErr.LogFields() {
				fields[k] = v
			}
		}
		logger.Error(serverMessage, fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  domainerr.ErrorCode(err),
	})
}

// respondBadRequest answers a request body that could not be bound
func respondBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  domainerr.CodeInvalidRequest,
	})
}
