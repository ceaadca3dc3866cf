package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	session, err := h.authUseCase.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, newSessionResponse("User created successfully", session))
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	session, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, newSessionResponse("Login successful", session))
}

func newSessionResponse(message string, session *usecase.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Message: message,
		User: dto.UserResponse{
			ID:       session.User.UserID,
			Username: session.User.Username,
		},
		Token: session.Token,
	}
}
