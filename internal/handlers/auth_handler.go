package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services"
)

// AuthHandler handles owner authentication requests
type AuthHandler struct {
	authService services.AuthServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Password string `json:"password" binding:"required,max=128"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles owner login
// @Summary     Login
// @Description Exchange the ledger owner password for a bearer token. Returns AUTH_DISABLED when no password is configured.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Owner password"
// @Success     200 {object} AuthResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input or authentication disabled"
// @Failure     401 {object} ErrorResponse "Invalid password"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.authService.Enabled() {
		respondWithError(c, apperrors.ErrAuthDisabled)
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	token, expiresAt, err := h.authService.Login(req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, ExpiresAt: expiresAt})
}
