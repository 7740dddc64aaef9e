package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/techiepookie/electronics-inventory-dashboard/internal/config"
	"github.com/techiepookie/electronics-inventory-dashboard/pkg/errors"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	jwtManager *JWTManager
	username   string
	password   string
	logger     *zap.Logger
}

// NewAuthHandler creates a new auth handler validating against the configured
// credential pair.
func NewAuthHandler(jwtManager *JWTManager, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		jwtManager: jwtManager,
		username:   cfg.InventoryUsername,
		password:   cfg.InventoryPassword,
		logger:     logger,
	}
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"inventory123"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Type      string    `json:"type" example:"Bearer"`
	ExpiresIn int       `json:"expires_in" example:"43200"` // Session duration in seconds
	ExpiresAt time.Time `json:"expires_at" example:"2024-01-15T22:00:00Z"`
}

// Login handles POST /api/v1/auth/login
// @Summary      Login and get a session token
// @Description  Authenticates the inventory user against the configured credential pair and returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest   true  "Login credentials"
// @Success      200      {object}  LoginResponse  "Session token"
// @Failure      400      {object}  errors.StandardError  "Missing credentials"
// @Failure      401      {object}  errors.StandardError  "Invalid credentials"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, errors.NewValidationError("invalid request", "username or password"))
		return
	}

	if !h.Authenticate(req.Username, req.Password) {
		h.logger.Warn("Invalid credentials",
			zap.String("username", req.Username),
		)
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("invalid credentials", "username or password incorrect"))
		return
	}

	token, err := h.jwtManager.GenerateToken(req.Username)
	if err != nil {
		h.logger.Error("Failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("failed to generate token", err))
		return
	}

	expiresAt := time.Now().Add(SessionDuration)
	response := LoginResponse{
		Token:     token,
		Type:      "Bearer",
		ExpiresIn: int(SessionDuration.Seconds()),
		ExpiresAt: expiresAt,
	}

	h.logger.Info("User logged in successfully",
		zap.String("username", req.Username),
		zap.Time("expires_at", expiresAt),
	)

	c.JSON(http.StatusOK, response)
}

// Authenticate compares the submitted pair against the configured secrets.
// Exact, case-sensitive match on both; no lockout, no rate limiting.
func (h *AuthHandler) Authenticate(username, password string) bool {
	return username == h.username && password == h.password
}
