package http

import (
	"net/http"

	"blog-backend/pkg/config"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	cfg        *config.Config
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthHandler(cfg *config.Config, jwtService *jwt.Service, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, jwtService: jwtService, logger: logger}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges admin credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if req.Username != h.cfg.AdminUsername || !h.checkPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username, "admin")
	if err != nil {
		h.logger.Error("Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// checkPassword prefers the bcrypt hash when one is configured and falls back
// to a plain comparison for local setups.
func (h *AuthHandler) checkPassword(password string) bool {
	if h.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return h.cfg.AdminPassword != "" && password == h.cfg.AdminPassword
}
