package handlers

import (
	"net/http"

	"fleetrent/internal/config"
	"fleetrent/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	security *config.SecurityConfig
}

func NewAuthHandler(security *config.SecurityConfig) *AuthHandler {
	return &AuthHandler{security: security}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login issues an admin JWT when the configured credentials match.
func (h *AuthHandler) Login(c *gin.Context) {
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if request.Username != h.security.AdminUsername {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", utils.ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.security.AdminPasswordHash), []byte(request.Password)); err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", utils.ErrInvalidCredentials)
		return
	}

	token, err := utils.GenerateAdminToken(request.Username, h.security.JWTSecret)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Login successful", token)
}
