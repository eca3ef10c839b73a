package routes

import (
	"fleetrent/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the admin login route.
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}
}
