package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard-api/internal/api/handlers"
)

// RegisterAuthRoutes registers registration and session routes. Register and
// login are the only open mutation endpoints; signout and token validation
// require a live session.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	authMiddleware gin.HandlerFunc,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/signout", authMiddleware, authHandler.Signout)
		auth.GET("/validate-token", authMiddleware, authHandler.ValidateToken)
	}
}
