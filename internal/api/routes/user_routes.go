package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard-api/internal/api/handlers"
)

// RegisterUserRoutes registers the user listing and self-service account
// routes. All require a session.
func RegisterUserRoutes(
	rg *gin.RouterGroup,
	userHandler *handlers.UserHandler,
	authMiddleware gin.HandlerFunc,
) {
	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/all", userHandler.GetUsers)
		users.GET("/applications", userHandler.GetOwnApplications)
		users.PUT("/forget-password", userHandler.ChangePassword)
	}
}
