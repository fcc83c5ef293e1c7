package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard-api/internal/api/handlers"
)

// RegisterProfileRoutes registers the logged-in user's profile routes.
func RegisterProfileRoutes(
	rg *gin.RouterGroup,
	profileHandler *handlers.ProfileHandler,
	authMiddleware gin.HandlerFunc,
) {
	profile := rg.Group("/profile")
	profile.Use(authMiddleware)
	{
		profile.GET("/user", profileHandler.GetLoggedInUser)
		profile.GET("/role", profileHandler.GetRole)
		profile.PUT("/update", profileHandler.UpdateProfile)
		profile.DELETE("/delete", profileHandler.DeleteAccount)
	}
}
