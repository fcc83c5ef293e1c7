package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard-api/internal/api/handlers"
)

// RegisterApplicationRoutes registers all routes related to job applications.
// Every route requires a session; the back-office reads and status updates
// additionally require the admin role, enforced in the service.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler *handlers.ApplicationHandler,
	authMiddleware gin.HandlerFunc,
) {
	applications := rg.Group("/application")
	applications.Use(authMiddleware)
	{
		applications.POST("/create/:id", applicationHandler.Apply)
		applications.GET("/all", applicationHandler.ListApplications)
		applications.GET("/:id", applicationHandler.GetApplicationByID)
		applications.PUT("/update/:id", applicationHandler.UpdateStatus)
		applications.DELETE("/delete/:id", applicationHandler.DeleteApplication)
	}
}
