package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard-api/internal/api/handlers"
)

// RegisterJobRoutes registers all routes related to job postings. Listing
// and reading are public; every mutation goes through the auth middleware
// and the service enforces the admin check.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/job")
	{
		jobs.GET("/all", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.POST("/create", authMiddleware, jobHandler.CreateJob)
		jobs.PUT("/update/:id", authMiddleware, jobHandler.UpdateJob)
		jobs.DELETE("/delete/:id", authMiddleware, jobHandler.DeleteJob)
	}
}
