package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard-api/internal/api/handlers"
)

// RegisterUploadRoutes registers the multipart document upload routes.
func RegisterUploadRoutes(
	rg *gin.RouterGroup,
	uploadHandler *handlers.UploadHandler,
	authMiddleware gin.HandlerFunc,
) {
	uploads := rg.Group("/uploads")
	uploads.Use(authMiddleware)
	{
		uploads.POST("/upload-cv", uploadHandler.UploadCV)
		uploads.POST("/upload-cover-letter", uploadHandler.UploadCoverLetter)
		uploads.POST("/upload-profile-image", uploadHandler.UploadProfileImage)
	}
}
