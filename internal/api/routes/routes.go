package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"
)

// RegisterRoutes sets up the API routes by calling resource-specific
// registration functions.
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	// --- Handlers ---
	cookie := handlers.NewSessionCookie(
		app.Config.JWT.CookieName,
		int(app.Config.JWT.Expiration.Seconds()),
		app.Config.Server.Production,
	)
	authHandler := handlers.NewAuthHandler(app.AuthService, cookie, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	userHandler := handlers.NewUserHandler(app.UserService, app.Validator)
	profileHandler := handlers.NewProfileHandler(app.UserService, app.Validator)
	uploadHandler := handlers.NewUploadHandler(app.UploadService, app.Config.Uploads.MaxSizeBytes)

	// --- Middleware ---
	authMiddleware := middleware.AuthRequired(app.Config.JWT.CookieName, app.Tokens, app.Denylist)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(api, authHandler, authMiddleware)
	RegisterJobRoutes(api, jobHandler, authMiddleware)
	RegisterApplicationRoutes(api, applicationHandler, authMiddleware)
	RegisterUserRoutes(api, userHandler, authMiddleware)
	RegisterProfileRoutes(api, profileHandler, authMiddleware)
	RegisterUploadRoutes(api, uploadHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Routes registered")
}
