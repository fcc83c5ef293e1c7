// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
)

const (
	userCtx = "userID" // Key to store user ID in context
	roleCtx = "role"   // Key to store role in context
)

// AuthRequired creates a Gin middleware that authenticates the session
// cookie. On success the user ID and role land in the request context; any
// failure aborts the whole request with 401 before the handler runs.
func AuthRequired(cookieName string, tokens services.TokenService, denylist services.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			log.Println("Auth middleware: session cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			log.Printf("Auth middleware: token verification failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		if denylist != nil && denylist.IsRevoked(c.Request.Context(), tokenString) {
			log.Println("Auth middleware: token has been signed out")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			log.Printf("Auth middleware: error parsing user ID from token subject '%s': %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		// Store identity in context for downstream handlers. The guard is
		// role-agnostic; admin checks happen inside the services.
		c.Set(userCtx, userID)
		c.Set(roleCtx, claims.Role)
		c.Next()
	}
}

// CurrentActor extracts the authenticated identity the guard stored.
func CurrentActor(c *gin.Context) (services.Actor, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return services.Actor{}, errors.New("user ID not found in context")
	}
	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return services.Actor{}, errors.New("user ID in context is of invalid type")
	}

	roleAny, exists := c.Get(roleCtx)
	if !exists {
		return services.Actor{}, errors.New("role not found in context")
	}
	role, ok := roleAny.(models.Role)
	if !ok {
		return services.Actor{}, errors.New("role in context is of invalid type")
	}

	return services.Actor{UserID: userID, Role: role}, nil
}
