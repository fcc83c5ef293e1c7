package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"
)

// AuthHandler holds the dependencies for registration and session endpoints.
type AuthHandler struct {
	service   services.AuthService
	cookie    *SessionCookie
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthService, cookie *SessionCookie, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, cookie: cookie, validator: validate}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an identity record with a hashed password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true  "Registration fields"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string "Missing fields or duplicate email"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required", "details": formatValidationErrors(err)})
		return
	}

	_, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		// Duplicate email answers 400 on this route, matching the public
		// registration form's contract.
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User with email already exists"})
			return
		}
		log.Printf("Error registering user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Email and password"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string "Wrong password"
// @Failure      404  {object}  map[string]string "Unknown email"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required", "details": formatValidationErrors(err)})
		return
	}

	_, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User with email does not exist"})
		case errors.Is(err, services.ErrInvalidCredentials):
			// A wrong password is an auth failure, 401.
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Credentials"})
		default:
			log.Printf("Error logging in: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	h.cookie.Set(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "User logged in successfully"})
}

// Signout godoc
// @Summary      Sign out
// @Description  Clears the session cookie and revokes the token.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/signout [post]
func (h *AuthHandler) Signout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		if err := h.service.Signout(c.Request.Context(), token); err != nil {
			log.Printf("Error revoking token on signout: %v", err)
		}
	}

	h.cookie.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout Success!"})
}

// ValidateToken godoc
// @Summary      Validate the session
// @Description  Confirms the session cookie is valid; the guard has already run.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/validate-token [get]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": actor.UserID.String()})
}
