package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"
)

// UserHandler holds the service dependency for back-office user operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

// GetUsers godoc
// @Summary      List all users
// @Description  Admin-only back-office listing.
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string][]models.User
// @Failure      401  {object}  map[string]string
// @Router       /users/all [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	users, err := h.service.GetAll(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// GetOwnApplications godoc
// @Summary      List the logged-in user's applications
// @Description  Applications joined with the postings they target.
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string][]models.UserApplication
// @Router       /users/applications [get]
func (h *UserHandler) GetOwnApplications(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	apps, err := h.service.ListOwnApplications(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": apps})
}

// ChangePassword godoc
// @Summary      Change a password
// @Description  Users verify their current password; admins may reset another
// @Description  account without it.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        change body      dto.ChangePasswordRequest true "Password change"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string "Missing or mismatched current password"
// @Failure      404  {object}  map[string]string
// @Router       /users/forget-password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password & New Password is required"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password & New Password is required", "details": formatValidationErrors(err)})
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), actor, &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
