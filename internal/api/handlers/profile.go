package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"
)

// ProfileHandler holds the service dependency for self-service profile
// operations.
type ProfileHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service services.UserService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{service: service, validator: validate}
}

// GetLoggedInUser godoc
// @Summary      Get the logged-in user's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  map[string]models.User
// @Failure      404  {object}  map[string]string
// @Router       /profile/user [get]
func (h *ProfileHandler) GetLoggedInUser(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), &dto.GetUserByIdRequest{ID: actor.UserID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// UpdateProfile godoc
// @Summary      Update a profile
// @Description  Sparse patch. Users patch their own names and gender; admins
// @Description  may target another user by id and change roles.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        patch body      dto.UpdateProfileRequest true "Fields to change"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string "Empty patch"
// @Failure      404  {object}  map[string]string
// @Router       /profile/update [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	if _, err := h.service.UpdateProfile(c.Request.Context(), actor, &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// DeleteAccount godoc
// @Summary      Delete an account
// @Description  Users delete their own account; admins may delete any.
// @Description  Owned applications cascade.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        target body      dto.DeleteUserRequest true "Account ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string "Missing id"
// @Failure      404  {object}  map[string]string
// @Router       /profile/delete [delete]
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All Fields are required"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All Fields are required", "details": formatValidationErrors(err)})
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), actor, &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account Deleted Successfully"})
}

// GetRole godoc
// @Summary      Get the logged-in user's role
// @Tags         profile
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /profile/role [get]
func (h *ProfileHandler) GetRole(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": actor.Role})
}
