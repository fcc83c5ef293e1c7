package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"
)

// ApplicationHandler holds the service dependency for application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Creates an application for the logged-in user and bumps their
// @Description  applications counter atomically.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Job posting ID"
// @Success      201  {object}  map[string]string
// @Failure      404  {object}  map[string]string "Job or user missing"
// @Failure      409  {object}  map[string]string "Already applied"
// @Router       /application/create/{id} [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	req := dto.ApplyToJobRequest{UserID: actor.UserID, JobID: jobID}
	application, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job application submitted successfully", "data": application})
}

// ListApplications godoc
// @Summary      List all applications with candidate and posting details
// @Description  Admin-only joined projection for the back office.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  map[string][]models.ApplicationDetail
// @Failure      401  {object}  map[string]string
// @Router       /application/all [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	details, err := h.service.ListApplications(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": details})
}

// GetApplicationByID godoc
// @Summary      Get one application with candidate and posting details
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  map[string]models.ApplicationDetail
// @Failure      404  {object}  map[string]string
// @Router       /application/{id} [get]
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job application not found"})
		return
	}

	detail, err := h.service.GetApplicationByID(c.Request.Context(), actor, &dto.GetApplicationByIDRequest{ID: id})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// UpdateStatus godoc
// @Summary      Move an application to a new status
// @Description  Admin-only; the five statuses carry no ordering rule.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      string                              true "Application ID"
// @Param        status body      dto.UpdateApplicationStatusRequest true "New status"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /application/update/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job application not found"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Application Id Or Status Is Missing"})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	if _, err := h.service.UpdateStatus(c.Request.Context(), actor, &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job application updated successfully"})
}

// DeleteApplication godoc
// @Summary      Delete an application
// @Description  Admins delete any application; users may withdraw their own.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /application/delete/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job application not found"})
		return
	}

	if err := h.service.DeleteApplication(c.Request.Context(), actor, &dto.DeleteApplicationRequest{ID: id}); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job Application Deleted"})
}
