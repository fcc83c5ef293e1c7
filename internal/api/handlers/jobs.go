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

// JobHandler holds the service dependency for job posting operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// ListJobs godoc
// @Summary      List all job postings
// @Description  Public read of every posting, newest first.
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  map[string][]models.JobPosting
// @Router       /job/all [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": jobs})
}

// GetJobByID godoc
// @Summary      Get a job posting by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job posting ID"
// @Success      200  {object}  map[string]models.JobPosting
// @Failure      404  {object}  map[string]string
// @Router       /job/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job posting not found"})
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), &dto.GetJobByIDRequest{ID: id})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": job})
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Admin-only; every field is required at creation.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true "Posting fields"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string "Missing fields"
// @Failure      401  {object}  map[string]string "Not an admin"
// @Router       /job/create [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required", "details": formatValidationErrors(err)})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job posting created successfully", "data": job})
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Admin-only sparse patch; at least one field must be present.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id  path      string               true "Job posting ID"
// @Param        job body      dto.UpdateJobRequest true "Fields to change"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string "Empty patch or invalid deadline"
// @Failure      401  {object}  map[string]string "Not an admin"
// @Failure      404  {object}  map[string]string
// @Router       /job/update/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job posting not found"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job posting updated successfully", "data": job})
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Admin-only; applications referencing the posting cascade.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job posting ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string "Not an admin"
// @Failure      404  {object}  map[string]string
// @Router       /job/delete/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job posting not found"})
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), actor, &dto.DeleteJobRequest{ID: id}); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job posting deleted"})
}
