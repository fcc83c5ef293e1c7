package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard-api/internal/models"
)

// --- Job Posting Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
// Every field is required at creation; partial updates come later through
// UpdateJobRequest.
type CreateJobRequest struct {
	Title            string                 `json:"title" validate:"required,max=255"`
	Description      string                 `json:"description" validate:"required"`
	Location         models.JobLocation     `json:"location" validate:"required,oneof=remote onsite"`
	Status           models.JobStatus       `json:"status" validate:"required,oneof=open closed paused"`
	Requirements     string                 `json:"requirements" validate:"required"`
	Responsibilities string                 `json:"responsibilities" validate:"required"`
	Qualifications   string                 `json:"qualifications" validate:"required"`
	Skills           string                 `json:"skills" validate:"required"`
	Department       string                 `json:"department" validate:"required"`
	Type             models.JobType         `json:"type" validate:"required,oneof=full-time part-time contract locum"`
	Experience       models.ExperienceLevel `json:"experience" validate:"required,oneof=intern entry mid senior lead"`
	Salary           string                 `json:"salary" validate:"required,max=255"`
	Deadline         time.Time              `json:"deadline" validate:"required"`
}

// GetJobByIDRequest defines the structure for getting a posting by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// UpdateJobRequest defines the sparse patch for a posting. Only non-nil
// fields are written; an all-nil patch is rejected before reaching the store.
type UpdateJobRequest struct {
	ID               uuid.UUID               `json:"-" validate:"required"`
	Title            *string                 `json:"title" validate:"omitempty,max=255"`
	Description      *string                 `json:"description" validate:"omitempty"`
	Location         *models.JobLocation     `json:"location" validate:"omitempty,oneof=remote onsite"`
	Status           *models.JobStatus       `json:"status" validate:"omitempty,oneof=open closed paused"`
	Requirements     *string                 `json:"requirements" validate:"omitempty"`
	Responsibilities *string                 `json:"responsibilities" validate:"omitempty"`
	Qualifications   *string                 `json:"qualifications" validate:"omitempty"`
	Skills           *string                 `json:"skills" validate:"omitempty"`
	Department       *string                 `json:"department" validate:"omitempty"`
	Type             *models.JobType         `json:"type" validate:"omitempty,oneof=full-time part-time contract locum"`
	Experience       *models.ExperienceLevel `json:"experience" validate:"omitempty,oneof=intern entry mid senior lead"`
	Salary           *string                 `json:"salary" validate:"omitempty,max=255"`
	Deadline         *time.Time              `json:"deadline" validate:"omitempty"`
}

// DeleteJobRequest defines the structure for deleting a posting.
type DeleteJobRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}
