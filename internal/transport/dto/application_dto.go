package dto

import (
	"github.com/google/uuid"

	"jobboard-api/internal/models"
)

// ApplyToJobRequest defines the structure for applying to a posting.
// UserID comes from the auth context, JobID from the URL path.
type ApplyToJobRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
	JobID  uuid.UUID `json:"-" validate:"required"`
}

// CreateApplicationRequest is the repository-level insert shape.
type CreateApplicationRequest struct {
	UserID uuid.UUID
	JobID  uuid.UUID
	Status models.ApplicationStatus
}

// GetApplicationByIDRequest defines the structure for reading one application.
type GetApplicationByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListApplicationsByUserRequest lists the applications owned by one user.
type ListApplicationsByUserRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
}

// UpdateApplicationStatusRequest moves an application to a new status.
// No pipeline ordering is enforced; any status is reachable from any other.
type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID                `json:"-" validate:"required"`
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=Applied Interview Screening Rejected Accepted"`
}

// DeleteApplicationRequest defines the structure for deleting an application.
type DeleteApplicationRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}
