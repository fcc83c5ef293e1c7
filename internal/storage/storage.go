package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetDocumentURL(ctx context.Context, req *dto.SetDocumentURLRequest) error
	IncrementApplications(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, req *dto.DeleteUserRequest) error
	WithTx(tx pgx.Tx) UserRepository
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	GetAll(ctx context.Context) ([]models.JobPosting, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.JobPosting, error)
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.JobPosting, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.JobPosting, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
	WithTx(tx pgx.Tx) JobRepository
}

// ApplicationRepository defines the interface for job application data
// operations, including the joined read projections.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.JobApplication, error)
	GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error)
	ListAll(ctx context.Context) ([]models.ApplicationDetail, error)
	ListByUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) ([]models.UserApplication, error)
	ExistsByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
	WithTx(tx pgx.Tx) ApplicationRepository
}
