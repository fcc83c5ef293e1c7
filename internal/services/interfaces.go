package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"
)

// TokenService mints and verifies the signed session credential. Tokens are
// self-contained; verification never touches the store.
type TokenService interface {
	Issue(userID uuid.UUID, role models.Role) (string, error)
	Verify(token string) (*TokenClaims, error)
	Lifetime() time.Duration
}

// TokenDenylist records signed-out tokens until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) bool
}

// AuthService defines the interface for registration and session management.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
	Signout(ctx context.Context, token string) error
}

// JobService defines the interface for job posting business logic.
type JobService interface {
	CreateJob(ctx context.Context, actor Actor, req *dto.CreateJobRequest) (*models.JobPosting, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.JobPosting, error)
	ListJobs(ctx context.Context) ([]models.JobPosting, error)
	UpdateJob(ctx context.Context, actor Actor, req *dto.UpdateJobRequest) (*models.JobPosting, error)
	DeleteJob(ctx context.Context, actor Actor, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the interface for job application business logic.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error)
	GetApplicationByID(ctx context.Context, actor Actor, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error)
	ListApplications(ctx context.Context, actor Actor) ([]models.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, actor Actor, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error)
	DeleteApplication(ctx context.Context, actor Actor, req *dto.DeleteApplicationRequest) error
}

// UserService defines the interface for profile and back-office user logic.
type UserService interface {
	GetAll(ctx context.Context, actor Actor) ([]models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	ListOwnApplications(ctx context.Context, actor Actor) ([]models.UserApplication, error)
	UpdateProfile(ctx context.Context, actor Actor, req *dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, actor Actor, req *dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, actor Actor, req *dto.DeleteUserRequest) error
}

// UploadService relays a file to the blob store and persists the returned
// URL on the acting user's record.
type UploadService interface {
	UploadDocument(ctx context.Context, actor Actor, field dto.DocumentField, filename, contentType string, body io.Reader) (string, error)
}

// Actor is the authenticated identity attached to a request by the guard.
type Actor struct {
	UserID uuid.UUID
	Role   models.Role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }
