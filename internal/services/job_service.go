package services

import (
	"context"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type jobService struct {
	repo storage.JobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(repo storage.JobRepository) JobService {
	return &jobService{repo: repo}
}

// CreateJob inserts a new posting. Only admins may create postings.
func (s *jobService) CreateJob(ctx context.Context, actor Actor, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	if !actor.IsAdmin() {
		log.Printf("CreateJob: forbidden attempt by user %s (role %s)", actor.UserID, actor.Role)
		return nil, ErrForbidden
	}
	if !models.IsValidDepartment(req.Department) {
		return nil, fmt.Errorf("%w: unknown department %q", ErrValidation, req.Department)
	}

	job, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating job posting")
	}
	return job, nil
}

// GetJobByID returns one posting. Postings are publicly readable.
func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.JobPosting, error) {
	job, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job posting %s", req.ID))
	}
	return job, nil
}

// ListJobs returns every posting, newest first.
func (s *jobService) ListJobs(ctx context.Context) ([]models.JobPosting, error) {
	jobs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing job postings")
	}
	return jobs, nil
}

// UpdateJob applies a sparse patch to a posting. Only admins may update.
// Status moves freely among open/closed/paused; there is no transition rule.
func (s *jobService) UpdateJob(ctx context.Context, actor Actor, req *dto.UpdateJobRequest) (*models.JobPosting, error) {
	if !actor.IsAdmin() {
		log.Printf("UpdateJob: forbidden attempt by user %s (role %s) on job %s", actor.UserID, actor.Role, req.ID)
		return nil, ErrForbidden
	}
	if req.Department != nil && !models.IsValidDepartment(*req.Department) {
		return nil, fmt.Errorf("%w: unknown department %q", ErrValidation, *req.Department)
	}

	job, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating job posting %s", req.ID))
	}
	return job, nil
}

// DeleteJob removes a posting and, via cascade, its applications.
func (s *jobService) DeleteJob(ctx context.Context, actor Actor, req *dto.DeleteJobRequest) error {
	if !actor.IsAdmin() {
		log.Printf("DeleteJob: forbidden attempt by user %s (role %s) on job %s", actor.UserID, actor.Role, req.ID)
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting job posting %s", req.ID))
	}
	return nil
}
