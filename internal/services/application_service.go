package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

// TxBeginner starts database transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type applicationService struct {
	appRepo       storage.ApplicationRepository
	jobRepo       storage.JobRepository
	userRepo      storage.UserRepository
	db            TxBeginner
	defaultStatus models.ApplicationStatus
}

// NewApplicationService creates a new instance of ApplicationService.
// defaultStatus is the status newly created applications start in.
func NewApplicationService(
	appRepo storage.ApplicationRepository,
	jobRepo storage.JobRepository,
	userRepo storage.UserRepository,
	db TxBeginner,
	defaultStatus models.ApplicationStatus,
) ApplicationService {
	return &applicationService{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		userRepo:      userRepo,
		db:            db,
		defaultStatus: defaultStatus,
	}
}

// Apply creates a job application for the acting user. The insert and the
// user's applications counter bump run in one transaction; the composite
// unique constraint catches concurrent duplicate submissions the fast-path
// existence check cannot see.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error) {
	// 1. The referenced user and job must exist.
	if _, err := s.userRepo.GetByID(ctx, &dto.GetUserByIdRequest{ID: req.UserID}); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s for application", req.UserID))
	}
	if _, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.JobID}); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}

	// 2. Friendly-error fast path for the apply-once rule.
	exists, err := s.appRepo.ExistsByUserAndJob(ctx, req.UserID, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, "checking for existing application")
	}
	if exists {
		log.Printf("Apply: user %s already applied to job %s", req.UserID, req.JobID)
		return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
	}

	// 3. Insert + counter increment, atomically.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Apply: error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txAppRepo := s.appRepo.WithTx(tx)
	txUserRepo := s.userRepo.WithTx(tx)

	createReq := dto.CreateApplicationRequest{
		UserID: req.UserID,
		JobID:  req.JobID,
		Status: s.defaultStatus,
	}
	application, err := txAppRepo.Create(ctx, &createReq)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateApplication) {
			// Lost the race against a concurrent submission.
			return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
		}
		return nil, mapRepoError(err, "creating application")
	}

	if err := txUserRepo.IncrementApplications(ctx, req.UserID); err != nil {
		log.Printf("Apply: error incrementing applications counter for user %s: %v", req.UserID, err)
		return nil, mapRepoError(err, "incrementing applications counter")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Apply: error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing application: %w", err)
	}

	return application, nil
}

// GetApplicationByID returns the joined detail row for one application.
// Back-office data: admins only.
func (s *applicationService) GetApplicationByID(ctx context.Context, actor Actor, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	detail, err := s.appRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}
	return detail, nil
}

// ListApplications returns every application with candidate and posting
// details. Admins only.
func (s *applicationService) ListApplications(ctx context.Context, actor Actor) ([]models.ApplicationDetail, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	details, err := s.appRepo.ListAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing applications")
	}
	return details, nil
}

// UpdateStatus moves an application to a new pipeline status. Any of the
// five statuses is reachable from any other; ordering is intentionally
// unconstrained. Admins only.
func (s *applicationService) UpdateStatus(ctx context.Context, actor Actor, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error) {
	if !actor.IsAdmin() {
		log.Printf("UpdateStatus: forbidden attempt by user %s (role %s) on application %s", actor.UserID, actor.Role, req.ID)
		return nil, ErrForbidden
	}

	application, err := s.appRepo.UpdateStatus(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating application %s", req.ID))
	}
	return application, nil
}

// DeleteApplication removes an application. Admins may delete any;
// a regular user may withdraw their own.
func (s *applicationService) DeleteApplication(ctx context.Context, actor Actor, req *dto.DeleteApplicationRequest) error {
	if !actor.IsAdmin() {
		detail, err := s.appRepo.GetByID(ctx, &dto.GetApplicationByIDRequest{ID: req.ID})
		if err != nil {
			return mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
		}
		if detail.UserID != actor.UserID {
			log.Printf("DeleteApplication: forbidden attempt by user %s on application %s owned by %s", actor.UserID, req.ID, detail.UserID)
			return ErrForbidden
		}
	}

	if err := s.appRepo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting application %s", req.ID))
	}
	return nil
}
