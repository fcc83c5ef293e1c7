// internal/storage/postgres/applications.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create saves a new job application. The (user_id, job_id) composite unique
// constraint is the real apply-once enforcement point; a violation maps to
// ErrDuplicateApplication.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.JobApplication, error) {
	id := uuid.New()

	query := `
		INSERT INTO job_applications (id, user_id, job_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, user_id, job_id, status, created_at, updated_at
	`

	row := r.db.QueryRow(ctx, query, id, req.UserID, req.JobID, req.Status)

	var created models.JobApplication
	err := row.Scan(
		&created.ID,
		&created.UserID,
		&created.JobID,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				log.Printf("Duplicate application for user %s, job %s: %v\n", req.UserID, req.JobID, err)
				return nil, storage.ErrDuplicateApplication
			case pgForeignKeyViolation:
				log.Printf("Error creating application: missing user or job (user: %s, job: %s): %v\n", req.UserID, req.JobID, err)
				return nil, storage.ErrNotFound
			}
		}
		log.Printf("Error creating job application: %v\n", err)
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}

	log.Printf("Job application created successfully with ID: %s", created.ID)
	return &created, nil
}

// GetByID retrieves one application joined with its user and posting.
// Inner joins mean an application whose owner or posting disappeared would
// vanish from results; cascade deletes make that state unreachable.
func (r *ApplicationRepo) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error) {
	query := `
		SELECT a.id AS application_id, a.job_id, a.user_id,
			u.first_name || ' ' || u.last_name AS candidate,
			u.email, j.title AS position, j.department, a.status,
			u.cv_url AS resume_url, u.cover_letter_url, a.created_at AS applied_date
		FROM job_applications a
		INNER JOIN users u ON a.user_id = u.id
		INNER JOIN job_postings j ON a.job_id = j.id
		WHERE a.id = $1
	`

	row := r.db.QueryRow(ctx, query, req.ID)

	var detail models.ApplicationDetail
	err := row.Scan(
		&detail.ApplicationID,
		&detail.JobID,
		&detail.UserID,
		&detail.Candidate,
		&detail.Email,
		&detail.Position,
		&detail.Department,
		&detail.Status,
		&detail.ResumeURL,
		&detail.CoverLetterURL,
		&detail.AppliedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job application not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", req.ID, err)
	}

	return &detail, nil
}

// ListAll retrieves every application joined with user and posting details.
func (r *ApplicationRepo) ListAll(ctx context.Context) ([]models.ApplicationDetail, error) {
	query := `
		SELECT a.id AS application_id, a.job_id, a.user_id,
			u.first_name || ' ' || u.last_name AS candidate,
			u.email, j.title AS position, j.department, a.status,
			u.cv_url AS resume_url, u.cover_letter_url, a.created_at AS applied_date
		FROM job_applications a
		INNER JOIN users u ON a.user_id = u.id
		INNER JOIN job_postings j ON a.job_id = j.id
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying applications: %v\n", err)
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	details, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ApplicationDetail])
	if err != nil {
		log.Printf("Error scanning applications: %v\n", err)
		return nil, fmt.Errorf("failed to scan applications: %w", err)
	}

	if details == nil {
		details = []models.ApplicationDetail{}
	}

	return details, nil
}

// ListByUser retrieves a user's applications joined with posting details.
func (r *ApplicationRepo) ListByUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) ([]models.UserApplication, error) {
	query := `
		SELECT a.id, j.title, j.department, j.type, a.status,
			j.description AS job_description, j.skills, j.salary, j.qualifications,
			u.cv_url, u.cover_letter_url, a.created_at AS applied_date
		FROM job_applications a
		INNER JOIN job_postings j ON a.job_id = j.id
		INNER JOIN users u ON a.user_id = u.id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, req.UserID)
	if err != nil {
		log.Printf("Error querying applications for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to query applications by user: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.UserApplication])
	if err != nil {
		log.Printf("Error scanning applications for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to scan applications by user: %w", err)
	}

	if apps == nil {
		apps = []models.UserApplication{}
	}

	return apps, nil
}

// ExistsByUserAndJob reports whether the user already applied to the job.
// This is only the friendly-error fast path; the unique constraint is what
// actually holds under concurrent submissions.
func (r *ApplicationRepo) ExistsByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_applications WHERE user_id = $1 AND job_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, jobID).Scan(&exists); err != nil {
		log.Printf("Error checking existing application (user %s, job %s): %v\n", userID, jobID, err)
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}

	return exists, nil
}

// UpdateStatus moves an application to a new status.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error) {
	query := `
		UPDATE job_applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, job_id, status, created_at, updated_at
	`

	row := r.db.QueryRow(ctx, query, req.Status, req.ID)

	var updated models.JobApplication
	err := row.Scan(
		&updated.ID,
		&updated.UserID,
		&updated.JobID,
		&updated.Status,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job application not found for status update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application %s: %w", req.ID, err)
	}

	log.Printf("Job application status updated: %s -> %s", updated.ID, updated.Status)
	return &updated, nil
}

// Delete removes an application by its ID.
func (r *ApplicationRepo) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	query := `DELETE FROM job_applications WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, req.ID)
	if err != nil {
		log.Printf("Error deleting application %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete application %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job application not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}

	log.Printf("Job application deleted successfully: %s", req.ID)
	return nil
}
