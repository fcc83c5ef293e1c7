// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

const jobColumns = `id, title, description, location, status, requirements,
		responsibilities, qualifications, skills, department, type, experience,
		salary, deadline, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	id := uuid.New() // Generate ID server-side

	query := fmt.Sprintf(`
		INSERT INTO job_postings (id, title, description, location, status, requirements,
			responsibilities, qualifications, skills, department, type, experience,
			salary, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING %s
	`, jobColumns)

	row := r.db.QueryRow(ctx, query,
		id,
		req.Title,
		req.Description,
		req.Location,
		req.Status,
		req.Requirements,
		req.Responsibilities,
		req.Qualifications,
		req.Skills,
		req.Department,
		req.Type,
		req.Experience,
		req.Salary,
		req.Deadline,
	)

	created, err := r.scanJobRow(row)
	if err != nil {
		log.Printf("Error creating job posting: %v\n", err)
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}

	log.Printf("Job posting created successfully with ID: %s", created.ID)
	return created, nil
}

// GetAll retrieves every job posting, newest first.
func (r *JobRepo) GetAll(ctx context.Context) ([]models.JobPosting, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_postings ORDER BY created_at DESC`, jobColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying job postings: %v\n", err)
		return nil, fmt.Errorf("failed to query job postings: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JobPosting])
	if err != nil {
		log.Printf("Error scanning job postings: %v\n", err)
		return nil, fmt.Errorf("failed to scan job postings: %w", err)
	}

	if jobs == nil {
		jobs = []models.JobPosting{} // Return empty slice, not nil
	}

	return jobs, nil
}

// GetByID retrieves a specific job posting by its ID.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.JobPosting, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_postings WHERE id = $1`, jobColumns)

	job, err := r.scanJobRow(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job posting not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job posting by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get job posting by ID %s: %w", req.ID, err)
	}

	return job, nil
}

// Update modifies an existing posting based on non-nil fields in the request DTO.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.JobPosting, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	// Build SET clauses dynamically
	if req.Title != nil {
		args = append(args, *req.Title)
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argID))
		argID++
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argID))
		argID++
	}
	if req.Location != nil {
		args = append(args, *req.Location)
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", argID))
		argID++
	}
	if req.Status != nil {
		args = append(args, *req.Status)
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argID))
		argID++
	}
	if req.Requirements != nil {
		args = append(args, *req.Requirements)
		setClauses = append(setClauses, fmt.Sprintf("requirements = $%d", argID))
		argID++
	}
	if req.Responsibilities != nil {
		args = append(args, *req.Responsibilities)
		setClauses = append(setClauses, fmt.Sprintf("responsibilities = $%d", argID))
		argID++
	}
	if req.Qualifications != nil {
		args = append(args, *req.Qualifications)
		setClauses = append(setClauses, fmt.Sprintf("qualifications = $%d", argID))
		argID++
	}
	if req.Skills != nil {
		args = append(args, *req.Skills)
		setClauses = append(setClauses, fmt.Sprintf("skills = $%d", argID))
		argID++
	}
	if req.Department != nil {
		args = append(args, *req.Department)
		setClauses = append(setClauses, fmt.Sprintf("department = $%d", argID))
		argID++
	}
	if req.Type != nil {
		args = append(args, *req.Type)
		setClauses = append(setClauses, fmt.Sprintf("type = $%d", argID))
		argID++
	}
	if req.Experience != nil {
		args = append(args, *req.Experience)
		setClauses = append(setClauses, fmt.Sprintf("experience = $%d", argID))
		argID++
	}
	if req.Salary != nil {
		args = append(args, *req.Salary)
		setClauses = append(setClauses, fmt.Sprintf("salary = $%d", argID))
		argID++
	}
	if req.Deadline != nil {
		args = append(args, *req.Deadline)
		setClauses = append(setClauses, fmt.Sprintf("deadline = $%d", argID))
		argID++
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for job posting %s with no fields to change.", req.ID)
		return nil, storage.ErrNoFields
	}

	// Add updated_at and WHERE clause
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE job_postings
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argID, jobColumns)

	updated, err := r.scanJobRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job posting not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job posting %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job posting %s: %w", req.ID, err)
	}

	log.Printf("Job posting updated successfully: %s", updated.ID)
	return updated, nil
}

// Delete removes a posting by its ID. Applications referencing it cascade.
func (r *JobRepo) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	query := `DELETE FROM job_postings WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, req.ID)
	if err != nil {
		log.Printf("Error deleting job posting %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete job posting %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job posting not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}

	log.Printf("Job posting deleted successfully: %s", req.ID)
	return nil
}

func (r *JobRepo) scanJobRow(row pgx.Row) (*models.JobPosting, error) {
	var job models.JobPosting
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Location,
		&job.Status,
		&job.Requirements,
		&job.Responsibilities,
		&job.Qualifications,
		&job.Skills,
		&job.Department,
		&job.Type,
		&job.Experience,
		&job.Salary,
		&job.Deadline,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
