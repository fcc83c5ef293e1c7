// internal/storage/postgres/users.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

const userColumns = `id, first_name, last_name, email, password_hash, role, gender,
		image_url, cv_url, cover_letter_url, plan, applications, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

// GetAll retrieves all users.
func (r *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC`, userColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying all users: %v\n", err)
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		log.Printf("Error scanning users: %v\n", err)
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}

	if users == nil {
		users = []models.User{} // Return empty slice, not nil
	}

	return users, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := r.scanUserRow(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", req.ID, err)
	}

	return user, nil
}

// GetByEmail retrieves a single user by email, including the password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := r.scanUserRow(r.db.QueryRow(ctx, query, req.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with email: %s\n", req.Email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// Create saves a new user. The email column carries a unique constraint; a
// violation maps to ErrDuplicateEmail so registration can answer with a
// friendly conflict instead of a raw constraint error.
func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, plan, applications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, NOW(), NOW())
		RETURNING %s
	`, userColumns)

	row := r.db.QueryRow(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Plan,
	)

	created, err := r.scanUserRow(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			log.Printf("Attempted to create user with duplicate email %s: %v\n", user.Email, err)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v\n", user.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", created.ID)
	return created, nil
}

// UpdateProfile modifies a user based on non-nil fields in the request DTO.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	// Build SET clauses dynamically
	if req.FirstName != nil {
		args = append(args, *req.FirstName)
		setClauses = append(setClauses, fmt.Sprintf("first_name = $%d", argID))
		argID++
	}
	if req.LastName != nil {
		args = append(args, *req.LastName)
		setClauses = append(setClauses, fmt.Sprintf("last_name = $%d", argID))
		argID++
	}
	if req.Gender != nil {
		args = append(args, *req.Gender)
		setClauses = append(setClauses, fmt.Sprintf("gender = $%d", argID))
		argID++
	}
	if req.Role != nil {
		args = append(args, *req.Role)
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", argID))
		argID++
	}

	if len(setClauses) == 0 {
		log.Printf("UpdateProfile called for user %s with no fields to change.", req.TargetID)
		return nil, storage.ErrNoFields
	}

	// Add updated_at and WHERE clause
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.TargetID)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argID, userColumns)

	updated, err := r.scanUserRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for update with ID: %s\n", req.TargetID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating user %s: %v\n", req.TargetID, err)
		return nil, fmt.Errorf("failed to update user %s: %w", req.TargetID, err)
	}

	log.Printf("User updated successfully: %s", updated.ID)
	return updated, nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		log.Printf("Error updating password for user %s: %v\n", id, err)
		return fmt.Errorf("failed to update password for user %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// SetDocumentURL stores a blob store URL in one of the document columns.
func (r *UserRepo) SetDocumentURL(ctx context.Context, req *dto.SetDocumentURLRequest) error {
	// Field is one of the DocumentField constants, never caller input, so
	// interpolating the column name is safe.
	query := fmt.Sprintf(`UPDATE users SET %s = $1, updated_at = NOW() WHERE id = $2`, req.Field)

	cmdTag, err := r.db.Exec(ctx, query, req.URL, req.UserID)
	if err != nil {
		log.Printf("Error setting %s for user %s: %v\n", req.Field, req.UserID, err)
		return fmt.Errorf("failed to set document URL for user %s: %w", req.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// IncrementApplications bumps the applications counter atomically in the
// database, so concurrent applies never lose updates.
func (r *UserRepo) IncrementApplications(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET applications = applications + 1, updated_at = NOW() WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error incrementing applications for user %s: %v\n", id, err)
		return fmt.Errorf("failed to increment applications for user %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes a user by ID. Owned job applications cascade in the schema.
func (r *UserRepo) Delete(ctx context.Context, req *dto.DeleteUserRequest) error {
	query := `DELETE FROM users WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, req.ID)
	if err != nil {
		log.Printf("Error deleting user %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete user %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("User not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}

	log.Printf("User deleted successfully: %s", req.ID)
	return nil
}

func (r *UserRepo) scanUserRow(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Gender,
		&user.ImageURL,
		&user.CvURL,
		&user.CoverLetterURL,
		&user.Plan,
		&user.Applications,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
