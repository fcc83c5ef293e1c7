package dto

import (
	"github.com/google/uuid"

	"jobboard-api/internal/models"
)

// RegisterRequest defines the structure for registering a new user.
type RegisterRequest struct {
	FirstName string       `json:"firstName" validate:"required,max=255"`
	LastName  string       `json:"lastName" validate:"required,max=255"`
	Email     string       `json:"email" validate:"required,email"`
	Password  string       `json:"password" validate:"required,min=8"`
	Role      *models.Role `json:"role" validate:"omitempty,oneof=user admin"`
}

// LoginRequest defines the structure for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GetUserByIdRequest defines the structure for getting a user by id.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// GetUserByEmailRequest defines the structure for getting a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest defines the sparse patch for profile updates.
// Every field is a pointer so "absent" and "present" are distinguishable;
// only non-nil fields end up in the UPDATE statement. ID and Role are only
// honored when the acting identity is an admin.
type UpdateProfileRequest struct {
	TargetID  uuid.UUID    `json:"-"`
	ID        *uuid.UUID   `json:"id" validate:"omitempty"`
	FirstName *string      `json:"firstName" validate:"omitempty,max=255"`
	LastName  *string      `json:"lastName" validate:"omitempty,max=255"`
	Gender    *string      `json:"gender" validate:"omitempty,oneof=male female"`
	Role      *models.Role `json:"role" validate:"omitempty,oneof=user admin"`
}

// ChangePasswordRequest defines the structure for a password change.
// UserID optionally targets another account (admin resets only).
type ChangePasswordRequest struct {
	UserID      *uuid.UUID `json:"userId" validate:"omitempty"`
	Password    string     `json:"password" validate:"omitempty"`
	NewPassword string     `json:"newPassword" validate:"required,min=8"`
}

// DeleteUserRequest defines the structure for deleting a user account.
type DeleteUserRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// SetDocumentURLRequest persists a blob store URL on a user record.
type SetDocumentURLRequest struct {
	UserID uuid.UUID
	Field  DocumentField
	URL    string
}

// DocumentField names the user column a document upload lands in.
type DocumentField string

const (
	DocumentCV          DocumentField = "cv_url"
	DocumentCoverLetter DocumentField = "cover_letter_url"
	DocumentImage       DocumentField = "image_url"
)
