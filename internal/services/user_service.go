package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type userService struct {
	repo    storage.UserRepository
	appRepo storage.ApplicationRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, appRepo storage.ApplicationRepository) UserService {
	return &userService{repo: repo, appRepo: appRepo}
}

// GetAll lists every user. Back-office data: admins only.
func (s *userService) GetAll(ctx context.Context, actor Actor) ([]models.User, error) {
	if !actor.IsAdmin() {
		log.Printf("GetAll users: forbidden attempt by user %s (role %s)", actor.UserID, actor.Role)
		return nil, ErrForbidden
	}

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing users")
	}
	return users, nil
}

// GetByID returns one user record.
func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", req.ID))
	}
	return user, nil
}

// ListOwnApplications returns the acting user's applications joined with the
// postings they applied to.
func (s *userService) ListOwnApplications(ctx context.Context, actor Actor) ([]models.UserApplication, error) {
	apps, err := s.appRepo.ListByUser(ctx, &dto.ListApplicationsByUserRequest{UserID: actor.UserID})
	if err != nil {
		return nil, mapRepoError(err, "listing own applications")
	}
	return apps, nil
}

// UpdateProfile applies a sparse patch to a user record. Regular users patch
// their own first/last name and gender; admins may target another user by ID
// and change roles. Role changes from non-admins are discarded, not errors.
func (s *userService) UpdateProfile(ctx context.Context, actor Actor, req *dto.UpdateProfileRequest) (*models.User, error) {
	if actor.IsAdmin() {
		if req.ID != nil {
			req.TargetID = *req.ID
		} else {
			req.TargetID = actor.UserID
		}
	} else {
		if req.ID != nil && *req.ID != actor.UserID {
			log.Printf("UpdateProfile: user %s attempted to patch user %s", actor.UserID, *req.ID)
			return nil, ErrForbidden
		}
		req.TargetID = actor.UserID
		req.Role = nil // only admins change roles
	}

	user, err := s.repo.UpdateProfile(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating profile %s", req.TargetID))
	}
	return user, nil
}

// ChangePassword rehashes and stores a new password. Regular users must
// present their current password; an admin resetting another account skips
// that check.
func (s *userService) ChangePassword(ctx context.Context, actor Actor, req *dto.ChangePasswordRequest) error {
	targetID := actor.UserID
	if actor.IsAdmin() && req.UserID != nil {
		targetID = *req.UserID
	}

	user, err := s.repo.GetByID(ctx, &dto.GetUserByIdRequest{ID: targetID})
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching user %s for password change", targetID))
	}

	adminReset := actor.IsAdmin() && targetID != actor.UserID
	if !adminReset {
		if req.Password == "" {
			return fmt.Errorf("%w: current password is required", ErrValidation)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			log.Printf("ChangePassword: current password mismatch for user %s", targetID)
			return fmt.Errorf("%w: the current password is incorrect", ErrValidation)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("ChangePassword: error hashing new password for user %s: %v", targetID, err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, targetID, string(hashed)); err != nil {
		return mapRepoError(err, fmt.Sprintf("storing new password for user %s", targetID))
	}
	return nil
}

// DeleteAccount removes a user row; owned applications cascade in the
// schema. A user may delete their own account, an admin anyone's.
func (s *userService) DeleteAccount(ctx context.Context, actor Actor, req *dto.DeleteUserRequest) error {
	if !actor.IsAdmin() && req.ID != actor.UserID {
		log.Printf("DeleteAccount: forbidden attempt by user %s on account %s", actor.UserID, req.ID)
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting account %s", req.ID))
	}
	return nil
}
