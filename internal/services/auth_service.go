package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type authService struct {
	repo     storage.UserRepository
	tokens   TokenService
	denylist TokenDenylist
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(repo storage.UserRepository, tokens TokenService, denylist TokenDenylist) AuthService {
	return &authService{
		repo:     repo,
		tokens:   tokens,
		denylist: denylist,
	}
}

// Register creates a new user with a bcrypt-hashed password. The email
// unique constraint is the real duplicate gate; the repo maps its violation
// to a conflict here.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleUser
	if req.Role != nil {
		role = *req.Role
	}

	user := &models.User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Plan:         models.PlanFree,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("AuthService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return created, nil
}

// Login verifies credentials and issues a session token. An unknown email
// maps to ErrNotFound, a wrong password to ErrInvalidCredentials; the two
// are deliberately distinguishable because the HTTP surface answers 404 and
// 401 respectively.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	emailReq := dto.GetUserByEmailRequest{Email: req.Email}
	user, err := s.repo.GetByEmail(ctx, &emailReq)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", ErrNotFound
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating session token for user %s: %v", user.Email, err)
		return nil, "", fmt.Errorf("failed to generate login token: %w", err)
	}

	return user, tokenString, nil
}

// Signout revokes the presented token for the remainder of its lifetime.
// An unparseable token is a no-op: the cookie gets cleared either way.
func (s *authService) Signout(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.denylist.Revoke(ctx, token, ttl); err != nil {
		log.Printf("Signout: failed to denylist token: %v", err)
	}
	return nil
}
