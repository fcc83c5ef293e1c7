package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

// fakeDenylist records revocations in memory.
type fakeDenylist struct {
	revoked map[string]time.Duration
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: make(map[string]time.Duration)}
}

func (d *fakeDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	d.revoked[token] = ttl
	return nil
}

func (d *fakeDenylist) IsRevoked(ctx context.Context, token string) bool {
	_, ok := d.revoked[token]
	return ok
}

func setupAuthServiceTest(t *testing.T) (context.Context, services.AuthService, *MockUserRepository, *fakeDenylist) {
	t.Helper()
	mockRepo := new(MockUserRepository)
	tokens := services.NewTokenService(testSecret, time.Hour)
	denylist := newFakeDenylist()
	authService := services.NewAuthService(mockRepo, tokens, denylist)
	return context.Background(), authService, mockRepo, denylist
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx, authService, mockRepo, _ := setupAuthServiceTest(t)

	req := &dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
	}

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*models.User)
			assert.Equal(t, req.Email, user.Email)
			assert.Equal(t, models.RoleUser, user.Role)
			assert.Equal(t, models.PlanFree, user.Plan)
			// The stored hash must verify against the plaintext password.
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
		}).
		Return(&models.User{Email: req.Email, Role: models.RoleUser}, nil).Once()

	user, err := authService.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, req.Email, user.Email)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx, authService, mockRepo, _ := setupAuthServiceTest(t)

	req := &dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
	}

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Return(nil, storage.ErrDuplicateEmail).Once()

	_, err := authService.Register(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx, authService, mockRepo, _ := setupAuthServiceTest(t)

	password := "correct-horse"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.User{
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	mockRepo.On("GetByEmail", ctx, &dto.GetUserByEmailRequest{Email: stored.Email}).
		Return(stored, nil).Once()

	user, tokenString, err := authService.Login(ctx, &dto.LoginRequest{Email: stored.Email, Password: password})

	require.NoError(t, err)
	assert.Equal(t, stored, user)
	require.NotEmpty(t, tokenString)

	// The issued token must verify and carry the user's role.
	tokens := services.NewTokenService(testSecret, time.Hour)
	claims, err := tokens.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx, authService, mockRepo, _ := setupAuthServiceTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("the-real-password"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.User{Email: "ada@example.com", PasswordHash: string(hash)}
	mockRepo.On("GetByEmail", ctx, mock.Anything).Return(stored, nil).Once()

	_, _, err = authService.Login(ctx, &dto.LoginRequest{Email: stored.Email, Password: "wrong"})

	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx, authService, mockRepo, _ := setupAuthServiceTest(t)

	mockRepo.On("GetByEmail", ctx, mock.Anything).Return(nil, storage.ErrNotFound).Once()

	_, _, err := authService.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestAuthService_Signout_RevokesForRemainingLifetime(t *testing.T) {
	ctx, authService, _, denylist := setupAuthServiceTest(t)

	tokens := services.NewTokenService(testSecret, time.Hour)
	tokenString, err := tokens.Issue(uuid.New(), models.RoleUser)
	require.NoError(t, err)

	require.NoError(t, authService.Signout(ctx, tokenString))

	assert.True(t, denylist.IsRevoked(ctx, tokenString))
	ttl := denylist.revoked[tokenString]
	assert.Greater(t, ttl, 50*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestAuthService_Signout_UnparseableTokenIsNoop(t *testing.T) {
	ctx, authService, _, denylist := setupAuthServiceTest(t)

	require.NoError(t, authService.Signout(ctx, "garbage"))
	assert.Empty(t, denylist.revoked)
}
