package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

func ptrString(s string) *string { return &s }

func validCreateJobRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:            "Senior Registrar",
		Description:      "Run the ward.",
		Location:         models.JobLocationOnsite,
		Status:           models.JobStatusOpen,
		Requirements:     "MBBS",
		Responsibilities: "Rounds",
		Qualifications:   "Fellowship",
		Skills:           "Triage",
		Department:       "cardiology",
		Type:             models.JobTypeFullTime,
		Experience:       models.ExperienceSenior,
		Salary:           "competitive",
		Deadline:         time.Now().Add(30 * 24 * time.Hour),
	}
}

func setupJobServiceTest(t *testing.T) (context.Context, services.JobService, *MockJobRepository) {
	t.Helper()
	mockRepo := new(MockJobRepository)
	return context.Background(), services.NewJobService(mockRepo), mockRepo
}

func adminActor() services.Actor {
	return services.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
}

func userActor() services.Actor {
	return services.Actor{UserID: uuid.New(), Role: models.RoleUser}
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	req := validCreateJobRequest()
	expected := &models.JobPosting{ID: uuid.New(), Title: req.Title}
	mockRepo.On("Create", ctx, req).Return(expected, nil).Once()

	job, err := jobService.CreateJob(ctx, adminActor(), req)

	require.NoError(t, err)
	assert.Equal(t, expected, job)
	mockRepo.AssertExpectations(t)
}

func TestJobService_CreateJob_NonAdminForbidden(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	_, err := jobService.CreateJob(ctx, userActor(), validCreateJobRequest())

	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestJobService_CreateJob_UnknownDepartment(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	req := validCreateJobRequest()
	req.Department = "astrology"

	_, err := jobService.CreateJob(ctx, adminActor(), req)

	assert.True(t, errors.Is(err, services.ErrValidation))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestJobService_GetJobByID_NotFound(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	req := &dto.GetJobByIDRequest{ID: uuid.New()}
	mockRepo.On("GetByID", ctx, req).Return(nil, storage.ErrNotFound).Once()

	_, err := jobService.GetJobByID(ctx, req)

	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestJobService_ListJobs_Public(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	expected := []models.JobPosting{{ID: uuid.New()}, {ID: uuid.New()}}
	mockRepo.On("GetAll", ctx).Return(expected, nil).Once()

	jobs, err := jobService.ListJobs(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, jobs)
}

func TestJobService_UpdateJob_NonAdminForbidden(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	req := &dto.UpdateJobRequest{ID: uuid.New(), Title: ptrString("New Title")}

	_, err := jobService.UpdateJob(ctx, userActor(), req)

	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockRepo.AssertNotCalled(t, "Update")
}

func TestJobService_UpdateJob_UnknownDepartment(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	req := &dto.UpdateJobRequest{ID: uuid.New(), Department: ptrString("astrology")}

	_, err := jobService.UpdateJob(ctx, adminActor(), req)

	assert.True(t, errors.Is(err, services.ErrValidation))
	mockRepo.AssertNotCalled(t, "Update")
}

func TestJobService_UpdateJob_Success(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	req := &dto.UpdateJobRequest{ID: uuid.New(), Title: ptrString("New Title")}
	expected := &models.JobPosting{ID: req.ID, Title: "New Title"}
	mockRepo.On("Update", ctx, req).Return(expected, nil).Once()

	job, err := jobService.UpdateJob(ctx, adminActor(), req)

	require.NoError(t, err)
	assert.Equal(t, expected, job)
}

func TestJobService_UpdateJob_EmptyPatch(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	req := &dto.UpdateJobRequest{ID: uuid.New()}
	mockRepo.On("Update", ctx, req).Return(nil, storage.ErrNoFields).Once()

	_, err := jobService.UpdateJob(ctx, adminActor(), req)

	assert.True(t, errors.Is(err, services.ErrNoFields))
}

func TestJobService_DeleteJob_NonAdminForbidden(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	err := jobService.DeleteJob(ctx, userActor(), &dto.DeleteJobRequest{ID: uuid.New()})

	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestJobService_DeleteJob_Success(t *testing.T) {
	ctx, jobService, mockRepo := setupJobServiceTest(t)

	req := &dto.DeleteJobRequest{ID: uuid.New()}
	mockRepo.On("Delete", ctx, req).Return(nil).Once()

	require.NoError(t, jobService.DeleteJob(ctx, adminActor(), req))
	mockRepo.AssertExpectations(t)
}
