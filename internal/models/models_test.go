package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-api/internal/models"
)

func TestIsValidDepartment(t *testing.T) {
	assert.True(t, models.IsValidDepartment("cardiology"))
	assert.True(t, models.IsValidDepartment("internal_medicine"))
	assert.False(t, models.IsValidDepartment("astrology"))
	assert.False(t, models.IsValidDepartment(""))
	// Department identifiers are lowercase; display casing is rejected.
	assert.False(t, models.IsValidDepartment("Cardiology"))
}

func TestApplicationStatus_ScanRejectsUnknownValues(t *testing.T) {
	var status models.ApplicationStatus
	require.NoError(t, status.Scan("Interview"))
	assert.Equal(t, models.ApplicationStatusInterview, status)

	assert.Error(t, status.Scan("Ghosted"))
	// Pipeline statuses are capitalized; a lowercase value is not one of them.
	assert.Error(t, status.Scan("interview"))
}

func TestJobType_ScanAcceptsBytes(t *testing.T) {
	var jt models.JobType
	require.NoError(t, jt.Scan([]byte("locum")))
	assert.Equal(t, models.JobTypeLocum, jt)
}

func TestRole_Value(t *testing.T) {
	v, err := models.RoleAdmin.Value()
	require.NoError(t, err)
	assert.Equal(t, "admin", v)
}
