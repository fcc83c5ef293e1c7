package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "Role")
	if err != nil {
		return err
	}
	v := Role(strVal)
	switch v {
	case RoleUser, RoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Plan Enum ---
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

func (p *Plan) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "Plan")
	if err != nil {
		return err
	}
	v := Plan(strVal)
	switch v {
	case PlanFree, PlanPremium:
		*p = v
		return nil
	default:
		return fmt.Errorf("invalid Plan value: %s", strVal)
	}
}

func (p Plan) Value() (driver.Value, error) {
	return string(p), nil
}

// --- Job Location Enum ---
type JobLocation string

const (
	JobLocationRemote JobLocation = "remote"
	JobLocationOnsite JobLocation = "onsite"
)

func (l *JobLocation) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "JobLocation")
	if err != nil {
		return err
	}
	v := JobLocation(strVal)
	switch v {
	case JobLocationRemote, JobLocationOnsite:
		*l = v
		return nil
	default:
		return fmt.Errorf("invalid JobLocation value: %s", strVal)
	}
}

func (l JobLocation) Value() (driver.Value, error) {
	return string(l), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusPaused JobStatus = "paused"
)

// Scan implements the sql.Scanner interface for JobStatus
func (s *JobStatus) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "JobStatus")
	if err != nil {
		return err
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusOpen, JobStatusClosed, JobStatusPaused:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (s JobStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeLocum    JobType = "locum"
)

func (t *JobType) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "JobType")
	if err != nil {
		return err
	}
	v := JobType(strVal)
	switch v {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeLocum:
		*t = v
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
}

func (t JobType) Value() (driver.Value, error) {
	return string(t), nil
}

// --- Experience Level Enum ---
type ExperienceLevel string

const (
	ExperienceIntern ExperienceLevel = "intern"
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

func (e *ExperienceLevel) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "ExperienceLevel")
	if err != nil {
		return err
	}
	v := ExperienceLevel(strVal)
	switch v {
	case ExperienceIntern, ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceLead:
		*e = v
		return nil
	default:
		return fmt.Errorf("invalid ExperienceLevel value: %s", strVal)
	}
}

func (e ExperienceLevel) Value() (driver.Value, error) {
	return string(e), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "Applied"
	ApplicationStatusInterview ApplicationStatus = "Interview"
	ApplicationStatusScreening ApplicationStatus = "Screening"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
	ApplicationStatusAccepted  ApplicationStatus = "Accepted"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "ApplicationStatus")
	if err != nil {
		return err
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusApplied, ApplicationStatusInterview, ApplicationStatusScreening,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// scanEnumString pulls the raw string out of a driver value for enum scanning.
func scanEnumString(value interface{}, typeName string) (string, error) {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if !ok {
			return "", fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
		}
		strVal = string(byteVal)
	}
	return strVal, nil
}

// Departments lists the hiring departments a posting may belong to.
var Departments = []string{
	"cardiology", "emergency", "pediatrics", "radiology", "oncology",
	"orthopedics", "gynecology", "obstetrics", "neurology", "urology",
	"gastroenterology", "dermatology", "psychiatry", "surgery",
	"internal_medicine", "ophthalmology", "anesthesiology", "pathology",
	"nephrology", "pulmonology", "pharmacy", "nutrition", "dentistry",
	"physiotherapy", "ent", "admin", "laboratory", "it_support",
	"maintenance", "cleaning", "records", "billing",
}

// IsValidDepartment reports whether d is one of the enumerated departments.
func IsValidDepartment(d string) bool {
	for _, dep := range Departments {
		if dep == d {
			return true
		}
	}
	return false
}

// User represents an identity record. Document URLs point at the external
// blob store and are nil until the first upload.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	Role           Role      `json:"role" db:"role"`
	Gender         *string   `json:"gender,omitempty" db:"gender"`
	ImageURL       *string   `json:"imageUrl,omitempty" db:"image_url"`
	CvURL          *string   `json:"cvUrl,omitempty" db:"cv_url"`
	CoverLetterURL *string   `json:"coverLetterUrl,omitempty" db:"cover_letter_url"`
	Plan           Plan      `json:"plan" db:"plan"`
	Applications   int       `json:"applications" db:"applications"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// JobPosting represents a job opening. The free-text fields (requirements,
// skills, ...) are stored as-is; the UI treats some as comma-separated.
type JobPosting struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	Title            string          `json:"title" db:"title"`
	Description      string          `json:"description" db:"description"`
	Location         JobLocation     `json:"location" db:"location"`
	Status           JobStatus       `json:"status" db:"status"`
	Requirements     string          `json:"requirements" db:"requirements"`
	Responsibilities string          `json:"responsibilities" db:"responsibilities"`
	Qualifications   string          `json:"qualifications" db:"qualifications"`
	Skills           string          `json:"skills" db:"skills"`
	Department       string          `json:"department" db:"department"`
	Type             JobType         `json:"type" db:"type"`
	Experience       ExperienceLevel `json:"experience" db:"experience"`
	Salary           string          `json:"salary" db:"salary"`
	Deadline         time.Time       `json:"deadline" db:"deadline"`
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time       `json:"updatedAt" db:"updated_at"`
}

// JobApplication links a User to a JobPosting. At most one row exists per
// (UserID, JobID) pair; the composite unique constraint enforces it.
type JobApplication struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	UserID    uuid.UUID         `json:"userId" db:"user_id"`
	JobID     uuid.UUID         `json:"jobId" db:"job_id"`
	Status    ApplicationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`
}

// ApplicationDetail is the denormalized application/user/posting join
// projection served to the back office.
type ApplicationDetail struct {
	ApplicationID  uuid.UUID         `json:"applicationId" db:"application_id"`
	JobID          uuid.UUID         `json:"jobId" db:"job_id"`
	UserID         uuid.UUID         `json:"userId" db:"user_id"`
	Candidate      string            `json:"candidate" db:"candidate"`
	Email          string            `json:"userEmail" db:"email"`
	Position       string            `json:"position" db:"position"`
	Department     string            `json:"department" db:"department"`
	Status         ApplicationStatus `json:"status" db:"status"`
	ResumeURL      *string           `json:"resumeUrl,omitempty" db:"resume_url"`
	CoverLetterURL *string           `json:"coverLetterUrl,omitempty" db:"cover_letter_url"`
	AppliedDate    time.Time         `json:"appliedDate" db:"applied_date"`
}

// UserApplication is the projection of one user's applications joined with
// the posting they applied to.
type UserApplication struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	Title          string            `json:"title" db:"title"`
	Department     string            `json:"department" db:"department"`
	Type           JobType           `json:"type" db:"type"`
	Status         ApplicationStatus `json:"status" db:"status"`
	JobDescription string            `json:"jobDescription" db:"job_description"`
	Skills         string            `json:"skills" db:"skills"`
	Salary         string            `json:"salary" db:"salary"`
	Qualifications string            `json:"qualifications" db:"qualifications"`
	CvURL          *string           `json:"cv,omitempty" db:"cv_url"`
	CoverLetterURL *string           `json:"coverLetter,omitempty" db:"cover_letter_url"`
	AppliedDate    time.Time         `json:"appliedDate" db:"applied_date"`
}
