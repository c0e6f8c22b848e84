package domain

import (
	"context"
	"time"
)

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

func (s JobStatus) Valid() bool {
	return s == JobStatusDraft || s == JobStatusActive || s == JobStatusClosed
}

type Job struct {
	ID              int64     `json:"id"`
	EmployerID      int64     `json:"employer_id"`
	Title           string    `json:"title" validate:"required,min=3,max=120,no_emoji"`
	Description     string    `json:"description" validate:"required,min=20,max=5000"`
	Category        string    `json:"category" validate:"required,oneof=hotellerie restauration cuisine service_en_salle reception housekeeping bar evenementiel tourisme"`
	ContractType    string    `json:"contract_type" validate:"required,oneof=cdi cdd stage saisonnier freelance"`
	ExperienceLevel string    `json:"experience_level" validate:"required,oneof=debutant junior intermediaire senior expert"`
	SalaryMin       *int64    `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *int64    `json:"salary_max" validate:"omitempty,min=0"`
	Requirements    []string  `json:"requirements" validate:"max=20,dive,min=1,max=200"`
	Country         string    `json:"country" validate:"required"`
	City            string    `json:"city"`
	Commune         string    `json:"commune"`
	Status          JobStatus `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobWithEmployer extends Job with the fields shown on listing cards
type JobWithEmployer struct {
	Job
	CompanyName string  `json:"company_name"`
	CompanyType string  `json:"company_type"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

// JobFilter is the public job search query. Status is forced to active by the usecase.
type JobFilter struct {
	Term            string
	Category        string
	ContractType    string
	ExperienceLevel string
	Country         string
	City            string
	Commune         string
	EmployerID      int64
	Status          JobStatus
	Page            int
	PageSize        int
}

type JobStatusCounts map[JobStatus]int

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
	Search(ctx context.Context, filter JobFilter, limit, offset int) ([]JobWithEmployer, int64, error)
	FetchByEmployerID(ctx context.Context, employerID int64, status JobStatus, limit, offset int) ([]Job, int64, error)
	CountByStatus(ctx context.Context, employerID int64) (JobStatusCounts, error)
	Update(ctx context.Context, job *Job) error
	UpdateStatus(ctx context.Context, id int64, status JobStatus) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetPublicJob(ctx context.Context, id int64) (*JobWithEmployer, error)
	Search(ctx context.Context, filter JobFilter) (*PaginatedResult[JobWithEmployer], error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	ChangeStatus(ctx context.Context, userID string, id int64, status JobStatus) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
