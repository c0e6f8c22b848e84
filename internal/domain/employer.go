package domain

import (
	"context"
	"time"
)

type EmployerProfile struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name" validate:"required,min=2,max=120,no_emoji"`
	CompanyType string    `json:"company_type" validate:"required,oneof=hotel restaurant bar traiteur resort agence_evenementielle autre"`
	CompanySize string    `json:"company_size" validate:"required,oneof=1-10 11-50 51-200 200+"`
	Address     string    `json:"address" validate:"max=255"`
	Country     string    `json:"country" validate:"required"`
	City        string    `json:"city"`
	Commune     string    `json:"commune"`
	Description string    `json:"description" validate:"max=2000"`
	Website     string    `json:"website" validate:"omitempty,url"`
	Phone       *string   `json:"phone,omitempty" validate:"omitempty,valid_phone"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmployerPublic is the company page: profile without contact phone, plus active jobs.
type EmployerPublic struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	CompanyType string  `json:"company_type"`
	CompanySize string  `json:"company_size"`
	Country     string  `json:"country"`
	City        string  `json:"city"`
	Commune     string  `json:"commune"`
	Description string  `json:"description"`
	Website     string  `json:"website"`
	LogoURL     *string `json:"logo_url,omitempty"`
	ActiveJobs  []Job   `json:"active_jobs"`
}

type EmployerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
	GetByID(ctx context.Context, id int64) (*EmployerProfile, error)
	Update(ctx context.Context, profile *EmployerProfile) error
	UpdateLogoURL(ctx context.Context, userID, url string) error
}

type EmployerUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*EmployerProfile, error)
	UpdateMyProfile(ctx context.Context, userID string, profile *EmployerProfile) (*EmployerProfile, error)
	ListMyJobs(ctx context.Context, userID, status string, page, pageSize int) (*PaginatedResult[Job], error)
	GetPublic(ctx context.Context, id int64) (*EmployerPublic, error)
}
