package domain

import (
	"context"
	"time"
)

const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DashboardPath is where the client lands after login.
func DashboardPath(role string) string {
	if role == RoleEmployer {
		return "/dashboard/employer"
	}
	return "/dashboard/candidate"
}

// RegistrationRequest is the flat payload accumulated across the sign-up steps.
// Role decides which profile fields are read.
type RegistrationRequest struct {
	// Account
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`

	// Candidate
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	Title             string   `json:"title"`
	ExperienceLevel   string   `json:"experience_level"`
	Availability      string   `json:"availability"`
	Skills            []string `json:"skills"`
	Languages         []string `json:"languages"`
	SalaryExpectation *int64   `json:"salary_expectation"`

	// Employer
	CompanyName string `json:"company_name"`
	CompanyType string `json:"company_type"`
	CompanySize string `json:"company_size"`
	Address     string `json:"address"`
	Website     string `json:"website"`
	Description string `json:"description"`

	// Location, both roles
	Country string `json:"country"`
	City    string `json:"city"`
	Commune string `json:"commune"`

	AcceptTerms bool `json:"accept_terms"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"` // email or phone
	Password   string `json:"password" binding:"required"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	User       *User     `json:"user"`
	RedirectTo string    `json:"redirect_to"`
}

// LoginMeta carries request details used for throttling and audit logs.
type LoginMeta struct {
	IP        string
	UserAgent string
	RequestID string
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	// CreateWithProfile inserts the user and exactly one of the profiles atomically.
	CreateWithProfile(ctx context.Context, user *User, candidate *CandidateProfile, employer *EmployerProfile) error
}

type AuthUsecase interface {
	Register(ctx context.Context, req *RegistrationRequest) (*AuthResult, error)
	Login(ctx context.Context, req *LoginRequest, meta LoginMeta) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
