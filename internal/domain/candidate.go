package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID                int64     `json:"id"`
	UserID            string    `json:"user_id"`
	FirstName         string    `json:"first_name" validate:"required,min=2,max=50,valid_name"`
	LastName          string    `json:"last_name" validate:"required,min=2,max=50,valid_name"`
	Title             string    `json:"title" validate:"max=100,no_emoji"`
	Bio               string    `json:"bio" validate:"max=1000"`
	Skills            []string  `json:"skills" validate:"max=30,dive,min=1,max=50"`
	Languages         []string  `json:"languages" validate:"max=10,dive,min=1,max=30"`
	ExperienceLevel   string    `json:"experience_level" validate:"required,oneof=debutant junior intermediaire senior expert"`
	Availability      string    `json:"availability" validate:"required,oneof=immediate one_month three_months negotiable"`
	SalaryExpectation *int64    `json:"salary_expectation" validate:"omitempty,min=0"`
	Phone             *string   `json:"phone,omitempty"`
	Country           string    `json:"country" validate:"required"`
	City              string    `json:"city"`
	Commune           string    `json:"commune"`
	PhotoURL          *string   `json:"photo_url,omitempty"`
	CVURL             *string   `json:"cv_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Experience struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidate_id"`
	Position    string     `json:"position" validate:"required,max=100"`
	Employer    string     `json:"employer" validate:"required,max=120"`
	City        string     `json:"city" validate:"max=80"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date" validate:"omitempty,gtefield=StartDate"`
	Description string     `json:"description" validate:"max=1000"`
}

type Education struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidate_id"`
	School      string     `json:"school" validate:"required,max=120"`
	Degree      string     `json:"degree" validate:"required,max=120"`
	Field       string     `json:"field" validate:"max=120"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date" validate:"omitempty,gtefield=StartDate"`
}

type Certification struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidate_id"`
	Name        string     `json:"name" validate:"required,max=120"`
	Issuer      string     `json:"issuer" validate:"required,max=120"`
	IssuedAt    time.Time  `json:"issued_at" validate:"required"`
	ExpiresAt   *time.Time `json:"expires_at" validate:"omitempty,gtefield=IssuedAt"`
	URL         string     `json:"url" validate:"omitempty,url"`
}

type Skill struct {
	ID          int64  `json:"id"`
	CandidateID int64  `json:"candidate_id"`
	Name        string `json:"name" validate:"required,max=50"`
	Level       string `json:"level" validate:"required,oneof=debutant intermediaire avance expert"`
}

// CandidateDetail is a profile with all its sub-records.
type CandidateDetail struct {
	CandidateProfile
	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Certifications []Certification `json:"certifications"`
	SkillRecords   []Skill         `json:"skill_records"`
}

// PublicCandidate hides contact data from anonymous visitors.
type PublicCandidate struct {
	ID                int64    `json:"id"`
	FirstName         string   `json:"first_name"`
	LastInitial       string   `json:"last_initial"`
	Title             string   `json:"title"`
	Bio               string   `json:"bio"`
	Skills            []string `json:"skills"`
	Languages         []string `json:"languages"`
	ExperienceLevel   string   `json:"experience_level"`
	Availability      string   `json:"availability"`
	Country           string   `json:"country"`
	City              string   `json:"city"`
	Commune           string   `json:"commune"`
	PhotoURL          *string  `json:"photo_url,omitempty"`
	ExperienceCount   int      `json:"experience_count"`
	SalaryExpectation *int64   `json:"salary_expectation,omitempty"`
}

// CandidateFilter is the candidate search query.
type CandidateFilter struct {
	Term            string
	ExperienceLevel string
	Availability    string
	Country         string
	City            string
	Commune         string
	Page            int
	PageSize        int
}

// SubRecordKind names a deletable candidate sub-record collection.
type SubRecordKind string

const (
	KindExperience    SubRecordKind = "experiences"
	KindEducation     SubRecordKind = "educations"
	KindCertification SubRecordKind = "certifications"
	KindSkill         SubRecordKind = "skills"
)

func (k SubRecordKind) Valid() bool {
	switch k {
	case KindExperience, KindEducation, KindCertification, KindSkill:
		return true
	}
	return false
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	GetByID(ctx context.Context, id int64) (*CandidateProfile, error)
	Update(ctx context.Context, profile *CandidateProfile) error
	UpdateFileURL(ctx context.Context, userID, column, url string) error
	Search(ctx context.Context, filter CandidateFilter, limit, offset int) ([]CandidateProfile, int64, error)

	ListExperiences(ctx context.Context, candidateID int64) ([]Experience, error)
	ListEducations(ctx context.Context, candidateID int64) ([]Education, error)
	ListCertifications(ctx context.Context, candidateID int64) ([]Certification, error)
	ListSkills(ctx context.Context, candidateID int64) ([]Skill, error)

	AddExperience(ctx context.Context, e *Experience) error
	AddEducation(ctx context.Context, e *Education) error
	AddCertification(ctx context.Context, c *Certification) error
	AddSkill(ctx context.Context, s *Skill) error
	// DeleteSubRecord removes a row only if it belongs to candidateID.
	DeleteSubRecord(ctx context.Context, kind SubRecordKind, candidateID, id int64) error
	CountSubRecords(ctx context.Context, candidateID int64) (map[SubRecordKind]int, error)
}

type CandidateUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*CandidateDetail, error)
	UpdateMyProfile(ctx context.Context, userID string, profile *CandidateProfile) (*CandidateProfile, error)
	AddExperience(ctx context.Context, userID string, e *Experience) error
	AddEducation(ctx context.Context, userID string, e *Education) error
	AddCertification(ctx context.Context, userID string, c *Certification) error
	AddSkill(ctx context.Context, userID string, s *Skill) error
	DeleteSubRecord(ctx context.Context, userID string, kind SubRecordKind, id int64) error
	Search(ctx context.Context, filter CandidateFilter) (*PaginatedResult[PublicCandidate], error)
	GetPublic(ctx context.Context, id int64) (*PublicCandidate, error)
	// Export renders the search results as an xlsx workbook.
	Export(ctx context.Context, userID string, filter CandidateFilter) ([]byte, error)
}
