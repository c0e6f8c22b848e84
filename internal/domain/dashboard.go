package domain

import "context"

// PlatformStats are the counters shown on the home page.
type PlatformStats struct {
	ActiveJobs int64 `json:"active_jobs"`
	Candidates int64 `json:"candidates"`
	Employers  int64 `json:"employers"`
	Cities     int64 `json:"cities"`
}

type CandidateDashboard struct {
	Profile      *CandidateProfile     `json:"profile"`
	Completeness int                   `json:"completeness"`
	Missing      []string              `json:"missing"`
	Counts       map[SubRecordKind]int `json:"counts"`
}

type EmployerDashboard struct {
	Profile    *EmployerProfile `json:"profile"`
	JobCounts  JobStatusCounts  `json:"job_counts"`
	TotalJobs  int              `json:"total_jobs"`
	LatestJobs []Job            `json:"latest_jobs"`
}

// Dashboard holds exactly one of the role views.
type Dashboard struct {
	Role      string              `json:"role"`
	Candidate *CandidateDashboard `json:"candidate,omitempty"`
	Employer  *EmployerDashboard  `json:"employer,omitempty"`
}

type StatsRepository interface {
	PlatformStats(ctx context.Context) (*PlatformStats, error)
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, userID, role string) (*Dashboard, error)
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}
