package usecase

import (
	"context"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
)

const latestJobsOnDashboard = 5

type dashboardUsecase struct {
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	jobRepo       domain.JobRepository
	statsRepo     domain.StatsRepository
}

func NewDashboardUsecase(
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	jobRepo domain.JobRepository,
	statsRepo domain.StatsRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		jobRepo:       jobRepo,
		statsRepo:     statsRepo,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, userID, role string) (*domain.Dashboard, error) {
	switch role {
	case domain.RoleCandidate:
		view, err := u.candidateDashboard(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &domain.Dashboard{Role: role, Candidate: view}, nil
	case domain.RoleEmployer:
		view, err := u.employerDashboard(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &domain.Dashboard{Role: role, Employer: view}, nil
	}
	return nil, apperror.Forbidden("Rôle inconnu")
}

func (u *dashboardUsecase) candidateDashboard(ctx context.Context, userID string) (*domain.CandidateDashboard, error) {
	profile, err := candidateFor(ctx, u.candidateRepo, userID)
	if err != nil {
		return nil, err
	}
	counts, err := u.candidateRepo.CountSubRecords(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if counts == nil {
		counts = map[domain.SubRecordKind]int{}
	}
	score, missing := Completeness(profile, counts)
	return &domain.CandidateDashboard{
		Profile:      profile,
		Completeness: score,
		Missing:      missing,
		Counts:       counts,
	}, nil
}

func (u *dashboardUsecase) employerDashboard(ctx context.Context, userID string) (*domain.EmployerDashboard, error) {
	profile, err := employerFor(ctx, u.employerRepo, userID)
	if err != nil {
		return nil, err
	}
	counts, err := u.jobRepo.CountByStatus(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if counts == nil {
		counts = domain.JobStatusCounts{}
	}
	latest, _, err := u.jobRepo.FetchByEmployerID(ctx, profile.ID, "", latestJobsOnDashboard, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if latest == nil {
		latest = []domain.Job{}
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return &domain.EmployerDashboard{
		Profile:    profile,
		JobCounts:  counts,
		TotalJobs:  total,
		LatestJobs: latest,
	}, nil
}

func (u *dashboardUsecase) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	stats, err := u.statsRepo.PlatformStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

// Completeness scores a candidate profile out of 100 and lists the json names
// of what is still missing, in display order.
func Completeness(p *domain.CandidateProfile, counts map[domain.SubRecordKind]int) (int, []string) {
	checks := []struct {
		field string
		done  bool
	}{
		{"first_name", p.FirstName != ""},
		{"last_name", p.LastName != ""},
		{"title", p.Title != ""},
		{"bio", p.Bio != ""},
		{"skills", len(p.Skills) > 0 || counts[domain.KindSkill] > 0},
		{"languages", len(p.Languages) > 0},
		{"city", p.City != ""},
		{"photo_url", p.PhotoURL != nil && *p.PhotoURL != ""},
		{"cv_url", p.CVURL != nil && *p.CVURL != ""},
		{"experiences", counts[domain.KindExperience] > 0},
		{"educations", counts[domain.KindEducation] > 0},
	}

	done := 0
	missing := []string{}
	for _, c := range checks {
		if c.done {
			done++
			continue
		}
		missing = append(missing, c.field)
	}
	return done * 100 / len(checks), missing
}
