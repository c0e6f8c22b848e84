package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/internal/usecase"
)

func TestCompleteness(t *testing.T) {
	t.Run("empty profile", func(t *testing.T) {
		score, missing := usecase.Completeness(&domain.CandidateProfile{}, nil)
		assert.Zero(t, score)
		assert.Len(t, missing, 11)
		assert.Equal(t, "first_name", missing[0])
	})

	t.Run("complete profile", func(t *testing.T) {
		p := storedCandidate()
		cv := "https://cdn.example/cv.pdf"
		p.CVURL = &cv
		p.Bio = "Dix ans de service en salle."
		p.Languages = []string{"Français", "Anglais"}
		score, missing := usecase.Completeness(p, map[domain.SubRecordKind]int{
			domain.KindExperience: 2,
			domain.KindEducation:  1,
		})
		assert.Equal(t, 100, score)
		assert.Empty(t, missing)
	})

	t.Run("partial profile", func(t *testing.T) {
		score, missing := usecase.Completeness(storedCandidate(), nil)
		assert.Equal(t, 54, score)
		assert.Equal(t, []string{"bio", "languages", "cv_url", "experiences", "educations"}, missing)
	})
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("candidate view", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		candidates.On("GetByUserID", ctx, "u-1").Return(storedCandidate(), nil)
		candidates.On("CountSubRecords", ctx, int64(7)).Return(map[domain.SubRecordKind]int{domain.KindExperience: 1}, nil)
		uc := usecase.NewDashboardUsecase(candidates, new(MockEmployerRepo), new(MockJobRepo), new(MockStatsRepo))

		d, err := uc.GetDashboard(ctx, "u-1", domain.RoleCandidate)
		require.NoError(t, err)
		require.NotNil(t, d.Candidate)
		assert.Nil(t, d.Employer)
		assert.Equal(t, 1, d.Candidate.Counts[domain.KindExperience])
		assert.Greater(t, d.Candidate.Completeness, 0)
	})

	t.Run("employer view", func(t *testing.T) {
		employers, jobs := new(MockEmployerRepo), new(MockJobRepo)
		employers.On("GetByUserID", ctx, "emp-1").Return(storedEmployer(), nil)
		jobs.On("CountByStatus", ctx, int64(3)).Return(domain.JobStatusCounts{
			domain.JobStatusActive: 2,
			domain.JobStatusDraft:  1,
		}, nil)
		jobs.On("FetchByEmployerID", ctx, int64(3), domain.JobStatus(""), 5, 0).Return([]domain.Job{{ID: 1}, {ID: 2}, {ID: 3}}, int64(3), nil)
		uc := usecase.NewDashboardUsecase(new(MockCandidateRepo), employers, jobs, new(MockStatsRepo))

		d, err := uc.GetDashboard(ctx, "emp-1", domain.RoleEmployer)
		require.NoError(t, err)
		require.NotNil(t, d.Employer)
		assert.Equal(t, 3, d.Employer.TotalJobs)
		assert.Len(t, d.Employer.LatestJobs, 3)
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := usecase.NewDashboardUsecase(new(MockCandidateRepo), new(MockEmployerRepo), new(MockJobRepo), new(MockStatsRepo))
		_, err := uc.GetDashboard(ctx, "x", "admin")
		assert.Equal(t, http.StatusForbidden, appErr(t, err).Code)
	})
}

func TestPlatformStats(t *testing.T) {
	ctx := context.Background()
	stats := new(MockStatsRepo)
	stats.On("PlatformStats", ctx).Return(&domain.PlatformStats{ActiveJobs: 4, Candidates: 10, Employers: 2, Cities: 3}, nil).Once()
	stats.On("PlatformStats", ctx).Return(nil, errors.New("timeout")).Once()
	uc := usecase.NewDashboardUsecase(new(MockCandidateRepo), new(MockEmployerRepo), new(MockJobRepo), stats)

	got, err := uc.GetPlatformStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ActiveJobs)

	_, err = uc.GetPlatformStats(ctx)
	assert.Equal(t, http.StatusInternalServerError, appErr(t, err).Code)
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": func(context.Context) error { return nil },
	})
	status, ok := uc.Check(ctx)
	assert.True(t, ok)
	assert.Equal(t, "ok", status["database"])

	uc = usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("dial tcp: refused") },
	})
	status, ok = uc.Check(ctx)
	assert.False(t, ok)
	assert.Equal(t, "degraded", status["status"])
	assert.Equal(t, "dial tcp: refused", status["redis"])
}
