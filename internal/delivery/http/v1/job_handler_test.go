package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
)

func TestSearchJobs(t *testing.T) {
	s := newTestServer(t, nil)
	want := domain.JobFilter{
		Term:     "chef",
		Category: "cuisine",
		Country:  "Côte d'Ivoire",
		City:     "Abidjan",
		Page:     2,
		PageSize: 5,
	}
	s.jobs.On("Search", mock.Anything, want).
		Return(domain.NewPaginatedResult([]domain.JobWithEmployer{}, 0, 2, 5), nil)

	rec := s.do(http.MethodGet, "/v1/jobs?q=chef&category=cuisine&country=C%C3%B4te+d%27Ivoire&city=Abidjan&page=2&page_size=5", nil, "")
	assertStatus(t, rec, http.StatusOK)

	var res domain.PaginatedResult[domain.JobWithEmployer]
	decodeData(t, rec, &res)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	s.jobs.AssertExpectations(t)
}

func TestGetJobDetails(t *testing.T) {
	s := newTestServer(t, nil)
	s.jobs.On("GetPublicJob", mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)
	s.jobs.On("GetPublicJob", mock.Anything, int64(4)).Return(&domain.JobWithEmployer{
		Job:         domain.Job{ID: 4, Title: "Chef de partie", Status: domain.JobStatusActive},
		CompanyName: "Hôtel Ivoire",
	}, nil)

	assertStatus(t, s.do(http.MethodGet, "/v1/jobs/abc", nil, ""), http.StatusBadRequest)
	assertStatus(t, s.do(http.MethodGet, "/v1/jobs/9", nil, ""), http.StatusNotFound)

	rec := s.do(http.MethodGet, "/v1/jobs/4", nil, "")
	assertStatus(t, rec, http.StatusOK)
	var job domain.JobWithEmployer
	decodeData(t, rec, &job)
	assert.Equal(t, "Hôtel Ivoire", job.CompanyName)
}

func TestCreateJob(t *testing.T) {
	body := map[string]interface{}{
		"title":            "  Chef de partie ",
		"description":      "Brigade de douze personnes, service midi et soir.",
		"category":         "cuisine",
		"contract_type":    "cdi",
		"experience_level": "junior",
		"requirements":     []string{"CAP cuisine", "  "},
		"country":          "Côte d'Ivoire",
		"city":             "Abidjan",
	}

	t.Run("candidates may not post jobs", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := s.do(http.MethodPost, "/v1/jobs", body, s.token(t, domain.RoleCandidate))
		assertStatus(t, rec, http.StatusForbidden)
		s.jobs.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("anonymous", func(t *testing.T) {
		s := newTestServer(t, nil)
		assertStatus(t, s.do(http.MethodPost, "/v1/jobs", body, ""), http.StatusUnauthorized)
	})

	t.Run("employer", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.jobs.On("CreateJob", mock.Anything, "emp-1", mock.MatchedBy(func(j *domain.Job) bool {
			return j.Title == "Chef de partie" && len(j.Requirements) == 1
		})).Run(func(args mock.Arguments) {
			j := args.Get(2).(*domain.Job)
			j.ID = 12
			j.Status = domain.JobStatusDraft
		}).Return(nil)

		rec := s.do(http.MethodPost, "/v1/jobs", body, s.token(t, domain.RoleEmployer))
		assertStatus(t, rec, http.StatusCreated)
		var job domain.Job
		decodeData(t, rec, &job)
		assert.Equal(t, int64(12), job.ID)
		assert.Equal(t, domain.JobStatusDraft, job.Status)
	})

	t.Run("field errors from the usecase", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.jobs.On("CreateJob", mock.Anything, "emp-1", mock.Anything).
			Return(apperror.Validation("Certains champs sont invalides", map[string]string{"salary_max": "Salaire maximum : doit être supérieur au minimum"}))

		rec := s.do(http.MethodPost, "/v1/jobs", body, s.token(t, domain.RoleEmployer))
		assertStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, decode(t, rec).Error, "salary_max")
	})
}

func TestUpdateJob(t *testing.T) {
	s := newTestServer(t, nil)
	s.jobs.On("UpdateJob", mock.Anything, "emp-1", mock.MatchedBy(func(j *domain.Job) bool { return j.ID == 4 })).
		Return(apperror.Forbidden("Cette offre ne vous appartient pas"))

	rec := s.do(http.MethodPut, "/v1/jobs/4", map[string]string{"title": "Barman"}, s.token(t, domain.RoleEmployer))
	assertStatus(t, rec, http.StatusForbidden)
}

func TestChangeJobStatus(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, domain.RoleEmployer)
	s.jobs.On("ChangeStatus", mock.Anything, "emp-1", int64(4), domain.JobStatusActive).Return(nil)

	rec := s.do(http.MethodPatch, "/v1/jobs/4/status", map[string]string{"status": "active"}, token)
	assertStatus(t, rec, http.StatusOK)

	rec = s.do(http.MethodPatch, "/v1/jobs/4/status", map[string]string{}, token)
	assertStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, decode(t, rec).Error, "status")
}

func TestDeleteJob(t *testing.T) {
	s := newTestServer(t, nil)
	s.jobs.On("DeleteJob", mock.Anything, "emp-1", int64(4)).Return(nil)

	assertStatus(t, s.do(http.MethodDelete, "/v1/jobs/4", nil, s.token(t, domain.RoleEmployer)), http.StatusOK)
	s.jobs.AssertExpectations(t)
}

func TestEmployerRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, domain.RoleEmployer)

	t.Run("own jobs with status filter", func(t *testing.T) {
		s.employers.On("ListMyJobs", mock.Anything, "emp-1", "draft", 1, domain.DefaultPageSize).
			Return(domain.NewPaginatedResult([]domain.Job{{ID: 1}}, 1, 1, domain.DefaultPageSize), nil)

		rec := s.do(http.MethodGet, "/v1/employers/me/jobs?status=draft", nil, token)
		assertStatus(t, rec, http.StatusOK)
		var res domain.PaginatedResult[domain.Job]
		decodeData(t, rec, &res)
		assert.Equal(t, int64(1), res.Total)
	})

	t.Run("update profile", func(t *testing.T) {
		s.employers.On("UpdateMyProfile", mock.Anything, "emp-1", mock.MatchedBy(func(p *domain.EmployerProfile) bool {
			return p.CompanyName == "Hôtel Ivoire" && p.CompanyType == "hotel"
		})).Return(&domain.EmployerProfile{ID: 3, CompanyName: "Hôtel Ivoire"}, nil)

		rec := s.do(http.MethodPut, "/v1/employers/me", map[string]string{
			"company_name": " Hôtel Ivoire ", "company_type": "hotel", "company_size": "51-200", "country": "Côte d'Ivoire",
		}, token)
		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("candidates cannot read the employer space", func(t *testing.T) {
		assertStatus(t, s.do(http.MethodGet, "/v1/employers/me", nil, s.token(t, domain.RoleCandidate)), http.StatusForbidden)
	})

	t.Run("public company page", func(t *testing.T) {
		s.employers.On("GetPublic", mock.Anything, int64(3)).Return(&domain.EmployerPublic{
			ID: 3, CompanyName: "Hôtel Ivoire", ActiveJobs: []domain.Job{{ID: 4}},
		}, nil)

		rec := s.do(http.MethodGet, "/v1/employers/3", nil, "")
		assertStatus(t, rec, http.StatusOK)
		var res domain.EmployerPublic
		decodeData(t, rec, &res)
		assert.Len(t, res.ActiveJobs, 1)
	})
}
