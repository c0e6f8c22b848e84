package v1_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/starkspartacus/job-sub000/internal/domain"
)

type MockAuthUC struct{ mock.Mock }

func (m *MockAuthUC) Register(ctx context.Context, req *domain.RegistrationRequest) (*domain.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthUC) Login(ctx context.Context, req *domain.LoginRequest, meta domain.LoginMeta) (*domain.AuthResult, error) {
	args := m.Called(ctx, req, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthUC) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCandidateUC struct{ mock.Mock }

func (m *MockCandidateUC) GetMyProfile(ctx context.Context, userID string) (*domain.CandidateDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateDetail), args.Error(1)
}

func (m *MockCandidateUC) UpdateMyProfile(ctx context.Context, userID string, profile *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateUC) AddExperience(ctx context.Context, userID string, e *domain.Experience) error {
	return m.Called(ctx, userID, e).Error(0)
}

func (m *MockCandidateUC) AddEducation(ctx context.Context, userID string, e *domain.Education) error {
	return m.Called(ctx, userID, e).Error(0)
}

func (m *MockCandidateUC) AddCertification(ctx context.Context, userID string, c *domain.Certification) error {
	return m.Called(ctx, userID, c).Error(0)
}

func (m *MockCandidateUC) AddSkill(ctx context.Context, userID string, s *domain.Skill) error {
	return m.Called(ctx, userID, s).Error(0)
}

func (m *MockCandidateUC) DeleteSubRecord(ctx context.Context, userID string, kind domain.SubRecordKind, id int64) error {
	return m.Called(ctx, userID, kind, id).Error(0)
}

func (m *MockCandidateUC) Search(ctx context.Context, filter domain.CandidateFilter) (*domain.PaginatedResult[domain.PublicCandidate], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaginatedResult[domain.PublicCandidate]), args.Error(1)
}

func (m *MockCandidateUC) GetPublic(ctx context.Context, id int64) (*domain.PublicCandidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicCandidate), args.Error(1)
}

func (m *MockCandidateUC) Export(ctx context.Context, userID string, filter domain.CandidateFilter) ([]byte, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockEmployerUC struct{ mock.Mock }

func (m *MockEmployerUC) GetMyProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerUC) UpdateMyProfile(ctx context.Context, userID string, profile *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerUC) ListMyJobs(ctx context.Context, userID, status string, page, pageSize int) (*domain.PaginatedResult[domain.Job], error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaginatedResult[domain.Job]), args.Error(1)
}

func (m *MockEmployerUC) GetPublic(ctx context.Context, id int64) (*domain.EmployerPublic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerPublic), args.Error(1)
}

type MockJobUC struct{ mock.Mock }

func (m *MockJobUC) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	return m.Called(ctx, userID, job).Error(0)
}

func (m *MockJobUC) GetPublicJob(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithEmployer), args.Error(1)
}

func (m *MockJobUC) Search(ctx context.Context, filter domain.JobFilter) (*domain.PaginatedResult[domain.JobWithEmployer], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaginatedResult[domain.JobWithEmployer]), args.Error(1)
}

func (m *MockJobUC) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	return m.Called(ctx, userID, job).Error(0)
}

func (m *MockJobUC) ChangeStatus(ctx context.Context, userID string, id int64, status domain.JobStatus) error {
	return m.Called(ctx, userID, id, status).Error(0)
}

func (m *MockJobUC) DeleteJob(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockUploadUC struct{ mock.Mock }

func (m *MockUploadUC) Upload(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}

type MockDashboardUC struct{ mock.Mock }

func (m *MockDashboardUC) GetDashboard(ctx context.Context, userID, role string) (*domain.Dashboard, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockDashboardUC) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformStats), args.Error(1)
}

type stubHealth struct {
	status map[string]string
	ok     bool
}

func (s stubHealth) Check(context.Context) (map[string]string, bool) {
	return s.status, s.ok
}
