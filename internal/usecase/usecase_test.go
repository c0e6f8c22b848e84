package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/email"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, candidate *domain.CandidateProfile, employer *domain.EmployerProfile) error {
	return m.Called(ctx, user, candidate, employer).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateRepo) UpdateFileURL(ctx context.Context, userID, column, url string) error {
	return m.Called(ctx, userID, column, url).Error(0)
}

func (m *MockCandidateRepo) Search(ctx context.Context, filter domain.CandidateFilter, limit, offset int) ([]domain.CandidateProfile, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.CandidateProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockCandidateRepo) ListExperiences(ctx context.Context, candidateID int64) ([]domain.Experience, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockCandidateRepo) ListEducations(ctx context.Context, candidateID int64) ([]domain.Education, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockCandidateRepo) ListCertifications(ctx context.Context, candidateID int64) ([]domain.Certification, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}

func (m *MockCandidateRepo) ListSkills(ctx context.Context, candidateID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockCandidateRepo) AddExperience(ctx context.Context, e *domain.Experience) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockCandidateRepo) AddEducation(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockCandidateRepo) AddCertification(ctx context.Context, c *domain.Certification) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) AddSkill(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCandidateRepo) DeleteSubRecord(ctx context.Context, kind domain.SubRecordKind, candidateID, id int64) error {
	return m.Called(ctx, kind, candidateID, id).Error(0)
}

func (m *MockCandidateRepo) CountSubRecords(ctx context.Context, candidateID int64) (map[domain.SubRecordKind]int, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.SubRecordKind]int), args.Error(1)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockEmployerRepo) UpdateLogoURL(ctx context.Context, userID, url string) error {
	return m.Called(ctx, userID, url).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithEmployer), args.Error(1)
}

func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobWithEmployer), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID int64, status domain.JobStatus, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, employerID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) CountByStatus(ctx context.Context, employerID int64) (domain.JobStatusCounts, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.JobStatusCounts), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformStats), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockMailer) SendWelcomeEmail(to string, data email.WelcomeEmailData) error {
	return m.Called(to, data).Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
