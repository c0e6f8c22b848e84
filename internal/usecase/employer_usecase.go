package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
	"github.com/starkspartacus/job-sub000/pkg/validation"
)

type employerUsecase struct {
	employerRepo domain.EmployerRepository
	jobRepo      domain.JobRepository
}

func NewEmployerUsecase(employerRepo domain.EmployerRepository, jobRepo domain.JobRepository) domain.EmployerUsecase {
	return &employerUsecase{
		employerRepo: employerRepo,
		jobRepo:      jobRepo,
	}
}

// employerFor returns the company profile owned by userID.
func employerFor(ctx context.Context, repo domain.EmployerRepository, userID string) (*domain.EmployerProfile, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	profile, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profil employeur introuvable")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *employerUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	return employerFor(ctx, u.employerRepo, userID)
}

func (u *employerUsecase) UpdateMyProfile(ctx context.Context, userID string, input *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	current, err := employerFor(ctx, u.employerRepo, userID)
	if err != nil {
		return nil, err
	}

	input.CompanyName = strings.TrimSpace(input.CompanyName)
	if input.Phone != nil {
		phone := validation.NormalizePhone(*input.Phone)
		input.Phone = &phone
		if phone == "" {
			input.Phone = nil
		}
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if err := validateLocation(input.Country, input.City, input.Commune); err != nil {
		return nil, err
	}

	updated := *current
	updated.CompanyName = input.CompanyName
	updated.CompanyType = input.CompanyType
	updated.CompanySize = input.CompanySize
	updated.Address = input.Address
	updated.Country = input.Country
	updated.City = input.City
	updated.Commune = input.Commune
	updated.Description = input.Description
	updated.Website = input.Website
	updated.Phone = input.Phone
	updated.UpdatedAt = time.Now()

	if err := u.employerRepo.Update(ctx, &updated); err != nil {
		return nil, apperror.Internal(err)
	}
	return &updated, nil
}

// ListMyJobs lists every job of the caller's company. An empty status lists all statuses.
func (u *employerUsecase) ListMyJobs(ctx context.Context, userID, status string, page, pageSize int) (*domain.PaginatedResult[domain.Job], error) {
	profile, err := employerFor(ctx, u.employerRepo, userID)
	if err != nil {
		return nil, err
	}
	s := domain.JobStatus(status)
	if s != "" && !s.Valid() {
		return nil, apperror.Validation(invalidFieldsMessage, map[string]string{"status": validation.Label("status") + " : valeur inconnue"})
	}

	page, pageSize, offset := domain.Pagination(page, pageSize)
	jobs, total, err := u.jobRepo.FetchByEmployerID(ctx, profile.ID, s, pageSize, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(jobs, total, page, pageSize), nil
}

// GetPublic is the company page: no phone, only active jobs.
func (u *employerUsecase) GetPublic(ctx context.Context, id int64) (*domain.EmployerPublic, error) {
	profile, err := u.employerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Entreprise introuvable")
		}
		return nil, apperror.Internal(err)
	}

	jobs, _, err := u.jobRepo.FetchByEmployerID(ctx, profile.ID, domain.JobStatusActive, domain.MaxPageSize, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	return &domain.EmployerPublic{
		ID:          profile.ID,
		CompanyName: profile.CompanyName,
		CompanyType: profile.CompanyType,
		CompanySize: profile.CompanySize,
		Country:     profile.Country,
		City:        profile.City,
		Commune:     profile.Commune,
		Description: profile.Description,
		Website:     profile.Website,
		LogoURL:     profile.LogoURL,
		ActiveJobs:  jobs,
	}, nil
}
