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

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	profile, err := employerFor(ctx, u.employerRepo, userID)
	if err != nil {
		return err
	}

	if job.Status == "" {
		job.Status = domain.JobStatusDraft
	}
	if err := validateJob(job); err != nil {
		return err
	}

	job.EmployerID = profile.ID
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetPublicJob hides drafts and closed postings from the public.
func (u *jobUsecase) GetPublicJob(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	job, err := u.jobRepo.GetByIDWithEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Offre introuvable")
		}
		return nil, apperror.Internal(err)
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.NotFound("Offre introuvable")
	}
	return job, nil
}

// Search only ever returns active jobs, newest first.
// SECURITY: the status filter is forced server-side.
func (u *jobUsecase) Search(ctx context.Context, filter domain.JobFilter) (*domain.PaginatedResult[domain.JobWithEmployer], error) {
	page, pageSize, offset := domain.Pagination(filter.Page, filter.PageSize)
	filter.Term = strings.TrimSpace(filter.Term)
	filter.Status = domain.JobStatusActive

	jobs, total, err := u.jobRepo.Search(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(jobs, total, page, pageSize), nil
}

// UpdateJob replaces the content of a posting. Status changes go through ChangeStatus.
func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	current, err := u.ownedJob(ctx, userID, job.ID)
	if err != nil {
		return err
	}

	job.Status = current.Status
	if err := validateJob(job); err != nil {
		return err
	}

	job.EmployerID = current.EmployerID
	job.CreatedAt = current.CreatedAt
	job.UpdatedAt = time.Now()

	return wrapRepoErr(u.jobRepo.Update(ctx, job))
}

func (u *jobUsecase) ChangeStatus(ctx context.Context, userID string, id int64, status domain.JobStatus) error {
	if !status.Valid() {
		return apperror.Validation(invalidFieldsMessage, map[string]string{"status": validation.Label("status") + " : valeur inconnue"})
	}
	current, err := u.ownedJob(ctx, userID, id)
	if err != nil {
		return err
	}
	if current.Status == status {
		return nil
	}
	return wrapRepoErr(u.jobRepo.UpdateStatus(ctx, id, status))
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	if _, err := u.ownedJob(ctx, userID, id); err != nil {
		return err
	}
	return wrapRepoErr(u.jobRepo.Delete(ctx, id))
}

// ownedJob loads a job and checks it belongs to the caller's company.
func (u *jobUsecase) ownedJob(ctx context.Context, userID string, id int64) (*domain.Job, error) {
	profile, err := employerFor(ctx, u.employerRepo, userID)
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Offre introuvable")
		}
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != profile.ID {
		return nil, apperror.Forbidden("Vous ne pouvez modifier que vos propres offres")
	}
	return job, nil
}

func validateJob(job *domain.Job) error {
	job.Title = strings.TrimSpace(job.Title)
	if err := validateStruct(job); err != nil {
		return err
	}
	if !job.Status.Valid() {
		return apperror.Validation(invalidFieldsMessage, map[string]string{"status": validation.Label("status") + " : valeur inconnue"})
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.Validation(invalidFieldsMessage, map[string]string{
			"salary_max": validation.Label("salary_max") + " : doit être supérieur ou égal au salaire minimum",
		})
	}
	return validateLocation(job.Country, job.City, job.Commune)
}
