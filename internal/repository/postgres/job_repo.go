package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/starkspartacus/job-sub000/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `
	j.id, j.employer_id, j.title, j.description, j.category, j.contract_type, j.experience_level,
	j.salary_min, j.salary_max, j.requirements, j.country, j.city, j.commune, j.status,
	j.created_at, j.updated_at`

func jobDest(j *domain.Job) []interface{} {
	return []interface{}{
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Category, &j.ContractType, &j.ExperienceLevel,
		&j.SalaryMin, &j.SalaryMax, pq.Array(&j.Requirements), &j.Country, &j.City, &j.Commune, &j.Status,
		&j.CreatedAt, &j.UpdatedAt,
	}
}

func scanJobWithEmployer(row pgx.Row) (*domain.JobWithEmployer, error) {
	var j domain.JobWithEmployer
	dest := append(jobDest(&j.Job), &j.CompanyName, &j.CompanyType, &j.LogoURL)
	if err := row.Scan(dest...); err != nil {
		return nil, mapErr(err)
	}
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (
			employer_id, title, description, category, contract_type, experience_level,
			salary_min, salary_max, requirements, country, city, commune, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Category, job.ContractType, job.ExperienceLevel,
		job.SalaryMin, job.SalaryMax, pq.Array(nonNil(job.Requirements)), job.Country, job.City, job.Commune,
		job.Status, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	return mapErr(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var j domain.Job
	err := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id).Scan(jobDest(&j)...)
	if err != nil {
		return nil, mapErr(err)
	}
	return &j, nil
}

// GetByIDWithEmployer retrieves a job with the company fields shown on its page
func (r *jobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := `
		SELECT ` + jobColumns + `, e.company_name, e.company_type, e.logo_url
		FROM jobs j
		JOIN employer_profiles e ON e.id = j.employer_id
		WHERE j.id = $1`
	return scanJobWithEmployer(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepo) Search(ctx context.Context, f domain.JobFilter, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add(`j.status = %s`, string(f.Status))
	}
	if f.Term != "" {
		w.add(`(j.title || ' ' || j.description || ' ' || e.company_name) ILIKE %s`, likePattern(f.Term))
	}
	w.addIf(`j.category = %s`, f.Category)
	w.addIf(`j.contract_type = %s`, f.ContractType)
	w.addIf(`j.experience_level = %s`, f.ExperienceLevel)
	w.addIf(`j.country = %s`, f.Country)
	w.addIf(`j.city = %s`, f.City)
	w.addIf(`j.commune = %s`, f.Commune)
	if f.EmployerID != 0 {
		w.add(`j.employer_id = %s`, f.EmployerID)
	}

	from := ` FROM jobs j JOIN employer_profiles e ON e.id = j.employer_id` + w.clause()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+from, w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + jobColumns + `, e.company_name, e.company_type, e.logo_url` + from +
		fmt.Sprintf(` ORDER BY j.created_at DESC, j.id DESC LIMIT %s OFFSET %s`, w.next(1), w.next(2))
	rows, err := r.db.Query(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]domain.JobWithEmployer, 0)
	for rows.Next() {
		j, err := scanJobWithEmployer(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID int64, status domain.JobStatus, limit, offset int) ([]domain.Job, int64, error) {
	var w whereBuilder
	w.add(`j.employer_id = %s`, employerID)
	if status != "" {
		w.add(`j.status = %s`, string(status))
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + jobColumns + ` FROM jobs j` + w.clause() +
		fmt.Sprintf(` ORDER BY j.created_at DESC, j.id DESC LIMIT %s OFFSET %s`, w.next(1), w.next(2))
	rows, err := r.db.Query(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(jobDest(&j)...); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) CountByStatus(ctx context.Context, employerID int64) (domain.JobStatusCounts, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM jobs WHERE employer_id = $1 GROUP BY status`, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := domain.JobStatusCounts{
		domain.JobStatusDraft:  0,
		domain.JobStatusActive: 0,
		domain.JobStatusClosed: 0,
	}
	for rows.Next() {
		var status domain.JobStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs SET
			title = $2, description = $3, category = $4, contract_type = $5, experience_level = $6,
			salary_min = $7, salary_max = $8, requirements = $9, country = $10, city = $11, commune = $12,
			updated_at = $13
		WHERE id = $1`
	return rowsAffected(r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Category, job.ContractType, job.ExperienceLevel,
		job.SalaryMin, job.SalaryMax, pq.Array(nonNil(job.Requirements)), job.Country, job.City, job.Commune,
		job.UpdatedAt,
	))
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	return rowsAffected(r.db.Exec(ctx, `UPDATE jobs SET status = $2, updated_at = NOW() WHERE id = $1`, id, string(status)))
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	return rowsAffected(r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id))
}
