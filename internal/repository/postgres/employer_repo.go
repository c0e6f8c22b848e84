package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starkspartacus/job-sub000/internal/domain"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

const employerColumns = `
	id, user_id, company_name, company_type, company_size, address,
	country, city, commune, description, website, phone, logo_url, created_at, updated_at`

func scanEmployer(row pgx.Row) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.CompanyType, &p.CompanySize, &p.Address,
		&p.Country, &p.City, &p.Commune, &p.Description, &p.Website, &p.Phone, &p.LogoURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	return scanEmployer(r.db.QueryRow(ctx, `SELECT `+employerColumns+` FROM employer_profiles WHERE user_id = $1`, userID))
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	return scanEmployer(r.db.QueryRow(ctx, `SELECT `+employerColumns+` FROM employer_profiles WHERE id = $1`, id))
}

func (r *employerRepo) Update(ctx context.Context, p *domain.EmployerProfile) error {
	query := `
		UPDATE employer_profiles SET
			company_name = $2, company_type = $3, company_size = $4, address = $5,
			country = $6, city = $7, commune = $8, description = $9, website = $10,
			phone = $11, updated_at = $12
		WHERE user_id = $1`
	return rowsAffected(r.db.Exec(ctx, query,
		p.UserID, p.CompanyName, p.CompanyType, p.CompanySize, p.Address,
		p.Country, p.City, p.Commune, p.Description, p.Website, p.Phone, p.UpdatedAt,
	))
}

func (r *employerRepo) UpdateLogoURL(ctx context.Context, userID, url string) error {
	return rowsAffected(r.db.Exec(ctx,
		`UPDATE employer_profiles SET logo_url = $2, updated_at = NOW() WHERE user_id = $1`, userID, url))
}
