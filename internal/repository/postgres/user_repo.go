package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/starkspartacus/job-sub000/internal/domain"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, phone, password_hash, role, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email))
}

func (r *userRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone))
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	return exists, err
}

func (r *userRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE phone = $1)`, phone).Scan(&exists)
	return exists, err
}

// CreateWithProfile writes the user row and its role profile in one transaction.
func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User, candidate *domain.CandidateProfile, employer *domain.EmployerProfile) error {
	if (candidate == nil) == (employer == nil) {
		return fmt.Errorf("exactly one profile is required")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, email, phone, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Phone, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}

	if candidate != nil {
		candidate.UserID = user.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO candidate_profiles (
				user_id, first_name, last_name, title, skills, languages,
				experience_level, availability, salary_expectation, phone,
				country, city, commune, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING id`,
			candidate.UserID, candidate.FirstName, candidate.LastName, candidate.Title,
			pq.Array(nonNil(candidate.Skills)), pq.Array(nonNil(candidate.Languages)),
			candidate.ExperienceLevel, candidate.Availability, candidate.SalaryExpectation, candidate.Phone,
			candidate.Country, candidate.City, candidate.Commune, candidate.CreatedAt, candidate.UpdatedAt,
		).Scan(&candidate.ID)
	} else {
		employer.UserID = user.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO employer_profiles (
				user_id, company_name, company_type, company_size, address,
				country, city, commune, description, website, phone, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id`,
			employer.UserID, employer.CompanyName, employer.CompanyType, employer.CompanySize, employer.Address,
			employer.Country, employer.City, employer.Commune, employer.Description, employer.Website, employer.Phone,
			employer.CreatedAt, employer.UpdatedAt,
		).Scan(&employer.ID)
	}
	if err != nil {
		return mapErr(err)
	}

	return tx.Commit(ctx)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
