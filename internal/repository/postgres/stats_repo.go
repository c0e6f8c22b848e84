package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starkspartacus/job-sub000/internal/domain"
)

type statsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) domain.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	var s domain.PlatformStats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM jobs WHERE status = 'active'),
			(SELECT COUNT(*) FROM candidate_profiles),
			(SELECT COUNT(*) FROM employer_profiles),
			(SELECT COUNT(DISTINCT (country, city)) FROM jobs WHERE status = 'active' AND city <> '')`,
	).Scan(&s.ActiveJobs, &s.Candidates, &s.Employers, &s.Cities)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
