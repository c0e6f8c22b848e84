package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/starkspartacus/job-sub000/internal/domain"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `
	id, user_id, first_name, last_name, title, bio, skills, languages,
	experience_level, availability, salary_expectation, phone,
	country, city, commune, photo_url, cv_url, created_at, updated_at`

func scanCandidate(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Title, &p.Bio,
		pq.Array(&p.Skills), pq.Array(&p.Languages),
		&p.ExperienceLevel, &p.Availability, &p.SalaryExpectation, &p.Phone,
		&p.Country, &p.City, &p.Commune, &p.PhotoURL, &p.CVURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	return scanCandidate(r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidate_profiles WHERE user_id = $1`, userID))
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	return scanCandidate(r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidate_profiles WHERE id = $1`, id))
}

func (r *candidateRepo) Update(ctx context.Context, p *domain.CandidateProfile) error {
	query := `
		UPDATE candidate_profiles SET
			first_name = $2, last_name = $3, title = $4, bio = $5, skills = $6, languages = $7,
			experience_level = $8, availability = $9, salary_expectation = $10, phone = $11,
			country = $12, city = $13, commune = $14, updated_at = $15
		WHERE user_id = $1`
	return rowsAffected(r.db.Exec(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.Title, p.Bio,
		pq.Array(nonNil(p.Skills)), pq.Array(nonNil(p.Languages)),
		p.ExperienceLevel, p.Availability, p.SalaryExpectation, p.Phone,
		p.Country, p.City, p.Commune, p.UpdatedAt,
	))
}

// file columns writable through UpdateFileURL
var candidateFileColumns = map[string]bool{"photo_url": true, "cv_url": true}

func (r *candidateRepo) UpdateFileURL(ctx context.Context, userID, column, url string) error {
	if !candidateFileColumns[column] {
		return fmt.Errorf("unknown file column %q", column)
	}
	query := fmt.Sprintf(`UPDATE candidate_profiles SET %s = $2, updated_at = NOW() WHERE user_id = $1`, column)
	return rowsAffected(r.db.Exec(ctx, query, userID, url))
}

func (r *candidateRepo) Search(ctx context.Context, f domain.CandidateFilter, limit, offset int) ([]domain.CandidateProfile, int64, error) {
	var w whereBuilder
	if f.Term != "" {
		w.add(`(first_name || ' ' || last_name || ' ' || title || ' ' || bio || ' ' || array_to_string(skills, ' ')) ILIKE %s`, likePattern(f.Term))
	}
	w.addIf(`experience_level = %s`, f.ExperienceLevel)
	w.addIf(`availability = %s`, f.Availability)
	w.addIf(`country = %s`, f.Country)
	w.addIf(`city = %s`, f.City)
	w.addIf(`commune = %s`, f.Commune)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidate_profiles`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles` + w.clause() +
		fmt.Sprintf(` ORDER BY updated_at DESC, id DESC LIMIT %s OFFSET %s`, w.next(1), w.next(2))
	rows, err := r.db.Query(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	profiles := make([]domain.CandidateProfile, 0)
	for rows.Next() {
		p, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, total, rows.Err()
}

func (r *candidateRepo) ListExperiences(ctx context.Context, candidateID int64) ([]domain.Experience, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, candidate_id, position, employer, city, start_date, end_date, description
		FROM candidate_experiences WHERE candidate_id = $1
		ORDER BY start_date DESC, id DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Experience, 0)
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Position, &e.Employer, &e.City, &e.StartDate, &e.EndDate, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *candidateRepo) ListEducations(ctx context.Context, candidateID int64) ([]domain.Education, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, candidate_id, school, degree, field, start_date, end_date
		FROM candidate_educations WHERE candidate_id = $1
		ORDER BY start_date DESC, id DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Education, 0)
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.School, &e.Degree, &e.Field, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *candidateRepo) ListCertifications(ctx context.Context, candidateID int64) ([]domain.Certification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, candidate_id, name, issuer, issued_at, expires_at, url
		FROM candidate_certifications WHERE candidate_id = $1
		ORDER BY issued_at DESC, id DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Certification, 0)
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(&c.ID, &c.CandidateID, &c.Name, &c.Issuer, &c.IssuedAt, &c.ExpiresAt, &c.URL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *candidateRepo) ListSkills(ctx context.Context, candidateID int64) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, candidate_id, name, level
		FROM candidate_skills WHERE candidate_id = $1
		ORDER BY name`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Skill, 0)
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.CandidateID, &s.Name, &s.Level); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *candidateRepo) AddExperience(ctx context.Context, e *domain.Experience) error {
	return mapErr(r.db.QueryRow(ctx, `
		INSERT INTO candidate_experiences (candidate_id, position, employer, city, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		e.CandidateID, e.Position, e.Employer, e.City, e.StartDate, e.EndDate, e.Description,
	).Scan(&e.ID))
}

func (r *candidateRepo) AddEducation(ctx context.Context, e *domain.Education) error {
	return mapErr(r.db.QueryRow(ctx, `
		INSERT INTO candidate_educations (candidate_id, school, degree, field, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		e.CandidateID, e.School, e.Degree, e.Field, e.StartDate, e.EndDate,
	).Scan(&e.ID))
}

func (r *candidateRepo) AddCertification(ctx context.Context, c *domain.Certification) error {
	return mapErr(r.db.QueryRow(ctx, `
		INSERT INTO candidate_certifications (candidate_id, name, issuer, issued_at, expires_at, url)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		c.CandidateID, c.Name, c.Issuer, c.IssuedAt, c.ExpiresAt, c.URL,
	).Scan(&c.ID))
}

func (r *candidateRepo) AddSkill(ctx context.Context, s *domain.Skill) error {
	return mapErr(r.db.QueryRow(ctx, `
		INSERT INTO candidate_skills (candidate_id, name, level)
		VALUES ($1, $2, $3) RETURNING id`,
		s.CandidateID, s.Name, s.Level,
	).Scan(&s.ID))
}

var subRecordTables = map[domain.SubRecordKind]string{
	domain.KindExperience:    "candidate_experiences",
	domain.KindEducation:     "candidate_educations",
	domain.KindCertification: "candidate_certifications",
	domain.KindSkill:         "candidate_skills",
}

func (r *candidateRepo) DeleteSubRecord(ctx context.Context, kind domain.SubRecordKind, candidateID, id int64) error {
	table, ok := subRecordTables[kind]
	if !ok {
		return fmt.Errorf("unknown sub-record kind %q", kind)
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND candidate_id = $2`, table)
	return rowsAffected(r.db.Exec(ctx, query, id, candidateID))
}

func (r *candidateRepo) CountSubRecords(ctx context.Context, candidateID int64) (map[domain.SubRecordKind]int, error) {
	var exp, edu, cert, skill int
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM candidate_experiences WHERE candidate_id = $1),
			(SELECT COUNT(*) FROM candidate_educations WHERE candidate_id = $1),
			(SELECT COUNT(*) FROM candidate_certifications WHERE candidate_id = $1),
			(SELECT COUNT(*) FROM candidate_skills WHERE candidate_id = $1)`,
		candidateID,
	).Scan(&exp, &edu, &cert, &skill)
	if err != nil {
		return nil, err
	}
	return map[domain.SubRecordKind]int{
		domain.KindExperience:    exp,
		domain.KindEducation:     edu,
		domain.KindCertification: cert,
		domain.KindSkill:         skill,
	}, nil
}
