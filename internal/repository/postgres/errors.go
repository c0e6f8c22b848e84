package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/starkspartacus/job-sub000/internal/domain"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapErr turns driver errors into domain errors; anything else is returned as is.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &domain.DuplicateError{Field: fieldFromConstraint(pgErr.ConstraintName)}
		case pgForeignKeyViolation:
			return domain.ErrNotFound
		}
	}
	return err
}

// users_email_key -> email
func fieldFromConstraint(name string) string {
	switch {
	case strings.Contains(name, "email"):
		return "email"
	case strings.Contains(name, "phone"):
		return "phone"
	case strings.Contains(name, "skills"):
		return "name"
	}
	return name
}

// rowsAffected maps an update that touched nothing to ErrNotFound.
func rowsAffected(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
