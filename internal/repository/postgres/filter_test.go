package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/starkspartacus/job-sub000/internal/domain"
)

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.clause())

	w.add(`j.status = %s`, "active")
	w.addIf(`j.city = %s`, "")
	w.addIf(`j.country = %s`, "Mali")
	w.add(`(a ILIKE %s OR b ILIKE %s)`, "%x%")

	assert.Equal(t, " WHERE j.status = $1 AND j.country = $2 AND (a ILIKE $3 OR b ILIKE $3)", w.clause())
	assert.Equal(t, []interface{}{"active", "Mali", "%x%"}, w.args)
	assert.Equal(t, "$4", w.next(1))
	assert.Equal(t, "$5", w.next(2))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%chef%`, likePattern("  chef "))
	assert.Equal(t, `%50\% off\_now%`, likePattern("50% off_now"))
}

func TestMapErr(t *testing.T) {
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows), domain.ErrNotFound)

	err := mapErr(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_phone_key"})
	var dup *domain.DuplicateError
	assert.True(t, errors.As(err, &dup))
	assert.Equal(t, "phone", dup.Field)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	other := errors.New("boom")
	assert.Equal(t, other, mapErr(other))
	assert.NoError(t, mapErr(nil))
}
