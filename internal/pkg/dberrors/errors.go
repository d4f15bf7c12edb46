package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err is any unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// DuplicateField resolves the wire field behind a unique violation.
// constraints maps constraint names to field names; ok is false when err is
// not a unique violation or names a constraint missing from the map.
func DuplicateField(err error, constraints map[string]string) (field string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != UniqueViolation {
		return "", false
	}
	field, ok = constraints[pgErr.ConstraintName]
	return field, ok
}
