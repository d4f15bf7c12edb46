package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestTranslateError(t *testing.T) {
	notFound := apperrors.NewResourceNotFoundError("Thing not found")
	fields := map[string]string{"things_email_key": "email"}

	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, got error)
	}{
		{
			name: "no rows becomes not found",
			err:  pgx.ErrNoRows,
			check: func(t *testing.T, got error) {
				assert.Same(t, notFound, got)
			},
		},
		{
			name: "known unique constraint becomes field error",
			err:  uniqueViolation("things_email_key"),
			check: func(t *testing.T, got error) {
				var custom *apperrors.CustomError
				require.True(t, errors.As(got, &custom))
				assert.ErrorIs(t, got, apperrors.ErrValidationFailed)
				assert.Equal(t, "email already exists", custom.Details["email"])
			},
		},
		{
			name: "unknown unique constraint becomes conflict",
			err:  uniqueViolation("other_key"),
			check: func(t *testing.T, got error) {
				assert.NotErrorIs(t, got, apperrors.ErrValidationFailed)
				assert.ErrorIs(t, got, apperrors.ErrConflict)
			},
		},
		{
			name: "other errors are wrapped",
			err:  errors.New("boom"),
			check: func(t *testing.T, got error) {
				assert.EqualError(t, got, "op failed: boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, translateError(tt.err, "op failed", notFound, fields))
		})
	}
}
