package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/dberrors"
)

// DBTX is the query surface shared by *pgxpool.Pool, pgx.Tx and pgxmock
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository     *StudentRepository
	OfficialRepository    *OfficialRepository
	EmployerRepository    *EmployerRepository
	VacancyRepository     *VacancyRepository
	SchoolRepository      *SchoolRepository
	ApplicationRepository *ApplicationRepository
	ALORepository         *OfficerRepository
	DLORepository         *OfficerRepository
	CompanyRepository     *CompanyRepository
	CommissionRepository  *CommissionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		OfficialRepository:    NewOfficialRepository(db),
		EmployerRepository:    NewEmployerRepository(db),
		VacancyRepository:     NewVacancyRepository(db),
		SchoolRepository:      NewSchoolRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		ALORepository:         NewOfficerRepository(db, models.OfficerALO),
		DLORepository:         NewOfficerRepository(db, models.OfficerDLO),
		CompanyRepository:     NewCompanyRepository(db),
		CommissionRepository:  NewCommissionRepository(db),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

type scanner interface {
	Scan(dest ...any) error
}

// translateError maps driver errors to application errors: no rows becomes
// notFound, unique violations become a field-level validation error, or a
// conflict when the constraint names no known field.
func translateError(err error, op string, notFound error, uniqueFields map[string]string) error {
	if errors.Is(err, pgx.ErrNoRows) && notFound != nil {
		return notFound
	}
	if field, ok := dberrors.DuplicateField(err, uniqueFields); ok {
		return apperrors.NewFieldError(field, field+" already exists")
	}
	if dberrors.IsUniqueViolation(err) {
		return apperrors.NewConflictError("Resource already exists")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// queryList runs a select built by sb and scans each row with scan
func queryList[T any](ctx context.Context, db DBTX, sb squirrel.SelectBuilder, op string, scan func(scanner) (*T, error)) ([]*T, error) {
	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// castDate wraps a YYYY-MM-DD value so it binds as a date column
func castDate(value interface{}) squirrel.Sqlizer {
	return squirrel.Expr("?::date", value)
}

// castTime wraps an hh:mm value so it binds as a time column
func castTime(value interface{}) squirrel.Sqlizer {
	return squirrel.Expr("?::time", value)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
