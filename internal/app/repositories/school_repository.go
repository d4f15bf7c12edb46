package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
)

var schoolColumns = []string{
	"id", "principal", "name", "phone", "email", "district", "eol_letter", "status", "rejection_reason",
	"password_hash", "created_at",
}

var schoolUniqueFields = map[string]string{
	"schools_email_key": "email",
}

// SchoolRepository handles database operations for school registrations
type SchoolRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db DBTX) *SchoolRepository {
	return &SchoolRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanSchool(row scanner) (*models.School, error) {
	var s models.School
	err := row.Scan(
		&s.ID, &s.Principal, &s.Name, &s.Phone, &s.Email, &s.District, &s.EOLLetter, &s.Status,
		&s.RejectionReason, &s.PasswordHash, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a school registration
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	sql, args, err := r.sb.Insert("schools").
		Columns("principal", "name", "phone", "email", "district", "eol_letter", "status", "rejection_reason", "password_hash").
		Values(school.Principal, school.Name, school.Phone, school.Email, school.District, school.EOLLetter,
			string(school.Status), school.RejectionReason, school.PasswordHash).
		Suffix("RETURNING " + joinColumns(schoolColumns)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create school query: %w", err)
	}

	created, err := scanSchool(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return translateError(err, "error creating school", nil, schoolUniqueFields)
	}

	*school = *created
	return nil
}

// List returns every school ordered by id
func (r *SchoolRepository) List(ctx context.Context) ([]*models.School, error) {
	sb := r.sb.Select(schoolColumns...).From("schools").OrderBy("id")
	return queryList(ctx, r.db, sb, "error listing schools", scanSchool)
}

// GetByID retrieves a school by id
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a school by email
func (r *SchoolRepository) GetByEmail(ctx context.Context, email string) (*models.School, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *SchoolRepository) getBy(ctx context.Context, where squirrel.Eq) (*models.School, error) {
	sql, args, err := r.sb.Select(schoolColumns...).From("schools").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get school query: %w", err)
	}

	school, err := scanSchool(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error retrieving school", apperrors.ErrSchoolNotFound, nil)
	}
	return school, nil
}

// Update applies column changes to the school with id and returns the stored record
func (r *SchoolRepository) Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.School, error) {
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := r.sb.Update("schools").
		SetMap(changes).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(schoolColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update school query: %w", err)
	}

	school, err := scanSchool(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error updating school", apperrors.ErrSchoolNotFound, schoolUniqueFields)
	}
	return school, nil
}
