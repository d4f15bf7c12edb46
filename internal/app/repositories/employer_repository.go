package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
)

var employerColumns = []string{
	"id", "business_name", "phone", "gst_number", "email", "irn", "category", "address", "district",
	"description", "enrollment", "documents", "eoi_letter", "certificate", "status", "rejection_reason",
	"password_hash", "created_at",
}

var employerUniqueFields = map[string]string{
	"employers_email_key":      "email",
	"employers_enrollment_key": "enrollment",
}

// EmployerRepository handles database operations for employers
type EmployerRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewEmployerRepository creates a new employer repository
func NewEmployerRepository(db DBTX) *EmployerRepository {
	return &EmployerRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanEmployer(row scanner) (*models.Employer, error) {
	var e models.Employer
	err := row.Scan(
		&e.ID, &e.BusinessName, &e.Phone, &e.GSTNumber, &e.Email, &e.IRN, &e.Category, &e.Address,
		&e.District, &e.Description, &e.Enrollment, &e.Documents, &e.EOILetter, &e.Certificate,
		&e.Status, &e.RejectionReason, &e.PasswordHash, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts an employer
func (r *EmployerRepository) Create(ctx context.Context, employer *models.Employer) error {
	sql, args, err := r.sb.Insert("employers").
		Columns("business_name", "phone", "gst_number", "email", "irn", "category", "address", "district",
			"description", "enrollment", "documents", "eoi_letter", "certificate", "status", "rejection_reason",
			"password_hash").
		Values(employer.BusinessName, employer.Phone, employer.GSTNumber, employer.Email, employer.IRN,
			employer.Category, employer.Address, employer.District, employer.Description, employer.Enrollment,
			employer.Documents, employer.EOILetter, employer.Certificate, string(employer.Status),
			employer.RejectionReason, employer.PasswordHash).
		Suffix("RETURNING " + joinColumns(employerColumns)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create employer query: %w", err)
	}

	created, err := scanEmployer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return translateError(err, "error creating employer", nil, employerUniqueFields)
	}

	*employer = *created
	return nil
}

// List returns every employer ordered by id
func (r *EmployerRepository) List(ctx context.Context) ([]*models.Employer, error) {
	sb := r.sb.Select(employerColumns...).From("employers").OrderBy("id")
	return queryList(ctx, r.db, sb, "error listing employers", scanEmployer)
}

// GetByID retrieves an employer by id
func (r *EmployerRepository) GetByID(ctx context.Context, id int64) (*models.Employer, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetByEnrollment retrieves an employer by labour registration enrollment
func (r *EmployerRepository) GetByEnrollment(ctx context.Context, enrollment string) (*models.Employer, error) {
	return r.getBy(ctx, squirrel.Eq{"enrollment": enrollment})
}

func (r *EmployerRepository) getBy(ctx context.Context, where squirrel.Eq) (*models.Employer, error) {
	sql, args, err := r.sb.Select(employerColumns...).From("employers").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get employer query: %w", err)
	}

	employer, err := scanEmployer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error retrieving employer", apperrors.ErrEmployerNotFound, nil)
	}
	return employer, nil
}

// Update applies column changes to the employer with id and returns the stored record
func (r *EmployerRepository) Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.Employer, error) {
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := r.sb.Update("employers").
		SetMap(changes).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(employerColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update employer query: %w", err)
	}

	employer, err := scanEmployer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error updating employer", apperrors.ErrEmployerNotFound, employerUniqueFields)
	}
	return employer, nil
}
