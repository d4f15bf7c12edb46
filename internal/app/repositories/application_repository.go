package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
)

var applicationColumns = []string{
	"id", "student_id", "vacancy_id", "applied", "confirmed_interview", "status", "applied_date", "updated_at",
}

const applicationConflictTarget = "ON CONFLICT (student_id, vacancy_id) "

// ApplicationRepository handles database operations for job applications
type ApplicationRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanApplication(row scanner) (*models.JobApplication, error) {
	var a models.JobApplication
	err := row.Scan(&a.ID, &a.StudentID, &a.VacancyID, &a.Applied, &a.ConfirmedInterview, &a.Status, &a.AppliedDate, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Apply records that studentID applied to vacancyID. When the pair already
// exists nothing is written and created is false.
func (r *ApplicationRepository) Apply(ctx context.Context, studentID, vacancyID int64) (*models.JobApplication, bool, error) {
	sql, args, err := r.sb.Insert("job_applications").
		Columns("student_id", "vacancy_id", "applied", "status").
		Values(studentID, vacancyID, true, string(models.ApplicationPending)).
		Suffix(applicationConflictTarget + "DO NOTHING RETURNING " + joinColumns(applicationColumns)).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build apply query: %w", err)
	}

	application, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, translateError(err, "error applying to vacancy", nil, nil)
	}
	return application, true, nil
}

// ConfirmInterview creates the pair when missing, then marks the interview
// confirmed and resets the status to Pending.
func (r *ApplicationRepository) ConfirmInterview(ctx context.Context, studentID, vacancyID int64) (*models.JobApplication, error) {
	sql, args, err := r.sb.Insert("job_applications").
		Columns("student_id", "vacancy_id", "confirmed_interview", "status").
		Values(studentID, vacancyID, true, string(models.ApplicationPending)).
		Suffix(applicationConflictTarget +
			"DO UPDATE SET confirmed_interview = TRUE, status = EXCLUDED.status, updated_at = NOW() RETURNING " +
			joinColumns(applicationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build confirm interview query: %w", err)
	}

	application, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error confirming interview", nil, nil)
	}
	return application, nil
}

// UpdateStatus sets the status of the application with id
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	sql, args, err := r.sb.Update("job_applications").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(applicationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update application status query: %w", err)
	}

	application, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error updating application status", apperrors.ErrApplicationNotFound, nil)
	}
	return application, nil
}

// ListForStudent returns the applications of one student with the vacancy title
func (r *ApplicationRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentApplication, error) {
	sb := r.sb.Select("a.vacancy_id", "a.status", "v.title").
		From("job_applications a").
		Join("vacancies v ON v.id = a.vacancy_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.id")

	return queryList(ctx, r.db, sb, "error listing student applications", func(row scanner) (*models.StudentApplication, error) {
		var a models.StudentApplication
		if err := row.Scan(&a.VacancyID, &a.Status, &a.Title); err != nil {
			return nil, err
		}
		return &a, nil
	})
}

// ListRoster returns every application joined with its student and vacancy
func (r *ApplicationRepository) ListRoster(ctx context.Context) ([]*models.ApplicationRosterEntry, error) {
	sb := r.sb.Select("a.id", "s.name", "s.email", "s.school_name", "v.title", "a.status").
		From("job_applications a").
		Join("students s ON s.id = a.student_id").
		Join("vacancies v ON v.id = a.vacancy_id").
		OrderBy("a.id")

	return queryList(ctx, r.db, sb, "error listing applications", func(row scanner) (*models.ApplicationRosterEntry, error) {
		var e models.ApplicationRosterEntry
		if err := row.Scan(&e.ID, &e.Student, &e.Email, &e.School, &e.JobTitle, &e.Status); err != nil {
			return nil, err
		}
		return &e, nil
	})
}
