package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
)

var vacancyColumns = []string{
	"id", "title", "employer", "district", "positions",
	"to_char(valid_till, 'YYYY-MM-DD')", "to_char(interview_date, 'YYYY-MM-DD')",
	"to_char(interview_time, 'HH24:MI')", "applied_students",
}

// VacancyRepository handles database operations for vacancies
type VacancyRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewVacancyRepository creates a new vacancy repository
func NewVacancyRepository(db DBTX) *VacancyRepository {
	return &VacancyRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanVacancy(row scanner) (*models.Vacancy, error) {
	var v models.Vacancy
	err := row.Scan(
		&v.ID, &v.Title, &v.Employer, &v.District, &v.Positions,
		&v.ValidTill, &v.InterviewDate, &v.InterviewTime, &v.AppliedStudents,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func vacancyValues(v *models.Vacancy) map[string]interface{} {
	return map[string]interface{}{
		"title":            v.Title,
		"employer":         v.Employer,
		"district":         v.District,
		"positions":        v.Positions,
		"valid_till":       castDate(v.ValidTill),
		"interview_date":   castDate(v.InterviewDate),
		"interview_time":   castTime(v.InterviewTime),
		"applied_students": v.AppliedStudents,
	}
}

// Create inserts a vacancy
func (r *VacancyRepository) Create(ctx context.Context, vacancy *models.Vacancy) error {
	sql, args, err := r.sb.Insert("vacancies").
		SetMap(vacancyValues(vacancy)).
		Suffix("RETURNING " + joinColumns(vacancyColumns)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create vacancy query: %w", err)
	}

	created, err := scanVacancy(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return translateError(err, "error creating vacancy", nil, nil)
	}

	*vacancy = *created
	return nil
}

// List returns every vacancy ordered by id
func (r *VacancyRepository) List(ctx context.Context) ([]*models.Vacancy, error) {
	sb := r.sb.Select(vacancyColumns...).From("vacancies").OrderBy("id")
	return queryList(ctx, r.db, sb, "error listing vacancies", scanVacancy)
}

// GetByID retrieves a vacancy by id
func (r *VacancyRepository) GetByID(ctx context.Context, id int64) (*models.Vacancy, error) {
	sql, args, err := r.sb.Select(vacancyColumns...).From("vacancies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get vacancy query: %w", err)
	}

	vacancy, err := scanVacancy(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error retrieving vacancy", apperrors.ErrVacancyNotFound, nil)
	}
	return vacancy, nil
}

// Replace overwrites every field of the vacancy with id
func (r *VacancyRepository) Replace(ctx context.Context, id int64, vacancy *models.Vacancy) (*models.Vacancy, error) {
	sql, args, err := r.sb.Update("vacancies").
		SetMap(vacancyValues(vacancy)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(vacancyColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build replace vacancy query: %w", err)
	}

	updated, err := scanVacancy(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error replacing vacancy", apperrors.ErrVacancyNotFound, nil)
	}
	return updated, nil
}

// Delete removes a vacancy; its applications go with it
func (r *VacancyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("vacancies").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete vacancy query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting vacancy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrVacancyNotFound
	}
	return nil
}
