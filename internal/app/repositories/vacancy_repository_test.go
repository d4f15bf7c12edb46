package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vacancyRowColumns = []string{
	"id", "title", "employer", "district", "positions", "valid_till", "interview_date", "interview_time", "applied_students",
}

func TestVacancyCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewVacancyRepository(mock)

	mock.ExpectQuery(`INSERT INTO vacancies \(applied_students,district,employer,interview_date,interview_time,positions,title,valid_till\) VALUES \(\$1,\$2,\$3,\$4::date,\$5::time,\$6,\$7,\$8::date\)`).
		WithArgs(0, "Pune", "Acme", "2024-07-01", "10:30", 3, "Welder", "2024-06-30").
		WillReturnRows(pgxmock.NewRows(vacancyRowColumns).
			AddRow(int64(5), "Welder", "Acme", "Pune", 3, "2024-06-30", "2024-07-01", "10:30", 0))

	vacancy := &models.Vacancy{
		Title: "Welder", Employer: "Acme", District: "Pune", Positions: 3,
		ValidTill: "2024-06-30", InterviewDate: "2024-07-01", InterviewTime: "10:30",
	}
	require.NoError(t, repo.Create(context.Background(), vacancy))
	assert.Equal(t, int64(5), vacancy.ID)
	assert.Equal(t, "10:30", vacancy.InterviewTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVacancyReplaceNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewVacancyRepository(mock)

	mock.ExpectQuery("UPDATE vacancies SET").WillReturnError(pgx.ErrNoRows)

	_, err := repo.Replace(context.Background(), 9, &models.Vacancy{Title: "x"})
	assert.Equal(t, apperrors.ErrVacancyNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVacancyDelete(t *testing.T) {
	mock := newMock(t)
	repo := NewVacancyRepository(mock)

	mock.ExpectExec("DELETE FROM vacancies WHERE id = \\$1").WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM vacancies WHERE id = \\$1").WithArgs(int64(6)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.Equal(t, apperrors.ErrVacancyNotFound, repo.Delete(context.Background(), 6))
	assert.NoError(t, mock.ExpectationsWereMet())
}
