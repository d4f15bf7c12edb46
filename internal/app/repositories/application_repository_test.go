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

var applicationRowColumns = []string{
	"id", "student_id", "vacancy_id", "applied", "confirmed_interview", "status", "applied_date", "updated_at",
}

func applicationRow(confirmed bool) *pgxmock.Rows {
	return pgxmock.NewRows(applicationRowColumns).
		AddRow(int64(7), int64(1), int64(5), true, confirmed, models.ApplicationPending, fixedTime, fixedTime)
}

func TestApplyCreatesApplication(t *testing.T) {
	mock := newMock(t)
	repo := NewApplicationRepository(mock)

	mock.ExpectQuery(`INSERT INTO job_applications .* ON CONFLICT \(student_id, vacancy_id\) DO NOTHING RETURNING`).
		WithArgs(int64(1), int64(5), true, "Pending").
		WillReturnRows(applicationRow(false))

	application, created, err := repo.Apply(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(7), application.ID)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyExistingPair(t *testing.T) {
	mock := newMock(t)
	repo := NewApplicationRepository(mock)

	mock.ExpectQuery("ON CONFLICT \\(student_id, vacancy_id\\) DO NOTHING").
		WillReturnRows(pgxmock.NewRows(applicationRowColumns))

	application, created, err := repo.Apply(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, application)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmInterviewUpserts(t *testing.T) {
	mock := newMock(t)
	repo := NewApplicationRepository(mock)

	mock.ExpectQuery(`ON CONFLICT \(student_id, vacancy_id\) DO UPDATE SET confirmed_interview = TRUE, status = EXCLUDED.status`).
		WithArgs(int64(1), int64(5), true, "Pending").
		WillReturnRows(applicationRow(true))

	application, err := repo.ConfirmInterview(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, application.ConfirmedInterview)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewApplicationRepository(mock)

	mock.ExpectQuery(`UPDATE job_applications SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("Approved", int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), 99, models.ApplicationApproved)
	assert.Equal(t, apperrors.ErrApplicationNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListForStudent(t *testing.T) {
	mock := newMock(t)
	repo := NewApplicationRepository(mock)

	mock.ExpectQuery(`SELECT a.vacancy_id, a.status, v.title FROM job_applications a JOIN vacancies v`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"vacancy_id", "status", "title"}).
			AddRow(int64(5), models.ApplicationApproved, "Welder"))

	items, err := repo.ListForStudent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.StudentApplication{VacancyID: 5, Status: models.ApplicationApproved, Title: "Welder"}, *items[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRoster(t *testing.T) {
	mock := newMock(t)
	repo := NewApplicationRepository(mock)

	mock.ExpectQuery(`JOIN students s ON s.id = a.student_id JOIN vacancies v ON v.id = a.vacancy_id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "school_name", "title", "status"}).
			AddRow(int64(7), "Asha", "asha@example.com", "Govt ITI", "Welder", models.ApplicationPending))

	items, err := repo.ListRoster(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Govt ITI", items[0].School)
	assert.Equal(t, "Welder", items[0].JobTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}
