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

var studentRowColumns = []string{
	"id", "name", "parent_name", "dob", "age", "phone", "emergency", "email",
	"gender", "school_name", "district", "bio", "address", "course", "interests",
	"id_card", "resume", "consent", "photo", "enrollment", "password_hash", "created_at",
}

func studentRows() *pgxmock.Rows {
	return pgxmock.NewRows(studentRowColumns).AddRow(
		int64(1), "Asha", "Ravi", "2004-02-10", 20, "9000000000", "9000000001", "asha@example.com",
		"Female", "Govt ITI", "Pune", "", "", "Fitter", []string{"welding"},
		"documents/id_cards/a.pdf", "", "", "", "ENR-1", "hash", fixedTime,
	)
}

func TestStudentCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(`INSERT INTO students .* VALUES \(\$1,\$2,\$3::date`).
		WillReturnRows(studentRows())

	student := &models.Student{Name: "Asha", DOB: "2004-02-10", Enrollment: "ENR-1", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), student))

	assert.Equal(t, int64(1), student.ID)
	assert.Equal(t, "2004-02-10", student.DOB)
	assert.Equal(t, []string{"welding"}, student.Interests)
	assert.Equal(t, fixedTime, student.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentCreateDuplicateEnrollment(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery("INSERT INTO students").
		WillReturnError(uniqueViolation("students_enrollment_key"))

	err := repo.Create(context.Background(), &models.Student{Enrollment: "ENR-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "enrollment already exists", err.(*apperrors.CustomError).Details["enrollment"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentGetByEnrollmentNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery("SELECT .* FROM students WHERE enrollment = \\$1").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEnrollment(context.Background(), "missing")
	assert.Equal(t, apperrors.ErrStudentNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentListBySchoolEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery("FROM students WHERE school_name = \\$1 ORDER BY id").
		WithArgs("Nowhere High").
		WillReturnRows(pgxmock.NewRows(studentRowColumns))

	students, err := repo.ListBySchool(context.Background(), "Nowhere High")
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentUpdate(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(`UPDATE students SET .*dob = \$\d::date.* WHERE enrollment = \$\d RETURNING`).
		WillReturnRows(studentRows())

	student, err := repo.Update(context.Background(), "ENR-1", map[string]interface{}{
		"dob":  "2004-02-10",
		"name": "Asha",
	})
	require.NoError(t, err)
	assert.Equal(t, "ENR-1", student.Enrollment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentUpdateWithoutChangesReadsRecord(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery("SELECT .* FROM students WHERE enrollment = \\$1").
		WithArgs("ENR-1").
		WillReturnRows(studentRows())

	student, err := repo.Update(context.Background(), "ENR-1", map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Asha", student.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
