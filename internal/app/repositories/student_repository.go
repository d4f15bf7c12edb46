package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
)

var studentColumns = []string{
	"id", "name", "parent_name", "to_char(dob, 'YYYY-MM-DD')", "age", "phone", "emergency", "email",
	"gender", "school_name", "district", "bio", "address", "course", "interests",
	"id_card", "resume", "consent", "photo", "enrollment", "password_hash", "created_at",
}

var studentUniqueFields = map[string]string{
	"students_email_key":      "email",
	"students_enrollment_key": "enrollment",
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanStudent(row scanner) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.Name, &s.ParentName, &s.DOB, &s.Age, &s.Phone, &s.Emergency, &s.Email,
		&s.Gender, &s.SchoolName, &s.District, &s.Bio, &s.Address, &s.Course, &s.Interests,
		&s.IDCard, &s.Resume, &s.Consent, &s.Photo, &s.Enrollment, &s.PasswordHash, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.Interests == nil {
		s.Interests = []string{}
	}
	return &s, nil
}

func returningStudent() string {
	return "RETURNING " + joinColumns(studentColumns)
}

// Create inserts a student and refreshes it with the stored values
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	interests := student.Interests
	if interests == nil {
		interests = []string{}
	}

	sql, args, err := r.sb.Insert("students").
		Columns("name", "parent_name", "dob", "age", "phone", "emergency", "email", "gender",
			"school_name", "district", "bio", "address", "course", "interests",
			"id_card", "resume", "consent", "photo", "enrollment", "password_hash").
		Values(student.Name, student.ParentName, castDate(student.DOB), student.Age, student.Phone,
			student.Emergency, student.Email, student.Gender, student.SchoolName, student.District,
			student.Bio, student.Address, student.Course, interests,
			student.IDCard, student.Resume, student.Consent, student.Photo, student.Enrollment, student.PasswordHash).
		Suffix(returningStudent()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	created, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return translateError(err, "error creating student", nil, studentUniqueFields)
	}

	*student = *created
	return nil
}

// List returns every student ordered by id
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	sb := r.sb.Select(studentColumns...).From("students").OrderBy("id")
	return queryList(ctx, r.db, sb, "error listing students", scanStudent)
}

// ListBySchool returns the students registered under an exact school name
func (r *StudentRepository) ListBySchool(ctx context.Context, schoolName string) ([]*models.Student, error) {
	sb := r.sb.Select(studentColumns...).From("students").
		Where(squirrel.Eq{"school_name": schoolName}).
		OrderBy("id")
	return queryList(ctx, r.db, sb, "error listing students by school", scanStudent)
}

// GetByEnrollment retrieves a student by enrollment
func (r *StudentRepository) GetByEnrollment(ctx context.Context, enrollment string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").
		Where(squirrel.Eq{"enrollment": enrollment}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error retrieving student", apperrors.ErrStudentNotFound, nil)
	}
	return student, nil
}

// Update applies column changes to the student with enrollment and returns the stored record
func (r *StudentRepository) Update(ctx context.Context, enrollment string, changes map[string]interface{}) (*models.Student, error) {
	if len(changes) == 0 {
		return r.GetByEnrollment(ctx, enrollment)
	}
	if dob, ok := changes["dob"]; ok {
		changes["dob"] = castDate(dob)
	}

	sql, args, err := r.sb.Update("students").
		SetMap(changes).
		Where(squirrel.Eq{"enrollment": enrollment}).
		Suffix(returningStudent()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error updating student", apperrors.ErrStudentNotFound, studentUniqueFields)
	}
	return student, nil
}
