package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/karmachari/portal/internal/pkg/filestorage"
)

type fakeStorage struct {
	saved    []string
	deleted  []string
	rejected map[string]bool
	counter  int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{rejected: map[string]bool{}}
}

func (f *fakeStorage) SaveFileWithPath(fh *multipart.FileHeader, path string) (string, error) {
	if fh == nil {
		return "", nil
	}
	if f.rejected[fh.Filename] {
		return "", filestorage.ErrUnsupportedFileType
	}
	f.counter++
	stored := fmt.Sprintf("%s/file-%d", path, f.counter)
	f.saved = append(f.saved, stored)
	return stored, nil
}

func (f *fakeStorage) DeleteFile(path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeStorage) GetFullPath(path string) string {
	return "/tmp/" + path
}

func upload(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

type fakeTokens struct {
	subjects []auth.Subject
}

func (f *fakeTokens) GenerateToken(subject auth.Subject) (string, time.Time, error) {
	f.subjects = append(f.subjects, subject)
	return "token-" + subject.Kind, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

type fakeStudentRepo struct {
	byEnrollment map[string]*models.Student
	createErr    error
	updates      []map[string]interface{}
	nextID       int64
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{byEnrollment: map[string]*models.Student{}}
	for _, s := range students {
		repo.byEnrollment[s.Enrollment] = s
	}
	return repo
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	student.ID = f.nextID
	f.byEnrollment[student.Enrollment] = student
	return nil
}

func (f *fakeStudentRepo) List(ctx context.Context) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(f.byEnrollment))
	for _, s := range f.byEnrollment {
		students = append(students, s)
	}
	return students, nil
}

func (f *fakeStudentRepo) ListBySchool(ctx context.Context, schoolName string) ([]*models.Student, error) {
	students := make([]*models.Student, 0)
	for _, s := range f.byEnrollment {
		if s.SchoolName == schoolName {
			students = append(students, s)
		}
	}
	return students, nil
}

func (f *fakeStudentRepo) GetByEnrollment(ctx context.Context, enrollment string) (*models.Student, error) {
	s, ok := f.byEnrollment[enrollment]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, enrollment string, changes map[string]interface{}) (*models.Student, error) {
	s, ok := f.byEnrollment[enrollment]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	f.updates = append(f.updates, changes)
	if v, ok := changes["name"].(string); ok {
		s.Name = v
	}
	if v, ok := changes["photo"].(string); ok {
		s.Photo = v
	}
	if v, ok := changes["password_hash"].(string); ok {
		s.PasswordHash = v
	}
	copied := *s
	return &copied, nil
}

type fakeEmployerRepo struct {
	employer *models.Employer
	changes  map[string]interface{}
}

func (f *fakeEmployerRepo) Create(ctx context.Context, employer *models.Employer) error {
	employer.ID = 1
	f.employer = employer
	return nil
}

func (f *fakeEmployerRepo) List(ctx context.Context) ([]*models.Employer, error) {
	return []*models.Employer{f.employer}, nil
}

func (f *fakeEmployerRepo) GetByID(ctx context.Context, id int64) (*models.Employer, error) {
	if f.employer == nil || f.employer.ID != id {
		return nil, apperrors.ErrEmployerNotFound
	}
	copied := *f.employer
	return &copied, nil
}

func (f *fakeEmployerRepo) GetByEnrollment(ctx context.Context, enrollment string) (*models.Employer, error) {
	if f.employer == nil || f.employer.Enrollment != enrollment {
		return nil, apperrors.ErrEmployerNotFound
	}
	copied := *f.employer
	return &copied, nil
}

func (f *fakeEmployerRepo) Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.Employer, error) {
	if f.employer == nil || f.employer.ID != id {
		return nil, apperrors.ErrEmployerNotFound
	}
	f.changes = changes
	if v, ok := changes["status"].(string); ok {
		f.employer.Status = models.ReviewStatus(v)
	}
	if v, ok := changes["rejection_reason"].(string); ok {
		f.employer.RejectionReason = v
	}
	if v, ok := changes["eoi_letter"].(string); ok {
		f.employer.EOILetter = v
	}
	copied := *f.employer
	return &copied, nil
}

type fakeSchoolRepo struct {
	school  *models.School
	changes map[string]interface{}
}

func (f *fakeSchoolRepo) Create(ctx context.Context, school *models.School) error {
	school.ID = 1
	f.school = school
	return nil
}

func (f *fakeSchoolRepo) List(ctx context.Context) ([]*models.School, error) {
	return []*models.School{f.school}, nil
}

func (f *fakeSchoolRepo) GetByID(ctx context.Context, id int64) (*models.School, error) {
	if f.school == nil || f.school.ID != id {
		return nil, apperrors.ErrSchoolNotFound
	}
	copied := *f.school
	return &copied, nil
}

func (f *fakeSchoolRepo) GetByEmail(ctx context.Context, email string) (*models.School, error) {
	if f.school == nil || f.school.Email != email {
		return nil, apperrors.ErrSchoolNotFound
	}
	copied := *f.school
	return &copied, nil
}

func (f *fakeSchoolRepo) Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.School, error) {
	if f.school == nil || f.school.ID != id {
		return nil, apperrors.ErrSchoolNotFound
	}
	f.changes = changes
	if v, ok := changes["status"].(string); ok {
		f.school.Status = models.ReviewStatus(v)
	}
	if v, ok := changes["rejection_reason"].(string); ok {
		f.school.RejectionReason = v
	}
	if v, ok := changes["eol_letter"].(string); ok {
		f.school.EOLLetter = v
	}
	copied := *f.school
	return &copied, nil
}

type fakeApplicationRepo struct {
	existing     map[[2]int64]*models.JobApplication
	statusCalls  int
	confirmCalls int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{existing: map[[2]int64]*models.JobApplication{}}
}

func (f *fakeApplicationRepo) Apply(ctx context.Context, studentID, vacancyID int64) (*models.JobApplication, bool, error) {
	key := [2]int64{studentID, vacancyID}
	if _, ok := f.existing[key]; ok {
		return nil, false, nil
	}
	a := &models.JobApplication{ID: int64(len(f.existing) + 1), StudentID: studentID, VacancyID: vacancyID, Applied: true, Status: models.ApplicationPending}
	f.existing[key] = a
	return a, true, nil
}

func (f *fakeApplicationRepo) ConfirmInterview(ctx context.Context, studentID, vacancyID int64) (*models.JobApplication, error) {
	f.confirmCalls++
	key := [2]int64{studentID, vacancyID}
	a, ok := f.existing[key]
	if !ok {
		a = &models.JobApplication{ID: int64(len(f.existing) + 1), StudentID: studentID, VacancyID: vacancyID}
		f.existing[key] = a
	}
	a.ConfirmedInterview = true
	a.Status = models.ApplicationPending
	return a, nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	f.statusCalls++
	for _, a := range f.existing {
		if a.ID == id {
			a.Status = status
			return a, nil
		}
	}
	return nil, apperrors.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentApplication, error) {
	items := make([]*models.StudentApplication, 0)
	for key, a := range f.existing {
		if key[0] == studentID {
			items = append(items, &models.StudentApplication{VacancyID: a.VacancyID, Status: a.Status})
		}
	}
	return items, nil
}

func (f *fakeApplicationRepo) ListRoster(ctx context.Context) ([]*models.ApplicationRosterEntry, error) {
	return []*models.ApplicationRosterEntry{}, nil
}

type fakeVacancyLookup map[int64]*models.Vacancy

func (f fakeVacancyLookup) GetByID(ctx context.Context, id int64) (*models.Vacancy, error) {
	v, ok := f[id]
	if !ok {
		return nil, apperrors.ErrVacancyNotFound
	}
	return v, nil
}

type fakeRevoker struct {
	tokenID string
	ttl     time.Duration
}

func (f *fakeRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	f.tokenID = tokenID
	f.ttl = ttl
	return nil
}
