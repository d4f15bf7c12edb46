package services

import (
	"context"
	"errors"
	"testing"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		Name:       "Asha",
		ParentName: "Ravi",
		DOB:        "2004-02-10",
		Email:      "asha@example.com",
		SchoolName: "Govt ITI",
		Enrollment: "ENR-1",
		Password:   "s3cret-pass",
	}
}

func TestCreateStudentStoresUploadsAndHashesPassword(t *testing.T) {
	repo := newFakeStudentRepo()
	storage := newFakeStorage()
	svc := NewStudentService(repo, storage, &fakeTokens{}, zerolog.Nop())

	req := newStudentRequest()
	req.IDCard = upload("id.pdf")
	req.Photo = upload("me.png")

	student, err := svc.CreateStudent(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), student.ID)
	assert.Equal(t, "documents/id_cards/file-1", student.IDCard)
	assert.Equal(t, "documents/photos/file-2", student.Photo)
	assert.Empty(t, student.Resume)
	assert.NotEqual(t, "s3cret-pass", student.PasswordHash)
	assert.True(t, auth.CheckPassword(student.PasswordHash, "s3cret-pass"))
	assert.Empty(t, storage.deleted)
}

func TestCreateStudentRejectedUploadCleansUp(t *testing.T) {
	repo := newFakeStudentRepo()
	storage := newFakeStorage()
	storage.rejected["resume.exe"] = true
	svc := NewStudentService(repo, storage, &fakeTokens{}, zerolog.Nop())

	req := newStudentRequest()
	req.IDCard = upload("id.pdf")
	req.Resume = upload("resume.exe")
	req.Photo = upload("me.png")

	_, err := svc.CreateStudent(context.Background(), req)
	require.Error(t, err)

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "Unsupported file type", custom.Details["resume"])
	assert.Equal(t, []string{"documents/id_cards/file-1"}, storage.deleted)
	assert.Empty(t, repo.byEnrollment)
}

func TestCreateStudentRepositoryFailureRemovesUploads(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.createErr = apperrors.NewFieldError("email", "email already exists")
	storage := newFakeStorage()
	svc := NewStudentService(repo, storage, &fakeTokens{}, zerolog.Nop())

	req := newStudentRequest()
	req.Consent = upload("consent.pdf")

	_, err := svc.CreateStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, storage.saved, storage.deleted)
}

func TestUpdateStudentReleasesReplacedPhoto(t *testing.T) {
	repo := newFakeStudentRepo(&models.Student{ID: 1, Enrollment: "ENR-1", Name: "Asha", Photo: "documents/photos/old.png"})
	storage := newFakeStorage()
	svc := NewStudentService(repo, storage, &fakeTokens{}, zerolog.Nop())

	name := "Asha K"
	updated, err := svc.UpdateStudent(context.Background(), "ENR-1", &dto.UpdateStudentRequest{
		Name:  &name,
		Photo: upload("new.png"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha K", updated.Name)
	assert.Equal(t, "documents/photos/file-1", updated.Photo)
	assert.Equal(t, []string{"documents/photos/old.png"}, storage.deleted)
}

func TestUpdateStudentNotFound(t *testing.T) {
	storage := newFakeStorage()
	svc := NewStudentService(newFakeStudentRepo(), storage, &fakeTokens{}, zerolog.Nop())

	_, err := svc.UpdateStudent(context.Background(), "missing", &dto.UpdateStudentRequest{Photo: upload("new.png")})
	assert.Equal(t, apperrors.ErrStudentNotFound, err)
	assert.Equal(t, storage.saved, storage.deleted)
}

func TestListBySchoolEmptyIsNotFound(t *testing.T) {
	repo := newFakeStudentRepo(&models.Student{ID: 1, Enrollment: "ENR-1", SchoolName: "Govt ITI"})
	svc := NewStudentService(repo, newFakeStorage(), &fakeTokens{}, zerolog.Nop())

	students, err := svc.ListBySchool(context.Background(), "Govt ITI")
	require.NoError(t, err)
	assert.Len(t, students, 1)

	_, err = svc.ListBySchool(context.Background(), "Other School")
	assert.Equal(t, apperrors.ErrNoStudentsForSchool, err)
}

func TestStudentLogin(t *testing.T) {
	hash, err := auth.HashPassword("right-pass")
	require.NoError(t, err)

	repo := newFakeStudentRepo(&models.Student{ID: 4, Enrollment: "ENR-4", PasswordHash: hash})
	tokens := &fakeTokens{}
	svc := NewStudentService(repo, newFakeStorage(), tokens, zerolog.Nop())

	resp, err := svc.Login(context.Background(), &dto.StudentLoginRequest{Enrollment: "ENR-4", Password: "right-pass"})
	require.NoError(t, err)
	assert.Equal(t, "token-student", resp.Token)
	assert.Equal(t, int64(4), resp.User.(*models.Student).ID)
	assert.Equal(t, auth.Subject{Kind: auth.KindStudent, ID: 4, Identifier: "ENR-4"}, tokens.subjects[0])

	_, wrongPassword := svc.Login(context.Background(), &dto.StudentLoginRequest{Enrollment: "ENR-4", Password: "wrong"})
	_, unknown := svc.Login(context.Background(), &dto.StudentLoginRequest{Enrollment: "ENR-9", Password: "right-pass"})
	assert.Equal(t, apperrors.ErrInvalidCredentials, wrongPassword)
	assert.Equal(t, wrongPassword, unknown)
}
