package services

import (
	"context"
	"testing"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchoolStartsPending(t *testing.T) {
	repo := &fakeSchoolRepo{}
	svc := NewSchoolService(repo, newFakeStorage(), &fakeTokens{}, zerolog.Nop())

	school, err := svc.CreateSchool(context.Background(), &dto.CreateSchoolRequest{
		Principal: "R. Kulkarni",
		Name:      "Govt ITI Pune",
		Phone:     "9800000000",
		Email:     "iti@example.com",
		Password:  "pass-1234",
		District:  "Pune",
		EOLLetter: upload("eol.pdf"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), school.ID)
	assert.Equal(t, models.ReviewPending, school.Status)
	assert.Empty(t, school.RejectionReason)
	assert.Equal(t, "documents/eoi_letters/file-1", school.EOLLetter)
	assert.True(t, auth.CheckPassword(school.PasswordHash, "pass-1234"))
}

func TestResubmitSchoolResetsReview(t *testing.T) {
	repo := &fakeSchoolRepo{school: &models.School{
		ID: 3, Status: models.ReviewRejected, RejectionReason: "letter unsigned",
		EOLLetter: "documents/eoi_letters/old.pdf",
	}}
	storage := newFakeStorage()
	svc := NewSchoolService(repo, storage, &fakeTokens{}, zerolog.Nop())

	principal := "S. Patil"
	school, err := svc.ResubmitSchool(context.Background(), 3, &dto.SchoolFields{
		Principal: &principal,
		EOLLetter: upload("eol.pdf"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.ReviewPending, school.Status)
	assert.Equal(t, "", school.RejectionReason)
	assert.Equal(t, "S. Patil", repo.changes["principal"])
	assert.Equal(t, "documents/eoi_letters/file-1", school.EOLLetter)
	assert.Equal(t, []string{"documents/eoi_letters/old.pdf"}, storage.deleted)
}

func TestResubmitSchoolNotFound(t *testing.T) {
	storage := newFakeStorage()
	svc := NewSchoolService(&fakeSchoolRepo{}, storage, &fakeTokens{}, zerolog.Nop())

	_, err := svc.ResubmitSchool(context.Background(), 9, &dto.SchoolFields{EOLLetter: upload("eol.pdf")})
	assert.Equal(t, apperrors.ErrSchoolNotFound, err)
	assert.Equal(t, []string{"documents/eoi_letters/file-1"}, storage.deleted)
}

func TestUpdateSchoolRecordsReviewOutcome(t *testing.T) {
	repo := &fakeSchoolRepo{school: &models.School{ID: 3, Status: models.ReviewPending}}
	svc := NewSchoolService(repo, newFakeStorage(), &fakeTokens{}, zerolog.Nop())

	status := models.ReviewRejected
	reason := "district mismatch"
	school, err := svc.UpdateSchool(context.Background(), 3, &dto.UpdateSchoolRequest{
		Status:          &status,
		RejectionReason: &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ReviewRejected, school.Status)
	assert.Equal(t, "district mismatch", school.RejectionReason)
	assert.Equal(t, map[string]interface{}{
		"status":           "Rejected",
		"rejection_reason": "district mismatch",
	}, repo.changes)
}

func TestSchoolLogin(t *testing.T) {
	hash, err := auth.HashPassword("right-pass")
	require.NoError(t, err)

	repo := &fakeSchoolRepo{school: &models.School{ID: 3, Email: "iti@example.com", PasswordHash: hash}}
	tokens := &fakeTokens{}
	svc := NewSchoolService(repo, newFakeStorage(), tokens, zerolog.Nop())

	resp, err := svc.Login(context.Background(), &dto.SchoolLoginRequest{Email: "iti@example.com", Password: "right-pass"})
	require.NoError(t, err)
	assert.Equal(t, "token-school", resp.Token)
	assert.Equal(t, auth.Subject{Kind: auth.KindSchool, ID: 3, Identifier: "iti@example.com"}, tokens.subjects[0])

	_, wrongPassword := svc.Login(context.Background(), &dto.SchoolLoginRequest{Email: "iti@example.com", Password: "wrong"})
	_, unknown := svc.Login(context.Background(), &dto.SchoolLoginRequest{Email: "nobody@example.com", Password: "right-pass"})
	assert.Equal(t, apperrors.ErrInvalidCredentials, wrongPassword)
	assert.Equal(t, wrongPassword, unknown)
	assert.Len(t, tokens.subjects, 1)
}
