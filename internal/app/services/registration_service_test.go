package services

import (
	"context"
	"errors"
	"testing"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/filestorage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOfficerRepo struct {
	officers []*models.Officer
}

func (f *fakeOfficerRepo) Create(_ context.Context, officer *models.Officer) error {
	officer.ID = int64(len(f.officers) + 1)
	f.officers = append(f.officers, officer)
	return nil
}

func (f *fakeOfficerRepo) List(context.Context) ([]*models.Officer, error) {
	return f.officers, nil
}

type fakeCompanyRepo struct {
	companies []*models.Company
	err       error
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *models.Company) error {
	if f.err != nil {
		return f.err
	}
	company.ID = int64(len(f.companies) + 1)
	f.companies = append(f.companies, company)
	return nil
}

func (f *fakeCompanyRepo) List(context.Context) ([]*models.Company, error) {
	return f.companies, nil
}

type fakeCommissionRepo struct {
	changes map[string]interface{}
}

func (f *fakeCommissionRepo) Create(_ context.Context, commission *models.Commission) error {
	commission.ID = 1
	return nil
}

func (f *fakeCommissionRepo) List(context.Context) ([]*models.Commission, error) {
	return nil, nil
}

func (f *fakeCommissionRepo) Update(_ context.Context, id int64, changes map[string]interface{}) (*models.Commission, error) {
	f.changes = changes
	return &models.Commission{ID: id}, nil
}

func newRegistrationFixture() (RegistrationService, *fakeOfficerRepo, *fakeOfficerRepo, *fakeCompanyRepo, *fakeCommissionRepo, *fakeStorage) {
	alo, dlo := &fakeOfficerRepo{}, &fakeOfficerRepo{}
	companies, commissions := &fakeCompanyRepo{}, &fakeCommissionRepo{}
	storage := newFakeStorage()
	svc := NewRegistrationService(alo, dlo, companies, commissions, storage, zerolog.Nop())
	return svc, alo, dlo, companies, commissions, storage
}

func TestRegistrationService_OfficerKindsAreSeparate(t *testing.T) {
	svc, alo, dlo, _, _, _ := newRegistrationFixture()
	ctx := context.Background()

	_, err := svc.CreateOfficer(ctx, models.OfficerDLO, &dto.CreateOfficerRequest{Name: "D", PhoneNo: "1", Email: "d@x.in", District: "Pune"})
	require.NoError(t, err)

	assert.Empty(t, alo.officers)
	require.Len(t, dlo.officers, 1)

	listed, err := svc.ListOfficers(ctx, models.OfficerALO)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestRegistrationService_CreateCompany(t *testing.T) {
	t.Run("stores both documents", func(t *testing.T) {
		svc, _, _, companies, _, storage := newRegistrationFixture()

		company, err := svc.CreateCompany(context.Background(), &dto.CreateCompanyRequest{
			Name:                    "Acme",
			GSTNumber:               "27AAA",
			EOILetter:               upload("eoi.pdf"),
			RegistrationCertificate: upload("cert.pdf"),
		})
		require.NoError(t, err)

		assert.Len(t, companies.companies, 1)
		assert.Equal(t, filestorage.DirCompanyEOI+"/file-1", company.EOILetter)
		assert.Equal(t, filestorage.DirCompanyCertificate+"/file-2", company.RegistrationCertificate)
		assert.Empty(t, storage.deleted)
	})

	t.Run("rejected upload names the field and removes saved files", func(t *testing.T) {
		svc, _, _, companies, _, storage := newRegistrationFixture()
		storage.rejected["cert.exe"] = true

		_, err := svc.CreateCompany(context.Background(), &dto.CreateCompanyRequest{
			Name:                    "Acme",
			EOILetter:               upload("eoi.pdf"),
			RegistrationCertificate: upload("cert.exe"),
		})
		require.Error(t, err)

		var custom *apperrors.CustomError
		require.True(t, errors.As(err, &custom))
		assert.Contains(t, custom.Details, "registration_certificate")
		assert.Empty(t, companies.companies)
		assert.Equal(t, storage.saved, storage.deleted)
	})

	t.Run("insert failure removes saved files", func(t *testing.T) {
		svc, _, _, companies, _, storage := newRegistrationFixture()
		companies.err = apperrors.NewFieldError("gst_number", "company with this gst number already exists.")

		_, err := svc.CreateCompany(context.Background(), &dto.CreateCompanyRequest{
			Name:      "Acme",
			EOILetter: upload("eoi.pdf"),
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, []string{filestorage.DirCompanyEOI + "/file-1"}, storage.deleted)
	})
}

func TestRegistrationService_UpdateCommissionOnlyProvidedFields(t *testing.T) {
	svc, _, _, _, commissions, _ := newRegistrationFixture()
	phone := "9800000000"

	_, err := svc.UpdateCommission(context.Background(), 3, &dto.UpdateCommissionRequest{PhoneNo: &phone})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"phone_no": phone}, commissions.changes)
}
