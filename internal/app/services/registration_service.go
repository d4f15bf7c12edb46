package services

import (
	"context"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/filestorage"
	"github.com/rs/zerolog"
)

// OfficerRepository is the storage of one officer registration table
type OfficerRepository interface {
	Create(ctx context.Context, officer *models.Officer) error
	List(ctx context.Context) ([]*models.Officer, error)
}

// CompanyRepository is the storage the company registration needs
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	List(ctx context.Context) ([]*models.Company, error)
}

// CommissionRepository is the storage the commission registration needs
type CommissionRepository interface {
	Create(ctx context.Context, commission *models.Commission) error
	List(ctx context.Context) ([]*models.Commission, error)
	Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.Commission, error)
}

// RegistrationService covers the registrations without a review workflow:
// area and district labour officers, companies and commission members.
type RegistrationService interface {
	ListOfficers(ctx context.Context, kind models.OfficerKind) ([]*models.Officer, error)
	CreateOfficer(ctx context.Context, kind models.OfficerKind, req *dto.CreateOfficerRequest) (*models.Officer, error)
	ListCompanies(ctx context.Context) ([]*models.Company, error)
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	ListCommissions(ctx context.Context) ([]*models.Commission, error)
	CreateCommission(ctx context.Context, req *dto.CreateCommissionRequest) (*models.Commission, error)
	UpdateCommission(ctx context.Context, id int64, req *dto.UpdateCommissionRequest) (*models.Commission, error)
}

type registrationServiceImpl struct {
	officers       map[models.OfficerKind]OfficerRepository
	companyRepo    CompanyRepository
	commissionRepo CommissionRepository
	fileStorage    filestorage.FileStorage
	logger         zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	aloRepo OfficerRepository,
	dloRepo OfficerRepository,
	companyRepo CompanyRepository,
	commissionRepo CommissionRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) RegistrationService {
	return &registrationServiceImpl{
		officers: map[models.OfficerKind]OfficerRepository{
			models.OfficerALO: aloRepo,
			models.OfficerDLO: dloRepo,
		},
		companyRepo:    companyRepo,
		commissionRepo: commissionRepo,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

func (s *registrationServiceImpl) officerRepo(kind models.OfficerKind) OfficerRepository {
	repo, ok := s.officers[kind]
	if !ok {
		panic("unknown officer kind: " + string(kind))
	}
	return repo
}

func (s *registrationServiceImpl) ListOfficers(ctx context.Context, kind models.OfficerKind) ([]*models.Officer, error) {
	return s.officerRepo(kind).List(ctx)
}

func (s *registrationServiceImpl) CreateOfficer(ctx context.Context, kind models.OfficerKind, req *dto.CreateOfficerRequest) (*models.Officer, error) {
	officer := &models.Officer{
		Name:     req.Name,
		PhoneNo:  req.PhoneNo,
		Email:    req.Email,
		District: req.District,
	}
	if err := s.officerRepo(kind).Create(ctx, officer); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("kind", string(kind)).
		Int64("officerId", officer.ID).
		Msg("Officer registered")
	return officer, nil
}

func (s *registrationServiceImpl) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *registrationServiceImpl) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:        req.Name,
		Phone:       req.Phone,
		GSTNumber:   req.GSTNumber,
		Email:       req.Email,
		LRN:         req.LRN,
		Category:    req.Category,
		District:    req.District,
		Address:     req.Address,
		Description: req.Description,
	}

	uploads := newUploadSet(s.fileStorage, s.logger)
	uploads.save(&company.EOILetter, "eoi_letter", req.EOILetter, filestorage.DirCompanyEOI)
	uploads.save(&company.RegistrationCertificate, "registration_certificate", req.RegistrationCertificate, filestorage.DirCompanyCertificate)
	if uploads.err != nil {
		uploads.discard()
		return nil, uploads.err
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		uploads.discard()
		return nil, err
	}

	s.logger.Info().
		Int64("companyId", company.ID).
		Str("gstNumber", company.GSTNumber).
		Msg("Company registered")
	return company, nil
}

func (s *registrationServiceImpl) ListCommissions(ctx context.Context) ([]*models.Commission, error) {
	return s.commissionRepo.List(ctx)
}

func (s *registrationServiceImpl) CreateCommission(ctx context.Context, req *dto.CreateCommissionRequest) (*models.Commission, error) {
	commission := &models.Commission{
		Name:    req.Name,
		PhoneNo: req.PhoneNo,
		Email:   req.Email,
	}
	if err := s.commissionRepo.Create(ctx, commission); err != nil {
		return nil, err
	}
	return commission, nil
}

func (s *registrationServiceImpl) UpdateCommission(ctx context.Context, id int64, req *dto.UpdateCommissionRequest) (*models.Commission, error) {
	return s.commissionRepo.Update(ctx, id, req.Changes())
}
