package services

import (
	"context"
	"fmt"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/karmachari/portal/internal/pkg/filestorage"
	"github.com/rs/zerolog"
)

// EmployerRepository is the storage the employer service needs
type EmployerRepository interface {
	Create(ctx context.Context, employer *models.Employer) error
	List(ctx context.Context) ([]*models.Employer, error)
	GetByID(ctx context.Context, id int64) (*models.Employer, error)
	GetByEnrollment(ctx context.Context, enrollment string) (*models.Employer, error)
	Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.Employer, error)
}

// EmployerService defines the interface for employer registration and review
type EmployerService interface {
	ListEmployers(ctx context.Context) ([]*models.Employer, error)
	CreateEmployer(ctx context.Context, req *dto.CreateEmployerRequest) (*models.Employer, error)
	GetEmployer(ctx context.Context, id int64) (*models.Employer, error)
	GetEmployerByEnrollment(ctx context.Context, enrollment string) (*models.Employer, error)
	UpdateEmployer(ctx context.Context, id int64, req *dto.UpdateEmployerRequest) (*models.Employer, error)
	ResubmitEmployer(ctx context.Context, id int64, fields *dto.EmployerFields) (*models.Employer, error)
	Login(ctx context.Context, req *dto.EmployerLoginRequest) (*dto.LoginResponse, error)
}

type employerServiceImpl struct {
	employerRepo EmployerRepository
	fileStorage  filestorage.FileStorage
	tokens       TokenIssuer
	logger       zerolog.Logger
}

// NewEmployerService creates a new EmployerService
func NewEmployerService(
	employerRepo EmployerRepository,
	fileStorage filestorage.FileStorage,
	tokens TokenIssuer,
	logger zerolog.Logger,
) EmployerService {
	return &employerServiceImpl{
		employerRepo: employerRepo,
		fileStorage:  fileStorage,
		tokens:       tokens,
		logger:       logger,
	}
}

func (s *employerServiceImpl) ListEmployers(ctx context.Context) ([]*models.Employer, error) {
	return s.employerRepo.List(ctx)
}

// CreateEmployer registers an employer in Pending review
func (s *employerServiceImpl) CreateEmployer(ctx context.Context, req *dto.CreateEmployerRequest) (*models.Employer, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	employer := &models.Employer{
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		GSTNumber:    req.GSTNumber,
		Email:        req.Email,
		IRN:          req.IRN,
		Category:     req.Category,
		Address:      req.Address,
		District:     req.District,
		Description:  req.Description,
		Enrollment:   req.Enrollment,
		Status:       models.ReviewPending,
		PasswordHash: hash,
	}

	uploads := newUploadSet(s.fileStorage, s.logger)
	uploads.save(&employer.Documents, "documents", req.Documents, filestorage.DirEmployerDocuments)
	uploads.save(&employer.EOILetter, "eoiLetter", req.EOILetter, filestorage.DirEmployerEOI)
	uploads.save(&employer.Certificate, "certificate", req.Certificate, filestorage.DirEmployerCertificate)
	if uploads.err != nil {
		uploads.discard()
		return nil, uploads.err
	}

	if err := s.employerRepo.Create(ctx, employer); err != nil {
		uploads.discard()
		return nil, err
	}

	s.logger.Info().
		Int64("employerId", employer.ID).
		Str("enrollment", employer.Enrollment).
		Msg("Employer registered")
	return employer, nil
}

func (s *employerServiceImpl) GetEmployer(ctx context.Context, id int64) (*models.Employer, error) {
	return s.employerRepo.GetByID(ctx, id)
}

func (s *employerServiceImpl) GetEmployerByEnrollment(ctx context.Context, enrollment string) (*models.Employer, error) {
	return s.employerRepo.GetByEnrollment(ctx, enrollment)
}

// UpdateEmployer applies an administrative edit, optionally recording the review outcome
func (s *employerServiceImpl) UpdateEmployer(ctx context.Context, id int64, req *dto.UpdateEmployerRequest) (*models.Employer, error) {
	changes, err := s.fieldChanges(&req.EmployerFields)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		changes["status"] = string(*req.Status)
	}
	if req.RejectionReason != nil {
		changes["rejection_reason"] = *req.RejectionReason
	}

	employer, err := s.update(ctx, id, &req.EmployerFields, changes)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		s.logger.Info().
			Int64("employerId", id).
			Str("status", string(employer.Status)).
			Msg("Employer review status changed")
	}
	return employer, nil
}

// ResubmitEmployer applies the edit and puts the employer back into Pending review
func (s *employerServiceImpl) ResubmitEmployer(ctx context.Context, id int64, fields *dto.EmployerFields) (*models.Employer, error) {
	changes, err := s.fieldChanges(fields)
	if err != nil {
		return nil, err
	}
	changes["status"] = string(models.ReviewPending)
	changes["rejection_reason"] = ""

	return s.update(ctx, id, fields, changes)
}

func (s *employerServiceImpl) fieldChanges(fields *dto.EmployerFields) (map[string]interface{}, error) {
	changes := fields.Changes()
	if fields.Password != nil {
		hash, err := auth.HashPassword(*fields.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		changes["password_hash"] = hash
	}
	return changes, nil
}

func (s *employerServiceImpl) update(ctx context.Context, id int64, fields *dto.EmployerFields, changes map[string]interface{}) (*models.Employer, error) {
	uploads := newUploadSet(s.fileStorage, s.logger)
	uploads.saveChange(changes, "documents", "documents", fields.Documents, filestorage.DirEmployerDocuments)
	uploads.saveChange(changes, "eoi_letter", "eoiLetter", fields.EOILetter, filestorage.DirEmployerEOI)
	uploads.saveChange(changes, "certificate", "certificate", fields.Certificate, filestorage.DirEmployerCertificate)
	if uploads.err != nil {
		uploads.discard()
		return nil, uploads.err
	}

	var previous *models.Employer
	if uploads.stored() {
		var err error
		if previous, err = s.employerRepo.GetByID(ctx, id); err != nil {
			uploads.discard()
			return nil, err
		}
	}

	updated, err := s.employerRepo.Update(ctx, id, changes)
	if err != nil {
		uploads.discard()
		return nil, err
	}

	if previous != nil {
		uploads.release(previous.Documents, updated.Documents)
		uploads.release(previous.EOILetter, updated.EOILetter)
		uploads.release(previous.Certificate, updated.Certificate)
	}
	return updated, nil
}

func (s *employerServiceImpl) Login(ctx context.Context, req *dto.EmployerLoginRequest) (*dto.LoginResponse, error) {
	employer, err := s.employerRepo.GetByEnrollment(ctx, req.Enrollment)
	var hash string
	if employer != nil {
		hash = employer.PasswordHash
	}
	if err := verifyLogin(err, hash, req.Password); err != nil {
		return nil, err
	}

	return issueSession(s.tokens, auth.Subject{
		Kind:       auth.KindEmployer,
		ID:         employer.ID,
		Identifier: employer.Enrollment,
	}, employer)
}
