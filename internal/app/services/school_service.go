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

// SchoolRepository is the storage the school service needs
type SchoolRepository interface {
	Create(ctx context.Context, school *models.School) error
	List(ctx context.Context) ([]*models.School, error)
	GetByID(ctx context.Context, id int64) (*models.School, error)
	GetByEmail(ctx context.Context, email string) (*models.School, error)
	Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.School, error)
}

// SchoolService defines the interface for school registration and review
type SchoolService interface {
	ListSchools(ctx context.Context) ([]*models.School, error)
	CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error)
	GetSchool(ctx context.Context, id int64) (*models.School, error)
	GetSchoolByEmail(ctx context.Context, email string) (*models.School, error)
	UpdateSchool(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error)
	ResubmitSchool(ctx context.Context, id int64, fields *dto.SchoolFields) (*models.School, error)
	Login(ctx context.Context, req *dto.SchoolLoginRequest) (*dto.LoginResponse, error)
}

type schoolServiceImpl struct {
	schoolRepo  SchoolRepository
	fileStorage filestorage.FileStorage
	tokens      TokenIssuer
	logger      zerolog.Logger
}

// NewSchoolService creates a new SchoolService
func NewSchoolService(
	schoolRepo SchoolRepository,
	fileStorage filestorage.FileStorage,
	tokens TokenIssuer,
	logger zerolog.Logger,
) SchoolService {
	return &schoolServiceImpl{
		schoolRepo:  schoolRepo,
		fileStorage: fileStorage,
		tokens:      tokens,
		logger:      logger,
	}
}

func (s *schoolServiceImpl) ListSchools(ctx context.Context) ([]*models.School, error) {
	return s.schoolRepo.List(ctx)
}

// CreateSchool registers a school in Pending review
func (s *schoolServiceImpl) CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	school := &models.School{
		Principal:    req.Principal,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		District:     req.District,
		Status:       models.ReviewPending,
		PasswordHash: hash,
	}

	uploads := newUploadSet(s.fileStorage, s.logger)
	uploads.save(&school.EOLLetter, "eol_letter", req.EOLLetter, filestorage.DirSchoolEOL)
	if uploads.err != nil {
		return nil, uploads.err
	}

	if err := s.schoolRepo.Create(ctx, school); err != nil {
		uploads.discard()
		return nil, err
	}

	s.logger.Info().
		Int64("schoolId", school.ID).
		Str("email", school.Email).
		Msg("School registered")
	return school, nil
}

func (s *schoolServiceImpl) GetSchool(ctx context.Context, id int64) (*models.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

func (s *schoolServiceImpl) GetSchoolByEmail(ctx context.Context, email string) (*models.School, error) {
	return s.schoolRepo.GetByEmail(ctx, email)
}

// UpdateSchool applies an administrative edit, optionally recording the review outcome
func (s *schoolServiceImpl) UpdateSchool(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error) {
	changes, err := s.fieldChanges(&req.SchoolFields)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		changes["status"] = string(*req.Status)
	}
	if req.RejectionReason != nil {
		changes["rejection_reason"] = *req.RejectionReason
	}

	return s.update(ctx, id, &req.SchoolFields, changes)
}

// ResubmitSchool applies the edit and puts the school back into Pending review
func (s *schoolServiceImpl) ResubmitSchool(ctx context.Context, id int64, fields *dto.SchoolFields) (*models.School, error) {
	changes, err := s.fieldChanges(fields)
	if err != nil {
		return nil, err
	}
	changes["status"] = string(models.ReviewPending)
	changes["rejection_reason"] = ""

	return s.update(ctx, id, fields, changes)
}

func (s *schoolServiceImpl) fieldChanges(fields *dto.SchoolFields) (map[string]interface{}, error) {
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

func (s *schoolServiceImpl) update(ctx context.Context, id int64, fields *dto.SchoolFields, changes map[string]interface{}) (*models.School, error) {
	uploads := newUploadSet(s.fileStorage, s.logger)
	uploads.saveChange(changes, "eol_letter", "eol_letter", fields.EOLLetter, filestorage.DirSchoolEOL)
	if uploads.err != nil {
		return nil, uploads.err
	}

	var previous *models.School
	if uploads.stored() {
		var err error
		if previous, err = s.schoolRepo.GetByID(ctx, id); err != nil {
			uploads.discard()
			return nil, err
		}
	}

	updated, err := s.schoolRepo.Update(ctx, id, changes)
	if err != nil {
		uploads.discard()
		return nil, err
	}

	if previous != nil {
		uploads.release(previous.EOLLetter, updated.EOLLetter)
	}
	return updated, nil
}

func (s *schoolServiceImpl) Login(ctx context.Context, req *dto.SchoolLoginRequest) (*dto.LoginResponse, error) {
	school, err := s.schoolRepo.GetByEmail(ctx, req.Email)
	var hash string
	if school != nil {
		hash = school.PasswordHash
	}
	if err := verifyLogin(err, hash, req.Password); err != nil {
		return nil, err
	}

	return issueSession(s.tokens, auth.Subject{
		Kind:       auth.KindSchool,
		ID:         school.ID,
		Identifier: school.Email,
	}, school)
}
