package services

import (
	"context"
	"fmt"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// OfficialRepository is the storage the official service needs
type OfficialRepository interface {
	Create(ctx context.Context, official *models.Official) error
	List(ctx context.Context) ([]*models.Official, error)
	GetByEmail(ctx context.Context, email string) (*models.Official, error)
}

// OfficialService defines the interface for official accounts
type OfficialService interface {
	ListOfficials(ctx context.Context) ([]*models.Official, error)
	CreateOfficial(ctx context.Context, req *dto.CreateOfficialRequest) (*models.Official, error)
	Login(ctx context.Context, req *dto.OfficialLoginRequest) (*dto.LoginResponse, error)
}

type officialServiceImpl struct {
	officialRepo OfficialRepository
	tokens       TokenIssuer
	logger       zerolog.Logger
}

// NewOfficialService creates a new OfficialService
func NewOfficialService(officialRepo OfficialRepository, tokens TokenIssuer, logger zerolog.Logger) OfficialService {
	return &officialServiceImpl{
		officialRepo: officialRepo,
		tokens:       tokens,
		logger:       logger,
	}
}

func (s *officialServiceImpl) ListOfficials(ctx context.Context) ([]*models.Official, error) {
	return s.officialRepo.List(ctx)
}

func (s *officialServiceImpl) CreateOfficial(ctx context.Context, req *dto.CreateOfficialRequest) (*models.Official, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	official := &models.Official{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		PasswordHash: hash,
	}
	if err := s.officialRepo.Create(ctx, official); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("officialId", official.ID).
		Str("role", official.Role).
		Msg("Official registered")
	return official, nil
}

// Login requires email, password and role to all match
func (s *officialServiceImpl) Login(ctx context.Context, req *dto.OfficialLoginRequest) (*dto.LoginResponse, error) {
	official, err := s.officialRepo.GetByEmail(ctx, req.Email)
	var hash string
	if official != nil {
		hash = official.PasswordHash
	}
	if err := verifyLogin(err, hash, req.Password); err != nil {
		return nil, err
	}
	if official.Role != req.Role {
		return nil, apperrors.ErrInvalidCredentials
	}

	return issueSession(s.tokens, auth.Subject{
		Kind:       auth.KindOfficial,
		ID:         official.ID,
		Identifier: official.Email,
		Role:       official.Role,
	}, official)
}
