package services

import (
	"context"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/rs/zerolog"
)

// VacancyRepository is the storage the vacancy service needs
type VacancyRepository interface {
	Create(ctx context.Context, vacancy *models.Vacancy) error
	List(ctx context.Context) ([]*models.Vacancy, error)
	GetByID(ctx context.Context, id int64) (*models.Vacancy, error)
	Replace(ctx context.Context, id int64, vacancy *models.Vacancy) (*models.Vacancy, error)
	Delete(ctx context.Context, id int64) error
}

// VacancyService defines the interface for vacancy operations
type VacancyService interface {
	ListVacancies(ctx context.Context) ([]*models.Vacancy, error)
	CreateVacancy(ctx context.Context, req *dto.VacancyRequest) (*models.Vacancy, error)
	GetVacancy(ctx context.Context, id int64) (*models.Vacancy, error)
	ReplaceVacancy(ctx context.Context, id int64, req *dto.VacancyRequest) (*models.Vacancy, error)
	DeleteVacancy(ctx context.Context, id int64) error
}

type vacancyServiceImpl struct {
	vacancyRepo VacancyRepository
	logger      zerolog.Logger
}

// NewVacancyService creates a new VacancyService
func NewVacancyService(vacancyRepo VacancyRepository, logger zerolog.Logger) VacancyService {
	return &vacancyServiceImpl{
		vacancyRepo: vacancyRepo,
		logger:      logger,
	}
}

func vacancyFromRequest(req *dto.VacancyRequest) *models.Vacancy {
	vacancy := &models.Vacancy{
		Title:           req.Title,
		Employer:        req.Employer,
		District:        req.District,
		ValidTill:       req.ValidTill,
		InterviewDate:   req.InterviewDate,
		InterviewTime:   req.InterviewTime,
		AppliedStudents: req.AppliedStudents,
	}
	if req.Positions != nil {
		vacancy.Positions = *req.Positions
	}
	return vacancy
}

func (s *vacancyServiceImpl) ListVacancies(ctx context.Context) ([]*models.Vacancy, error) {
	return s.vacancyRepo.List(ctx)
}

func (s *vacancyServiceImpl) CreateVacancy(ctx context.Context, req *dto.VacancyRequest) (*models.Vacancy, error) {
	vacancy := vacancyFromRequest(req)
	if err := s.vacancyRepo.Create(ctx, vacancy); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("vacancyId", vacancy.ID).
		Str("employer", vacancy.Employer).
		Msg("Vacancy posted")
	return vacancy, nil
}

func (s *vacancyServiceImpl) GetVacancy(ctx context.Context, id int64) (*models.Vacancy, error) {
	return s.vacancyRepo.GetByID(ctx, id)
}

// ReplaceVacancy overwrites every field of the vacancy
func (s *vacancyServiceImpl) ReplaceVacancy(ctx context.Context, id int64, req *dto.VacancyRequest) (*models.Vacancy, error) {
	return s.vacancyRepo.Replace(ctx, id, vacancyFromRequest(req))
}

func (s *vacancyServiceImpl) DeleteVacancy(ctx context.Context, id int64) error {
	if err := s.vacancyRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("vacancyId", id).Msg("Vacancy deleted")
	return nil
}
