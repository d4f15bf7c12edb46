package services

import (
	"context"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ApplicationRepository is the storage the application service needs
type ApplicationRepository interface {
	Apply(ctx context.Context, studentID, vacancyID int64) (*models.JobApplication, bool, error)
	ConfirmInterview(ctx context.Context, studentID, vacancyID int64) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error)
	ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentApplication, error)
	ListRoster(ctx context.Context) ([]*models.ApplicationRosterEntry, error)
}

// StudentLookup resolves a student by enrollment
type StudentLookup interface {
	GetByEnrollment(ctx context.Context, enrollment string) (*models.Student, error)
}

// VacancyLookup resolves a vacancy by id
type VacancyLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Vacancy, error)
}

// ApplicationService defines the job application workflow
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplicationPairRequest) (application *models.JobApplication, created bool, err error)
	ConfirmInterview(ctx context.Context, req *dto.ApplicationPairRequest) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error)
	ListForStudent(ctx context.Context, enrollment string) ([]*models.StudentApplication, error)
	ListRoster(ctx context.Context) ([]*models.ApplicationRosterEntry, error)
}

type applicationServiceImpl struct {
	applicationRepo ApplicationRepository
	students        StudentLookup
	vacancies       VacancyLookup
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo ApplicationRepository,
	students StudentLookup,
	vacancies VacancyLookup,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
		students:        students,
		vacancies:       vacancies,
		logger:          logger,
	}
}

// resolvePair maps the enrollment and vacancy id onto stored records
func (s *applicationServiceImpl) resolvePair(ctx context.Context, req *dto.ApplicationPairRequest) (int64, int64, error) {
	student, err := s.students.GetByEnrollment(ctx, req.StudentID)
	if err != nil {
		return 0, 0, err
	}
	vacancy, err := s.vacancies.GetByID(ctx, req.VacancyID)
	if err != nil {
		return 0, 0, err
	}
	return student.ID, vacancy.ID, nil
}

// Apply creates the application unless the pair already exists
func (s *applicationServiceImpl) Apply(ctx context.Context, req *dto.ApplicationPairRequest) (*models.JobApplication, bool, error) {
	studentID, vacancyID, err := s.resolvePair(ctx, req)
	if err != nil {
		return nil, false, err
	}

	application, created, err := s.applicationRepo.Apply(ctx, studentID, vacancyID)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.logger.Info().
			Int64("applicationId", application.ID).
			Int64("studentId", studentID).
			Int64("vacancyId", vacancyID).
			Msg("Application submitted")
	}
	return application, created, nil
}

// ConfirmInterview marks the interview confirmed, creating the application when needed
func (s *applicationServiceImpl) ConfirmInterview(ctx context.Context, req *dto.ApplicationPairRequest) (*models.JobApplication, error) {
	studentID, vacancyID, err := s.resolvePair(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.applicationRepo.ConfirmInterview(ctx, studentID, vacancyID)
}

// UpdateStatus moves an application to any status of the closed set
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	application, err := s.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("applicationId", id).
		Str("status", string(status)).
		Msg("Application status updated")
	return application, nil
}

func (s *applicationServiceImpl) ListForStudent(ctx context.Context, enrollment string) ([]*models.StudentApplication, error) {
	student, err := s.students.GetByEnrollment(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	return s.applicationRepo.ListForStudent(ctx, student.ID)
}

func (s *applicationServiceImpl) ListRoster(ctx context.Context) ([]*models.ApplicationRosterEntry, error) {
	return s.applicationRepo.ListRoster(ctx)
}
