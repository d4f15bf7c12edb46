package services

import (
	"context"
	"fmt"

	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/karmachari/portal/internal/pkg/filestorage"
	"github.com/rs/zerolog"
)

// StudentRepository is the storage the student service needs
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]*models.Student, error)
	ListBySchool(ctx context.Context, schoolName string) ([]*models.Student, error)
	GetByEnrollment(ctx context.Context, enrollment string) (*models.Student, error)
	Update(ctx context.Context, enrollment string, changes map[string]interface{}) (*models.Student, error)
}

// StudentService defines the interface for student operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudent(ctx context.Context, enrollment string) (*models.Student, error)
	UpdateStudent(ctx context.Context, enrollment string, req *dto.UpdateStudentRequest) (*models.Student, error)
	ListBySchool(ctx context.Context, schoolName string) ([]*models.Student, error)
	Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.LoginResponse, error)
}

type studentServiceImpl struct {
	studentRepo StudentRepository
	fileStorage filestorage.FileStorage
	tokens      TokenIssuer
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo StudentRepository,
	fileStorage filestorage.FileStorage,
	tokens TokenIssuer,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		fileStorage: fileStorage,
		tokens:      tokens,
		logger:      logger,
	}
}

func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.List(ctx)
}

// CreateStudent hashes the password, stores the uploaded documents and inserts the record
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		Name:         req.Name,
		ParentName:   req.ParentName,
		DOB:          req.DOB,
		Age:          req.Age,
		Phone:        req.Phone,
		Emergency:    req.Emergency,
		Email:        req.Email,
		Gender:       req.Gender,
		SchoolName:   req.SchoolName,
		District:     req.District,
		Bio:          req.Bio,
		Address:      req.Address,
		Course:       req.Course,
		Interests:    req.Interests,
		Enrollment:   req.Enrollment,
		PasswordHash: hash,
	}

	uploads := newUploadSet(s.fileStorage, s.logger)
	uploads.save(&student.IDCard, "id_card", req.IDCard, filestorage.DirIDCards)
	uploads.save(&student.Resume, "resume", req.Resume, filestorage.DirResumes)
	uploads.save(&student.Consent, "consent", req.Consent, filestorage.DirConsents)
	uploads.save(&student.Photo, "photo", req.Photo, filestorage.DirPhotos)
	if uploads.err != nil {
		uploads.discard()
		return nil, uploads.err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		uploads.discard()
		return nil, err
	}

	s.logger.Info().
		Int64("studentId", student.ID).
		Str("enrollment", student.Enrollment).
		Msg("Student registered")
	return student, nil
}

func (s *studentServiceImpl) GetStudent(ctx context.Context, enrollment string) (*models.Student, error) {
	return s.studentRepo.GetByEnrollment(ctx, enrollment)
}

// UpdateStudent merges the provided fields into the stored profile. Replaced
// documents are removed once the update is stored.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, enrollment string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	changes := req.Changes()
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		changes["password_hash"] = hash
	}

	uploads := newUploadSet(s.fileStorage, s.logger)
	uploads.saveChange(changes, "id_card", "id_card", req.IDCard, filestorage.DirIDCards)
	uploads.saveChange(changes, "resume", "resume", req.Resume, filestorage.DirResumes)
	uploads.saveChange(changes, "consent", "consent", req.Consent, filestorage.DirConsents)
	uploads.saveChange(changes, "photo", "photo", req.Photo, filestorage.DirPhotos)
	if uploads.err != nil {
		uploads.discard()
		return nil, uploads.err
	}

	var previous *models.Student
	if uploads.stored() {
		var err error
		if previous, err = s.studentRepo.GetByEnrollment(ctx, enrollment); err != nil {
			uploads.discard()
			return nil, err
		}
	}

	updated, err := s.studentRepo.Update(ctx, enrollment, changes)
	if err != nil {
		uploads.discard()
		return nil, err
	}

	if previous != nil {
		uploads.release(previous.IDCard, updated.IDCard)
		uploads.release(previous.Resume, updated.Resume)
		uploads.release(previous.Consent, updated.Consent)
		uploads.release(previous.Photo, updated.Photo)
	}
	return updated, nil
}

// ListBySchool returns the students of a school; an empty result is reported as not found
func (s *studentServiceImpl) ListBySchool(ctx context.Context, schoolName string) ([]*models.Student, error) {
	students, err := s.studentRepo.ListBySchool(ctx, schoolName)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNoStudentsForSchool
	}
	return students, nil
}

func (s *studentServiceImpl) Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.GetByEnrollment(ctx, req.Enrollment)
	var hash string
	if student != nil {
		hash = student.PasswordHash
	}
	if err := verifyLogin(err, hash, req.Password); err != nil {
		return nil, err
	}

	return issueSession(s.tokens, auth.Subject{
		Kind:       auth.KindStudent,
		ID:         student.ID,
		Identifier: student.Enrollment,
	}, student)
}
