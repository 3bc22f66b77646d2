package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal/internal/dto"
	"github.com/noah-isme/scholarship-portal/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal/pkg/errors"
)

type applicationRepository interface {
	Create(models.Application) (models.Application, error)
	SetStatus(int64, models.ApplicationStatus) error
	All() []models.Application
	Count() int
}

type scholarshipReader interface {
	FindByID(int64) (models.Scholarship, error)
}

// ApplicationService exposes submission and review operations.
type ApplicationService struct {
	repo         applicationRepository
	scholarships scholarshipReader
	validator    *validator.Validate
	notifier     Notifier
	logger       *zap.Logger
	now          func() time.Time
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(repo applicationRepository, scholarships scholarshipReader, validate *validator.Validate, notifier Notifier, logger *zap.Logger) *ApplicationService {
	if validate == nil {
		validate = validator.New()
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{
		repo:         repo,
		scholarships: scholarships,
		validator:    validate,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

// Submit creates an application against an existing scholarship. The
// scholarship name is snapshotted onto the record at this instant; it
// will not track later edits or deletion. A missing scholarship fails
// with ErrNotFound before anything is appended. A passed deadline does
// not block submission.
func (s *ApplicationService) Submit(form dto.ApplicationForm) (models.Application, error) {
	if err := s.validator.Struct(form); err != nil {
		return models.Application{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid application form")
	}

	scholarshipID, ok := parseID(form.ScholarshipID)
	if !ok {
		return models.Application{}, appErrors.Clone(appErrors.ErrValidation, "scholarship id must be a number")
	}

	scholarship, err := s.scholarships.FindByID(scholarshipID)
	if err != nil {
		return models.Application{}, err
	}

	created, err := s.repo.Create(models.Application{
		StudentName:     form.StudentName,
		StudentEmail:    form.StudentEmail,
		ScholarshipID:   scholarship.ID,
		ScholarshipName: scholarship.Name,
		Essay:           form.Essay,
		Status:          models.StatusSubmitted,
		SubmittedDate:   s.now().Format(models.SubmittedDateLayout),
	})
	if err != nil && !appErrors.HasCode(err, appErrors.ErrStorage) {
		return models.Application{}, err
	}
	s.surfaceStorage(err)

	s.logger.Info("application submitted",
		zap.Int64("id", created.ID),
		zap.Int64("scholarship_id", scholarship.ID))
	s.notifier.Success(fmt.Sprintf("Application for %q submitted successfully", scholarship.Name))
	return created, nil
}

// SetStatus overwrites the review status of an application. All
// transitions are admin-initiated and unrestricted.
func (s *ApplicationService) SetStatus(id int64, status string) error {
	newStatus := models.ApplicationStatus(status)
	if !newStatus.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown status %q", status))
	}

	err := s.repo.SetStatus(id, newStatus)
	if err != nil && !appErrors.HasCode(err, appErrors.ErrStorage) {
		return err
	}
	s.surfaceStorage(err)

	s.logger.Info("application status updated",
		zap.Int64("id", id),
		zap.String("status", string(newStatus)))
	s.notifier.Success(fmt.Sprintf("Application status updated to %q", newStatus.Label()))
	return nil
}

// ListForStudentView returns the collection in insertion order.
func (s *ApplicationService) ListForStudentView() []models.Application {
	return s.repo.All()
}

// ListForAdminReview returns the collection in insertion order for the
// review workflow. Same data as the student view; the admin CLI
// additionally offers the status-change operation per record.
func (s *ApplicationService) ListForAdminReview() []models.Application {
	return s.repo.All()
}

// Count reports the collection size.
func (s *ApplicationService) Count() int {
	return s.repo.Count()
}

func (s *ApplicationService) surfaceStorage(err error) {
	if err == nil {
		return
	}
	s.logger.Warn("persistence write failed", zap.Error(err))
	s.notifier.Error("Warning: changes could not be saved to disk")
}
