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

type scholarshipRepository interface {
	Create(models.Scholarship) (models.Scholarship, error)
	Update(int64, models.Scholarship) error
	Delete(int64) (bool, error)
	FindByID(int64) (models.Scholarship, error)
	All() []models.Scholarship
	Count() int
	Query(models.ScholarshipFilter) []models.Scholarship
}

// ScholarshipService exposes the scholarship management operations to
// the presentation layer. It parses raw form text, validates, mutates
// the repository and emits notifications.
type ScholarshipService struct {
	repo      scholarshipRepository
	validator *validator.Validate
	notifier  Notifier
	logger    *zap.Logger
	now       func() time.Time
}

// NewScholarshipService constructs a ScholarshipService.
func NewScholarshipService(repo scholarshipRepository, validate *validator.Validate, notifier Notifier, logger *zap.Logger) *ScholarshipService {
	if validate == nil {
		validate = validator.New()
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScholarshipService{
		repo:      repo,
		validator: validate,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Create validates and parses the form and appends a new scholarship.
func (s *ScholarshipService) Create(form dto.ScholarshipForm) (models.Scholarship, error) {
	if err := s.validator.Struct(form); err != nil {
		return models.Scholarship{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid scholarship form")
	}

	created, err := s.repo.Create(s.fromForm(form))
	if err != nil && !appErrors.HasCode(err, appErrors.ErrStorage) {
		return models.Scholarship{}, err
	}
	s.surfaceStorage(err)

	s.logger.Info("scholarship created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	s.notifier.Success(fmt.Sprintf("Scholarship %q added successfully", created.Name))
	return created, nil
}

// Update replaces an existing scholarship's fields, preserving its id.
func (s *ScholarshipService) Update(id int64, form dto.ScholarshipForm) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid scholarship form")
	}

	err := s.repo.Update(id, s.fromForm(form))
	if err != nil && !appErrors.HasCode(err, appErrors.ErrStorage) {
		return err
	}
	s.surfaceStorage(err)

	s.logger.Info("scholarship updated", zap.Int64("id", id))
	s.notifier.Success("Scholarship updated")
	return nil
}

// Delete removes a scholarship once the acting user has confirmed.
// Without confirmation the operation is a no-op. Deleting an unknown
// id is also a no-op. Outstanding applications keep their denormalized
// name snapshot and stay listable.
func (s *ScholarshipService) Delete(id int64, confirmed bool) (bool, error) {
	if !confirmed {
		s.notifier.Info("Deletion cancelled")
		return false, nil
	}
	removed, err := s.repo.Delete(id)
	s.surfaceStorage(err)
	if removed {
		s.logger.Info("scholarship deleted", zap.Int64("id", id))
		s.notifier.Info("Scholarship deleted")
	}
	return removed, nil
}

// Get returns the detail view for a single scholarship.
func (s *ScholarshipService) Get(id int64) (dto.ScholarshipView, error) {
	found, err := s.repo.FindByID(id)
	if err != nil {
		return dto.ScholarshipView{}, err
	}
	return s.view(found), nil
}

// List computes the filtered, sorted student view. Filter numbers are
// parsed permissively: malformed thresholds fall back to zero.
func (s *ScholarshipService) List(form dto.ScholarshipFilterForm) []dto.ScholarshipView {
	filter := models.ScholarshipFilter{
		Query:     form.Query,
		MinAmount: parseAmount(form.MinAmount),
		MinGPA:    parseGPA(form.MinGPA),
		SortBy:    models.SortKey(form.SortBy),
	}
	matched := s.repo.Query(filter)
	views := make([]dto.ScholarshipView, 0, len(matched))
	for _, sch := range matched {
		views = append(views, s.view(sch))
	}
	return views
}

// ListAll returns the unfiltered admin management view.
func (s *ScholarshipService) ListAll() []dto.ScholarshipView {
	items := s.repo.All()
	views := make([]dto.ScholarshipView, 0, len(items))
	for _, sch := range items {
		views = append(views, s.view(sch))
	}
	return views
}

// Count reports the collection size.
func (s *ScholarshipService) Count() int {
	return s.repo.Count()
}

// SeedSampleData creates the default listings on a fresh store.
func (s *ScholarshipService) SeedSampleData() error {
	samples := []models.Scholarship{
		{Name: "Merit Scholarship", Description: "For high achievers with outstanding academic records", Amount: 5000, Deadline: "2025-11-30", GPA: 3.5, Awards: 10},
		{Name: "Need-Based Aid", Description: "For students in financial need", Amount: 3000, Deadline: "2025-12-15", GPA: 2.0, Awards: 20},
		{Name: "STEM Excellence", Description: "For STEM majors with strong performance", Amount: 7500, Deadline: "2025-12-01", GPA: 3.7, Awards: 5},
	}
	for _, sample := range samples {
		if _, err := s.repo.Create(sample); err != nil {
			return err
		}
	}
	s.logger.Info("seeded sample scholarships", zap.Int("count", len(samples)))
	return nil
}

func (s *ScholarshipService) fromForm(form dto.ScholarshipForm) models.Scholarship {
	return models.Scholarship{
		Name:        form.Name,
		Description: form.Description,
		Amount:      parseAmount(form.Amount),
		Deadline:    form.Deadline,
		GPA:         parseGPA(form.GPA),
		Awards:      parseAwards(form.Awards),
	}
}

func (s *ScholarshipService) view(sch models.Scholarship) dto.ScholarshipView {
	days, ok := DaysRemaining(sch.Deadline, s.now())
	return dto.ScholarshipView{
		Scholarship: sch,
		DaysLeft:    days,
		Closed:      ok && days <= 0,
	}
}

// surfaceStorage reports a failed persistence write as a non-fatal
// notification. The in-memory mutation stands; losing a write
// silently would be the worse failure mode.
func (s *ScholarshipService) surfaceStorage(err error) {
	if err == nil {
		return
	}
	s.logger.Warn("persistence write failed", zap.Error(err))
	s.notifier.Error("Warning: changes could not be saved to disk")
}
