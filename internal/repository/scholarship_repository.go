package repository

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noah-isme/scholarship-portal/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal/pkg/errors"
)

type scholarshipPersister interface {
	SaveScholarships([]models.Scholarship) error
}

// ScholarshipRepository owns the scholarship collection. Every
// mutation writes through to the persistence adapter; a failed write
// leaves the in-memory mutation in place and is reported to the
// caller for non-fatal surfacing.
type ScholarshipRepository struct {
	store    scholarshipPersister
	items    []models.Scholarship
	nextID   int64
	collator *collate.Collator
	logger   *zap.Logger
}

// NewScholarshipRepository wraps an already-loaded collection. The id
// counter resumes above the highest persisted id so ids stay unique
// across restarts.
func NewScholarshipRepository(store scholarshipPersister, items []models.Scholarship, logger *zap.Logger) *ScholarshipRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if items == nil {
		items = []models.Scholarship{}
	}
	nextID := int64(1)
	for _, s := range items {
		if s.ID >= nextID {
			nextID = s.ID + 1
		}
	}
	return &ScholarshipRepository{
		store:    store,
		items:    items,
		nextID:   nextID,
		collator: collate.New(language.English, collate.IgnoreCase),
		logger:   logger,
	}
}

// Create assigns a fresh id, appends the scholarship and persists.
func (r *ScholarshipRepository) Create(s models.Scholarship) (models.Scholarship, error) {
	s.ID = r.nextID
	r.nextID++
	r.items = append(r.items, s)
	return s, r.persist()
}

// Update replaces the fields of an existing scholarship in place,
// preserving its id. Returns ErrNotFound for an unknown id.
func (r *ScholarshipRepository) Update(id int64, s models.Scholarship) error {
	for i := range r.items {
		if r.items[i].ID == id {
			s.ID = id
			r.items[i] = s
			return r.persist()
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "scholarship not found")
}

// Delete removes the scholarship with the given id. Deleting an
// unknown id is a no-op: the collection is unchanged and no error is
// raised. Applications referencing the deleted scholarship are left
// in place; their denormalized name snapshot keeps them displayable.
func (r *ScholarshipRepository) Delete(id int64) (bool, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, r.persist()
		}
	}
	return false, nil
}

// FindByID returns the scholarship with the given id.
func (r *ScholarshipRepository) FindByID(id int64) (models.Scholarship, error) {
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Scholarship{}, appErrors.Clone(appErrors.ErrNotFound, "scholarship not found")
}

// All returns a copy of the collection in insertion order.
func (r *ScholarshipRepository) All() []models.Scholarship {
	out := make([]models.Scholarship, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the collection size.
func (r *ScholarshipRepository) Count() int {
	return len(r.items)
}

// Query returns a fresh ordered sequence of scholarships whose name
// contains the filter text case-insensitively and whose amount and
// minimum GPA meet the thresholds. The underlying collection is never
// mutated. Sorting is stable; unknown sort keys fall back to name
// ascending under English collation.
func (r *ScholarshipRepository) Query(f models.ScholarshipFilter) []models.Scholarship {
	query := strings.ToLower(f.Query)
	matched := make([]models.Scholarship, 0, len(r.items))
	for _, s := range r.items {
		if !strings.Contains(strings.ToLower(s.Name), query) {
			continue
		}
		if s.Amount < f.MinAmount || s.GPA < f.MinGPA {
			continue
		}
		matched = append(matched, s)
	}

	switch f.SortBy {
	case models.SortByDeadline:
		sort.SliceStable(matched, func(i, j int) bool {
			return deadlineBefore(matched[i].Deadline, matched[j].Deadline)
		})
	case models.SortByAmount:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Amount > matched[j].Amount
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return r.collator.CompareString(matched[i].Name, matched[j].Name) < 0
		})
	}
	return matched
}

// deadlineBefore orders ISO dates chronologically; unparseable dates
// sort after valid ones.
func deadlineBefore(a, b string) bool {
	ta, errA := time.Parse(models.DeadlineLayout, a)
	tb, errB := time.Parse(models.DeadlineLayout, b)
	if errA != nil {
		return false
	}
	if errB != nil {
		return true
	}
	return ta.Before(tb)
}

func (r *ScholarshipRepository) persist() error {
	if err := r.store.SaveScholarships(r.items); err != nil {
		r.logger.Warn("failed to persist scholarships", zap.Error(err))
		return err
	}
	return nil
}
