package repository

import (
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal/pkg/errors"
)

type applicationPersister interface {
	SaveApplications([]models.Application) error
}

// ApplicationRepository owns the application collection. Applications
// are created once and never deleted; only their status mutates.
type ApplicationRepository struct {
	store  applicationPersister
	items  []models.Application
	nextID int64
	logger *zap.Logger
}

// NewApplicationRepository wraps an already-loaded collection.
func NewApplicationRepository(store applicationPersister, items []models.Application, logger *zap.Logger) *ApplicationRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if items == nil {
		items = []models.Application{}
	}
	nextID := int64(1)
	for _, a := range items {
		if a.ID >= nextID {
			nextID = a.ID + 1
		}
	}
	return &ApplicationRepository{store: store, items: items, nextID: nextID, logger: logger}
}

// Create assigns a fresh id, appends the application and persists.
func (r *ApplicationRepository) Create(a models.Application) (models.Application, error) {
	a.ID = r.nextID
	r.nextID++
	r.items = append(r.items, a)
	return a, r.persist()
}

// SetStatus overwrites the status of an existing application. Any
// valid status is reachable from any other; there is no transition
// table. Returns ErrNotFound for an unknown id.
func (r *ApplicationRepository) SetStatus(id int64, status models.ApplicationStatus) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			return r.persist()
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "application not found")
}

// FindByID returns the application with the given id.
func (r *ApplicationRepository) FindByID(id int64) (models.Application, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Application{}, appErrors.Clone(appErrors.ErrNotFound, "application not found")
}

// All returns a copy of the collection in insertion order.
func (r *ApplicationRepository) All() []models.Application {
	out := make([]models.Application, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the collection size.
func (r *ApplicationRepository) Count() int {
	return len(r.items)
}

func (r *ApplicationRepository) persist() error {
	if err := r.store.SaveApplications(r.items); err != nil {
		r.logger.Warn("failed to persist applications", zap.Error(err))
		return err
	}
	return nil
}
