package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal/pkg/errors"
)

// Fixed keys the two collections persist under.
const (
	KeyScholarships = "scholarships"
	KeyApplications = "applications"
)

// Store is the persistence adapter for the two top-level collections.
// Each key maps to a JSON array document inside the data directory.
// Writes are synchronous full overwrites; reads degrade to an empty
// collection when a key is absent or corrupt, never to an error.
type Store struct {
	dir    string
	logger *zap.Logger
}

// Open ensures the data directory exists and returns a store handle.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		dir = "./data"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Load reads both collections. A missing or unparseable key yields an
// empty collection for that key; parse failures are logged and
// swallowed so a corrupt store never blocks startup.
func (s *Store) Load() ([]models.Scholarship, []models.Application) {
	scholarships := []models.Scholarship{}
	applications := []models.Application{}
	s.read(KeyScholarships, &scholarships)
	s.read(KeyApplications, &applications)
	if scholarships == nil {
		scholarships = []models.Scholarship{}
	}
	if applications == nil {
		applications = []models.Application{}
	}
	return scholarships, applications
}

// Save overwrites both keys with the given collections.
func (s *Store) Save(scholarships []models.Scholarship, applications []models.Application) error {
	if err := s.SaveScholarships(scholarships); err != nil {
		return err
	}
	return s.SaveApplications(applications)
}

// SaveScholarships overwrites the scholarships key.
func (s *Store) SaveScholarships(scholarships []models.Scholarship) error {
	return s.write(KeyScholarships, scholarships)
}

// SaveApplications overwrites the applications key.
func (s *Store) SaveApplications(applications []models.Application) error {
	return s.write(KeyApplications, applications)
}

// Path returns the document path for a key (useful in logs and tests).
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) read(key string, dst interface{}) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read collection, starting empty",
				zap.String("key", key), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("corrupt collection, starting empty",
			zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) write(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, fmt.Sprintf("encode %s", key))
	}
	if err := os.WriteFile(s.Path(key), data, 0o644); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, fmt.Sprintf("write %s", key))
	}
	return nil
}
