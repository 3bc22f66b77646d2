package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	scholarships := []models.Scholarship{
		{ID: 1, Name: "Merit Scholarship", Description: "For high achievers", Amount: 5000, Deadline: "2025-11-30", GPA: 3.5, Awards: 10},
		{ID: 2, Name: "Need-Based Aid", Amount: 3000, Deadline: "2025-12-15", GPA: 2.0, Awards: 20},
	}
	applications := []models.Application{
		{ID: 7, StudentName: "Alice", StudentEmail: "a@x.com", ScholarshipID: 1, ScholarshipName: "Merit Scholarship", Essay: "...", Status: models.StatusSubmitted, SubmittedDate: "Nov 1, 2025"},
	}

	require.NoError(t, s.Save(scholarships, applications))

	gotScholarships, gotApplications := s.Load()
	assert.Equal(t, scholarships, gotScholarships)
	assert.Equal(t, applications, gotApplications)
}

func TestStoreLoadEmptyWhenAbsent(t *testing.T) {
	s := newTestStore(t)

	scholarships, applications := s.Load()
	assert.NotNil(t, scholarships)
	assert.NotNil(t, applications)
	assert.Empty(t, scholarships)
	assert.Empty(t, applications)
}

func TestStoreLoadEmptyWhenCorrupt(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scholarships.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "applications.json"), []byte(`{"wrong":"shape"}`), 0o644))

	scholarships, applications := s.Load()
	assert.Empty(t, scholarships)
	assert.Empty(t, applications)
}

func TestStoreLoadTreatsNullAsEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scholarships.json"), []byte("null"), 0o644))

	scholarships, _ := s.Load()
	assert.NotNil(t, scholarships)
	assert.Empty(t, scholarships)
}

func TestStoreSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveScholarships([]models.Scholarship{{ID: 1, Name: "First"}, {ID: 2, Name: "Second"}}))
	require.NoError(t, s.SaveScholarships([]models.Scholarship{{ID: 3, Name: "Only"}}))

	scholarships, _ := s.Load()
	require.Len(t, scholarships, 1)
	assert.Equal(t, "Only", scholarships[0].Name)
}
