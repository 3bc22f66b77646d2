package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal/pkg/errors"
)

type scholarshipStoreStub struct {
	saves int
	last  []models.Scholarship
	err   error
}

func (s *scholarshipStoreStub) SaveScholarships(items []models.Scholarship) error {
	s.saves++
	s.last = append([]models.Scholarship(nil), items...)
	return s.err
}

func TestScholarshipCreateAssignsUniqueIDs(t *testing.T) {
	stub := &scholarshipStoreStub{}
	repo := NewScholarshipRepository(stub, nil, nil)

	first, err := repo.Create(models.Scholarship{Name: "Merit"})
	require.NoError(t, err)
	second, err := repo.Create(models.Scholarship{Name: "STEM"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 2, stub.saves)
}

func TestScholarshipIDCounterResumesAboveLoaded(t *testing.T) {
	existing := []models.Scholarship{{ID: 41, Name: "Old"}}
	repo := NewScholarshipRepository(&scholarshipStoreStub{}, existing, nil)

	created, err := repo.Create(models.Scholarship{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestScholarshipCreateThenQueryReturnsRecord(t *testing.T) {
	repo := NewScholarshipRepository(&scholarshipStoreStub{}, nil, nil)

	created, err := repo.Create(models.Scholarship{Name: "Merit", Amount: 5000, GPA: 3.5, Deadline: "2025-11-30", Awards: 10})
	require.NoError(t, err)

	result := repo.Query(models.ScholarshipFilter{})
	require.Len(t, result, 1)
	assert.Equal(t, created, result[0])
}

func TestScholarshipUpdatePreservesID(t *testing.T) {
	stub := &scholarshipStoreStub{}
	repo := NewScholarshipRepository(stub, nil, nil)

	created, err := repo.Create(models.Scholarship{Name: "Merit", Amount: 5000})
	require.NoError(t, err)

	require.NoError(t, repo.Update(created.ID, models.Scholarship{Name: "Merit Award", Amount: 6000}))

	updated, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Merit Award", updated.Name)
	assert.Equal(t, float64(6000), updated.Amount)
}

func TestScholarshipUpdateUnknownID(t *testing.T) {
	repo := NewScholarshipRepository(&scholarshipStoreStub{}, nil, nil)

	err := repo.Update(99, models.Scholarship{Name: "Ghost"})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}

func TestScholarshipDeleteUnknownIDIsNoOp(t *testing.T) {
	stub := &scholarshipStoreStub{}
	repo := NewScholarshipRepository(stub, nil, nil)
	_, err := repo.Create(models.Scholarship{Name: "Merit"})
	require.NoError(t, err)
	savesBefore := stub.saves

	removed, err := repo.Delete(999)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 1, repo.Count())
	assert.Equal(t, savesBefore, stub.saves)
}

func TestScholarshipDeleteRemovesAndPersists(t *testing.T) {
	stub := &scholarshipStoreStub{}
	repo := NewScholarshipRepository(stub, nil, nil)
	created, err := repo.Create(models.Scholarship{Name: "Merit"})
	require.NoError(t, err)

	removed, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, repo.Count())
	assert.Empty(t, stub.last)
}

func queryFixture() []models.Scholarship {
	return []models.Scholarship{
		{ID: 1, Name: "Merit Scholarship", Amount: 5000, Deadline: "2025-11-30", GPA: 3.5},
		{ID: 2, Name: "Need-Based Aid", Amount: 3000, Deadline: "2025-12-15", GPA: 2.0},
		{ID: 3, Name: "STEM Excellence", Amount: 7500, Deadline: "2025-12-01", GPA: 3.7},
		{ID: 4, Name: "arts grant", Amount: 1000, Deadline: "2025-10-01", GPA: 0},
	}
}

func TestScholarshipQueryFilters(t *testing.T) {
	repo := NewScholarshipRepository(&scholarshipStoreStub{}, queryFixture(), nil)

	tests := []struct {
		name   string
		filter models.ScholarshipFilter
		want   []int64
	}{
		{
			name:   "name match is case-insensitive",
			filter: models.ScholarshipFilter{Query: "stem"},
			want:   []int64{3},
		},
		{
			name:   "minimum amount",
			filter: models.ScholarshipFilter{MinAmount: 5000, SortBy: models.SortByAmount},
			want:   []int64{3, 1},
		},
		{
			name:   "minimum gpa",
			filter: models.ScholarshipFilter{MinGPA: 3.6},
			want:   []int64{3},
		},
		{
			name:   "no match",
			filter: models.ScholarshipFilter{Query: "nonexistent"},
			want:   []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.Query(tt.filter)
			ids := make([]int64, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestScholarshipQuerySortOrders(t *testing.T) {
	repo := NewScholarshipRepository(&scholarshipStoreStub{}, queryFixture(), nil)

	t.Run("deadline ascending", func(t *testing.T) {
		got := repo.Query(models.ScholarshipFilter{SortBy: models.SortByDeadline})
		require.Len(t, got, 4)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Deadline, got[i].Deadline)
		}
	})

	t.Run("amount descending", func(t *testing.T) {
		got := repo.Query(models.ScholarshipFilter{SortBy: models.SortByAmount})
		require.Len(t, got, 4)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Amount, got[i].Amount)
		}
	})

	t.Run("unknown key falls back to name ascending", func(t *testing.T) {
		got := repo.Query(models.ScholarshipFilter{SortBy: "bogus"})
		require.Len(t, got, 4)
		names := []string{got[0].Name, got[1].Name, got[2].Name, got[3].Name}
		// Collation is case-insensitive: "arts grant" sorts first.
		assert.Equal(t, []string{"arts grant", "Merit Scholarship", "Need-Based Aid", "STEM Excellence"}, names)
	})
}

func TestScholarshipQueryDoesNotMutateCollection(t *testing.T) {
	repo := NewScholarshipRepository(&scholarshipStoreStub{}, queryFixture(), nil)

	_ = repo.Query(models.ScholarshipFilter{SortBy: models.SortByAmount})

	all := repo.All()
	require.Len(t, all, 4)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(4), all[3].ID)
}

func TestScholarshipPersistFailureKeepsMutation(t *testing.T) {
	stub := &scholarshipStoreStub{err: appErrors.Clone(appErrors.ErrStorage, "disk full")}
	repo := NewScholarshipRepository(stub, nil, nil)

	created, err := repo.Create(models.Scholarship{Name: "Merit"})
	assert.True(t, appErrors.HasCode(err, appErrors.ErrStorage))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 1, repo.Count())
}
