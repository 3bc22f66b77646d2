package service

import (
	"math"
	"time"

	"github.com/noah-isme/scholarship-portal/internal/models"
)

type applicationLister interface {
	All() []models.Application
}

// AnalyticsService computes aggregate views over the application
// collection. Results are pure functions of the collection, recomputed
// on every call and never cached.
type AnalyticsService struct {
	applications applicationLister
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(applications applicationLister) *AnalyticsService {
	return &AnalyticsService{applications: applications}
}

// Summary counts applications by status and derives the approval rate,
// rounded to a whole percentage. An empty collection yields rate 0.
func (s *AnalyticsService) Summary() models.AnalyticsSummary {
	apps := s.applications.All()
	summary := models.AnalyticsSummary{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case models.StatusApproved:
			summary.Approved++
		case models.StatusUnderReview:
			summary.UnderReview++
		}
	}
	if summary.Total > 0 {
		summary.ApprovalRate = int(math.Round(float64(summary.Approved) / float64(summary.Total) * 100))
	}
	return summary
}

// DaysRemaining returns the ceiling of whole days between now and the
// deadline. Zero or negative means the listing is presented as closed;
// closure does not block new applications. The second return is false
// when the deadline does not parse.
func DaysRemaining(deadline string, now time.Time) (int, bool) {
	d, err := time.Parse(models.DeadlineLayout, deadline)
	if err != nil {
		return 0, false
	}
	diff := d.Sub(now)
	return int(math.Ceil(diff.Hours() / 24)), true
}
