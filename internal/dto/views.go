package dto

import "github.com/noah-isme/scholarship-portal/internal/models"

// ScholarshipView decorates a scholarship with deadline-derived state
// for presentation. Closed listings still accept applications.
type ScholarshipView struct {
	models.Scholarship
	DaysLeft int
	Closed   bool
}
