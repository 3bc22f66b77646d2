package models

// AnalyticsSummary aggregates the application collection. It is a
// derived view: recomputed on demand, never stored.
type AnalyticsSummary struct {
	Total        int
	Approved     int
	UnderReview  int
	ApprovalRate int
}
