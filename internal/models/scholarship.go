package models

// DeadlineLayout is the ISO date format scholarships persist deadlines in.
const DeadlineLayout = "2006-01-02"

// Scholarship represents an offer students apply against.
// JSON tags match the persisted collection layout.
type Scholarship struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Deadline    string  `json:"deadline"`
	GPA         float64 `json:"gpa"`
	Awards      int     `json:"awards"`
}

// SortKey selects the ordering of a scholarship query.
type SortKey string

const (
	SortByDeadline SortKey = "deadline"
	SortByAmount   SortKey = "amount"
	SortByName     SortKey = "name"
)

// ScholarshipFilter encapsulates the student-view query parameters.
// Query matches against the name, case-insensitively. Unknown sort
// keys fall back to name ascending.
type ScholarshipFilter struct {
	Query     string
	MinAmount float64
	MinGPA    float64
	SortBy    SortKey
}
