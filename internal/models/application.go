package models

// SubmittedDateLayout is the display format applications record their
// submission date in. It is not a sortable timestamp.
const SubmittedDateLayout = "Jan 2, 2006"

// ApplicationStatus is the review lifecycle state of an application.
type ApplicationStatus string

const (
	StatusSubmitted   ApplicationStatus = "submitted"
	StatusUnderReview ApplicationStatus = "under-review"
	StatusApproved    ApplicationStatus = "approved"
	StatusRejected    ApplicationStatus = "rejected"
)

// AllStatuses lists every reachable status. Transitions are
// unrestricted: any status may be set from any other.
func AllStatuses() []ApplicationStatus {
	return []ApplicationStatus{StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected}
}

// Valid reports whether the status is a known lifecycle state.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Label returns the human-readable form of the status.
func (s ApplicationStatus) Label() string {
	switch s {
	case StatusSubmitted:
		return "Submitted"
	case StatusUnderReview:
		return "Under Review"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

// Application is a student's submission against one scholarship.
// ScholarshipName is a denormalized snapshot taken at submission time;
// it does not track later edits or deletion of the scholarship.
type Application struct {
	ID              int64             `json:"id"`
	StudentName     string            `json:"studentName"`
	StudentEmail    string            `json:"studentEmail"`
	ScholarshipID   int64             `json:"scholarshipId"`
	ScholarshipName string            `json:"scholarshipName"`
	Essay           string            `json:"essay"`
	Status          ApplicationStatus `json:"status"`
	SubmittedDate   string            `json:"submittedDate"`
}
