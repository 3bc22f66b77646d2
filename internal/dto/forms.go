package dto

// Forms carry raw field values from the presentation layer. Every
// field arrives as text; numeric and date parsing happens inside the
// core operations.

// ScholarshipForm is the admin create/edit payload.
type ScholarshipForm struct {
	Name        string `validate:"required"`
	Description string
	Amount      string
	Deadline    string `validate:"required,datetime=2006-01-02"`
	GPA         string
	Awards      string
}

// ApplicationForm is the student submission payload.
type ApplicationForm struct {
	StudentName   string `validate:"required"`
	StudentEmail  string `validate:"required,email"`
	ScholarshipID string `validate:"required"`
	Essay         string `validate:"required"`
}

// ScholarshipFilterForm is the raw student-view filter input.
type ScholarshipFilterForm struct {
	Query     string
	MinAmount string
	MinGPA    string
	SortBy    string
}
