package service

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal/internal/models"
	"github.com/noah-isme/scholarship-portal/pkg/export"
	appErrors "github.com/noah-isme/scholarship-portal/pkg/errors"
)

type scholarshipLister interface {
	All() []models.Scholarship
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportService renders the scholarship and application collections
// into downloadable CSV or PDF files under the exports directory.
type ExportService struct {
	scholarships scholarshipLister
	applications applicationLister
	storage      fileStorage
	csv          csvRenderer
	pdf          pdfRenderer
	logger       *zap.Logger
}

// NewExportService constructs an ExportService with default renderers.
func NewExportService(scholarships scholarshipLister, applications applicationLister, storage fileStorage, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		scholarships: scholarships,
		applications: applications,
		storage:      storage,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		logger:       logger,
	}
}

// ExportScholarships renders the full scholarship collection and
// returns the written file path.
func (s *ExportService) ExportScholarships(format export.Format) (string, error) {
	items := s.scholarships.All()
	dataset := export.Dataset{
		Title:   "Scholarships",
		Headers: []string{"ID", "Name", "Amount", "Deadline", "Min GPA", "Awards"},
	}
	for _, sch := range items {
		dataset.Rows = append(dataset.Rows, []string{
			strconv.FormatInt(sch.ID, 10),
			sch.Name,
			strconv.FormatFloat(sch.Amount, 'f', -1, 64),
			sch.Deadline,
			strconv.FormatFloat(sch.GPA, 'f', -1, 64),
			strconv.Itoa(sch.Awards),
		})
	}
	return s.render("scholarships", dataset, format)
}

// ExportApplications renders the full application collection and
// returns the written file path.
func (s *ExportService) ExportApplications(format export.Format) (string, error) {
	items := s.applications.All()
	dataset := export.Dataset{
		Title:   "Applications",
		Headers: []string{"ID", "Student", "Email", "Scholarship", "Status", "Submitted"},
	}
	for _, app := range items {
		dataset.Rows = append(dataset.Rows, []string{
			strconv.FormatInt(app.ID, 10),
			app.StudentName,
			app.StudentEmail,
			app.ScholarshipName,
			app.Status.Label(),
			app.SubmittedDate,
		})
	}
	return s.render("applications", dataset, format)
}

func (s *ExportService) render(kind string, dataset export.Dataset, format export.Format) (string, error) {
	if !format.Valid() {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	var payload []byte
	var err error
	switch format {
	case export.FormatCSV:
		payload, err = s.csv.Render(dataset)
	case export.FormatPDF:
		payload, err = s.pdf.Render(dataset)
	}
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "render export")
	}

	filename := fmt.Sprintf("%s-%s.%s", kind, uuid.NewString()[:8], format.Extension())
	path, err := s.storage.Save(filename, payload)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrStorage.Code, "save export")
	}
	s.logger.Info("export written", zap.String("path", path), zap.String("format", string(format)))
	return path, nil
}
