package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal/internal/models"
	"github.com/noah-isme/scholarship-portal/pkg/export"
	appErrors "github.com/noah-isme/scholarship-portal/pkg/errors"
)

type staticScholarships []models.Scholarship

func (s staticScholarships) All() []models.Scholarship {
	return s
}

type storageStub struct {
	filename string
	data     []byte
	err      error
}

func (s *storageStub) Save(filename string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.filename = filename
	s.data = data
	return "/exports/" + filename, nil
}

func newExportFixture() (*ExportService, *storageStub) {
	stub := &storageStub{}
	svc := NewExportService(
		staticScholarships{{ID: 1, Name: "Merit Scholarship", Amount: 5000, Deadline: "2025-11-30", GPA: 3.5, Awards: 10}},
		staticApplications{{ID: 1, StudentName: "Alice", StudentEmail: "a@x.com", ScholarshipName: "Merit Scholarship", Status: models.StatusApproved, SubmittedDate: "Nov 1, 2025"}},
		stub,
		nil,
	)
	return svc, stub
}

func TestExportScholarshipsCSV(t *testing.T) {
	svc, stub := newExportFixture()

	path, err := svc.ExportScholarships(export.FormatCSV)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stub.filename, "scholarships-"))
	assert.True(t, strings.HasSuffix(stub.filename, ".csv"))
	assert.Equal(t, "/exports/"+stub.filename, path)

	content := string(stub.data)
	assert.Contains(t, content, "ID,Name,Amount,Deadline,Min GPA,Awards")
	assert.Contains(t, content, "Merit Scholarship")
	assert.Contains(t, content, "5000")
}

func TestExportApplicationsCSV(t *testing.T) {
	svc, stub := newExportFixture()

	_, err := svc.ExportApplications(export.FormatCSV)
	require.NoError(t, err)

	content := string(stub.data)
	assert.Contains(t, content, "Alice")
	assert.Contains(t, content, "Approved")
}

func TestExportPDFPayload(t *testing.T) {
	svc, stub := newExportFixture()

	_, err := svc.ExportScholarships(export.FormatPDF)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stub.filename, ".pdf"))
	require.NotEmpty(t, stub.data)
	assert.True(t, strings.HasPrefix(string(stub.data), "%PDF"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc, _ := newExportFixture()

	_, err := svc.ExportScholarships(export.Format("xlsx"))
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestExportStorageFailure(t *testing.T) {
	stub := &storageStub{err: appErrors.Clone(appErrors.ErrStorage, "disk full")}
	svc := NewExportService(staticScholarships{}, staticApplications{}, stub, nil)

	_, err := svc.ExportScholarships(export.FormatCSV)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrStorage))
}
