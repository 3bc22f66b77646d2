package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Scholarships",
		Headers: []string{"ID", "Name", "Amount"},
		Rows: [][]string{
			{"1", "Merit Scholarship", "5000"},
			{"2", "Need-Based Aid", "3000"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	data, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Name,Amount", lines[0])
	assert.Equal(t, "1,Merit Scholarship,5000", lines[1])
}

func TestCSVExporterPadsShortRows(t *testing.T) {
	dataset := sampleDataset()
	dataset.Rows = [][]string{{"1"}}

	data, err := NewCSVExporter().Render(dataset)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "1,,", lines[1])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	data, err := NewPDFExporter().Render(sampleDataset())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{Title: "Empty"})
	assert.Error(t, err)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, FormatCSV.Valid())
	assert.True(t, FormatPDF.Valid())
	assert.False(t, Format("xlsx").Valid())
	assert.Equal(t, "csv", FormatCSV.Extension())
}
