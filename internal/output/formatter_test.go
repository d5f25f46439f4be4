package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanCE/dnsgrid/internal/grid"
)

func sampleReport() *grid.Report {
	return &grid.Report{
		Code:    0,
		Message: "resolved 1 names against 2 servers (show-addresses)",
		Columns: []string{"name", "8.8.8.8", "1.1.1.1"},
		Rows: []grid.ReportRow{
			{
				Name: "example.com",
				Cells: []grid.ReportCell{
					{Server: "8.8.8.8", Value: "93.184.216.34", Defined: true, Class: grid.ClassMajority, Display: "93.184.216.34"},
					{Server: "1.1.1.1", Class: grid.ClassFailed, Display: "X"},
				},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "csv"} {
		format, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(valid), format)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatReportTable(t *testing.T) {
	var buf strings.Builder
	formatter := NewFormatter(FormatTable, false)
	require.NoError(t, formatter.FormatReport(sampleReport(), &buf))

	out := buf.String()
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "93.184.216.34")
	assert.Contains(t, out, "X")
	assert.Contains(t, out, "resolved 1 names against 2 servers")
}

func TestFormatReportJSON(t *testing.T) {
	var buf strings.Builder
	formatter := NewFormatter(FormatJSON, true)
	require.NoError(t, formatter.FormatReport(sampleReport(), &buf))

	var decoded grid.Report
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &decoded))
	assert.Equal(t, 0, decoded.Code)
	assert.Equal(t, []string{"name", "8.8.8.8", "1.1.1.1"}, decoded.Columns)
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, grid.ClassFailed, decoded.Rows[0].Cells[1].Class)
}

func TestFormatReportCSV(t *testing.T) {
	var buf strings.Builder
	formatter := NewFormatter(FormatCSV, true)
	require.NoError(t, formatter.FormatReport(sampleReport(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,8.8.8.8,1.1.1.1", lines[0])
	assert.Equal(t, "example.com,93.184.216.34,X", lines[1])
}

func TestClassStyle(t *testing.T) {
	assert.NotNil(t, classStyle(grid.ClassMajority))
	assert.NotNil(t, classStyle(grid.ClassMinority))
	assert.NotNil(t, classStyle(grid.ClassMismatchReference))
	assert.NotNil(t, classStyle(grid.ClassAbsentMatchReference))
	assert.NotNil(t, classStyle(grid.ClassFailed))
	assert.NotNil(t, classStyle(grid.ClassFastest))
	assert.Nil(t, classStyle(grid.ClassNone))
}
