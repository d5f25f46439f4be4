// =============================================================================
// internal/output/formatter.go - Output formatting for different formats
// =============================================================================
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bryanCE/dnsgrid/internal/grid"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatCSV   OutputFormat = "csv"
)

// ParseFormat validates an output format string.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatTable, FormatJSON, FormatCSV:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (expected table, json, or csv)", s)
}

// Formatter handles output formatting for different formats.
type Formatter struct {
	format   OutputFormat
	colorize bool
}

// NewFormatter creates a new formatter with the specified format.
// colorize only affects the table output; the JSON and CSV forms always
// carry the classification labels as data.
func NewFormatter(format OutputFormat, colorize bool) *Formatter {
	return &Formatter{format: format, colorize: colorize}
}

// FormatReport formats a comparison report.
func (f *Formatter) FormatReport(report *grid.Report, writer io.Writer) error {
	switch f.format {
	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case FormatCSV:
		return f.formatReportCSV(report, writer)
	default:
		return f.formatReportTable(report, writer)
	}
}

func (f *Formatter) formatReportTable(report *grid.Report, writer io.Writer) error {
	fmt.Fprintf(writer, "🔍 %s\n\n", report.Message)

	table := NewTable(report.Columns)
	for _, row := range report.Rows {
		cells := make([]string, 0, len(report.Columns))
		styles := make([]*color.Color, 0, len(report.Columns))
		cells = append(cells, row.Name)
		styles = append(styles, nil)
		for _, cell := range row.Cells {
			cells = append(cells, cell.Display)
			if f.colorize {
				styles = append(styles, classStyle(cell.Class))
			} else {
				styles = append(styles, nil)
			}
		}
		table.AddStyledRow(cells, styles)
	}

	return table.Render(writer)
}

func (f *Formatter) formatReportCSV(report *grid.Report, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	defer csvWriter.Flush()

	if err := csvWriter.Write(report.Columns); err != nil {
		return err
	}

	for _, row := range report.Rows {
		record := make([]string, 0, len(report.Columns))
		record = append(record, row.Name)
		for _, cell := range row.Cells {
			record = append(record, cell.Display)
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// classStyle maps a highlight class to its terminal color. Agreement and
// speed render green, rare values yellow, disagreement and failure red.
func classStyle(class grid.Class) *color.Color {
	switch class {
	case grid.ClassMajority, grid.ClassMatchReference, grid.ClassFastest:
		return color.New(color.FgGreen)
	case grid.ClassMinority:
		return color.New(color.FgYellow)
	case grid.ClassMismatchReference, grid.ClassFailed:
		return color.New(color.FgRed)
	case grid.ClassAbsentMatchReference:
		return color.New(color.FgCyan)
	}
	return nil
}
