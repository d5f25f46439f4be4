// =============================================================================
// internal/output/table.go - Table formatting utilities
// =============================================================================
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Table represents a formatted table. Cells can carry an optional style;
// column widths are always computed from the plain text so ANSI escape
// codes never break alignment.
type Table struct {
	headers []string
	rows    [][]string
	styles  [][]*color.Color
	widths  []int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}

	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		styles:  make([][]*color.Color, 0),
		widths:  widths,
	}
}

// AddRow adds an unstyled row to the table.
func (t *Table) AddRow(row []string) {
	t.AddStyledRow(row, nil)
}

// AddStyledRow adds a row with an optional per-cell style. styles may be
// nil or shorter than the row; missing entries render unstyled.
func (t *Table) AddStyledRow(row []string, styles []*color.Color) {
	if len(row) != len(t.headers) {
		// Pad or truncate row to match header count
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		row = newRow
	}

	cellStyles := make([]*color.Color, len(t.headers))
	copy(cellStyles, styles)

	// Update column widths
	for i, cell := range row {
		if len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}

	t.rows = append(t.rows, row)
	t.styles = append(t.styles, cellStyles)
}

// Render renders the table to the writer.
func (t *Table) Render(writer io.Writer) error {
	if len(t.headers) == 0 {
		return nil
	}

	// Calculate total width
	totalWidth := 0
	for _, width := range t.widths {
		totalWidth += width + 3 // +3 for " | "
	}
	totalWidth -= 3 // Remove last " | "

	// Print top border
	fmt.Fprintf(writer, "┌%s┐\n", strings.Repeat("─", totalWidth))

	// Print headers
	fmt.Fprint(writer, "│")
	for i, header := range t.headers {
		fmt.Fprintf(writer, " %-*s ", t.widths[i], header)
		if i < len(t.headers)-1 {
			fmt.Fprint(writer, "│")
		}
	}
	fmt.Fprintf(writer, "│\n")

	// Print header separator
	fmt.Fprintf(writer, "├%s┤\n", strings.Repeat("─", totalWidth))

	// Print rows
	for r, row := range t.rows {
		fmt.Fprint(writer, "│")
		for i, cell := range row {
			text := fmt.Sprintf(" %-*s ", t.widths[i], cell)
			if style := t.styles[r][i]; style != nil {
				text = style.Sprint(text)
			}
			fmt.Fprint(writer, text)
			if i < len(row)-1 {
				fmt.Fprint(writer, "│")
			}
		}
		fmt.Fprintf(writer, "│\n")
	}

	// Print bottom border
	fmt.Fprintf(writer, "└%s┘\n", strings.Repeat("─", totalWidth))

	return nil
}
