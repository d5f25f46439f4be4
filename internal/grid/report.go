// =============================================================================
// internal/grid/report.go - Status envelope handed to the output layer
// =============================================================================
package grid

import "fmt"

// Report wraps the finished rows in a status envelope for rendering:
// a success code, a descriptive message, and the column order the table
// should use ("name" followed by the servers in input order).
type Report struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Columns []string    `json:"columns"`
	Rows    []ReportRow `json:"rows"`
}

// ReportRow is one renderable row: display strings plus the highlight
// class per cell.
type ReportRow struct {
	Name  string       `json:"name"`
	Cells []ReportCell `json:"cells"`
}

// ReportCell is one renderable cell.
type ReportCell struct {
	Server  string `json:"server"`
	Value   string `json:"value"`
	Defined bool   `json:"defined"`
	Class   Class  `json:"class"`
	Display string `json:"display"`
}

// FailedMarker is shown in place of undefined cells when annotation is on.
const FailedMarker = "X"

// NewReport builds rows from a completed matrix, annotates them, and wraps
// everything in the envelope. With annotate disabled the classifications
// are still computed (JSON consumers keep them) but undefined cells render
// empty instead of the failed marker.
func NewReport(matrix *Matrix, action Action, annotate bool) (*Report, error) {
	rows, err := BuildRows(matrix, action)
	if err != nil {
		return nil, err
	}

	servers := matrix.Servers()
	columns := append([]string{"name"}, servers...)

	report := &Report{
		Code: 0,
		Message: fmt.Sprintf("resolved %d names against %d servers (%s)",
			len(rows), len(servers), action),
		Columns: columns,
		Rows:    make([]ReportRow, 0, len(rows)),
	}

	for _, row := range rows {
		annotation := Annotate(row, servers, action)
		reportRow := ReportRow{Name: row.Name, Cells: make([]ReportCell, 0, len(servers))}
		for i, cell := range row.Cells {
			display := cell.Value
			if !cell.Defined {
				display = ""
				if annotate {
					display = FailedMarker
				}
			}
			reportRow.Cells = append(reportRow.Cells, ReportCell{
				Server:  servers[i],
				Value:   cell.Value,
				Defined: cell.Defined,
				Class:   annotation[servers[i]],
				Display: display,
			})
		}
		report.Rows = append(report.Rows, reportRow)
	}
	return report, nil
}
