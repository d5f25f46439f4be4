// =============================================================================
// internal/grid/rows.go - Per-name output row assembly
// =============================================================================
package grid

import (
	"fmt"
	"strings"
)

// Action selects what the comparison grid shows per cell.
type Action string

const (
	ActionShowAddresses    Action = "show-addresses"
	ActionCompareAddresses Action = "compare-addresses"
	ActionShowTimings      Action = "show-timings"
)

// ParseAction validates an action selector. An unknown selector is a
// configuration error and rejects the whole run.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionShowAddresses, ActionCompareAddresses, ActionShowTimings:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown action %q (expected %s, %s, or %s)",
		s, ActionShowAddresses, ActionCompareAddresses, ActionShowTimings)
}

// Row is one output row: the queried name plus one cell per server, in
// input server order.
type Row struct {
	Name  string
	Cells []Cell
}

// BuildRows assembles one row per name from a completed matrix. For the
// address actions cells carry the joined address strings; for the timing
// action they carry the bucketed display strings from FormatMillis. Names
// no server answered still produce a row of undefined cells.
func BuildRows(matrix *Matrix, action Action) ([]Row, error) {
	if _, err := ParseAction(string(action)); err != nil {
		return nil, err
	}

	servers := matrix.Servers()
	rows := make([]Row, 0, len(matrix.Names()))
	for _, name := range matrix.Names() {
		row := Row{Name: name, Cells: make([]Cell, 0, len(servers))}
		for _, server := range servers {
			switch action {
			case ActionShowTimings:
				if millis, ok := matrix.Timing(name, server); ok {
					row.Cells = append(row.Cells, Cell{Value: FormatMillis(millis), Defined: true})
				} else {
					row.Cells = append(row.Cells, Cell{})
				}
			default:
				row.Cells = append(row.Cells, matrix.Cell(name, server))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// JoinValues joins record values into a single cell value, preserving
// resolver order.
func JoinValues(values []string) string {
	return strings.Join(values, ", ")
}
