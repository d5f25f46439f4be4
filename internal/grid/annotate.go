// =============================================================================
// internal/grid/annotate.go - Per-row highlight classification
// =============================================================================
package grid

import "sort"

// Class is the highlight classification of one cell within its row.
type Class string

const (
	ClassNone                 Class = "none"
	ClassMajority             Class = "majority"
	ClassMinority             Class = "minority"
	ClassMatchReference       Class = "match-reference"
	ClassMismatchReference    Class = "mismatch-reference"
	ClassAbsentMatchReference Class = "absent-match-reference"
	ClassFastest              Class = "fastest"
	ClassFailed               Class = "failed"
)

// Annotation maps each server to its highlight class for one row.
type Annotation map[string]Class

// Annotate classifies every cell of a completed row. It is a pure function
// of the row: annotations are recomputed per render, never stored.
//
// The classifier sequence depends on the action. The fastest-time pass runs
// for every action; it only reacts to timing-shaped cells, so address rows
// pass through it untouched.
func Annotate(row Row, servers []string, action Action) Annotation {
	annotation := make(Annotation, len(servers))
	for _, server := range servers {
		annotation[server] = ClassNone
	}

	switch action {
	case ActionCompareAddresses:
		classifyReference(row, servers, annotation)
	case ActionShowTimings:
		classifyFastest(row, servers, annotation)
		classifyFailed(row, servers, annotation)
	default:
		classifyMajority(row, servers, annotation)
		classifyFailed(row, servers, annotation)
		classifyFastest(row, servers, annotation)
	}
	return annotation
}

// classifyMajority splits the row's defined values into majority and
// minority by frequency. Distinct values are ranked by descending frequency
// (ties keep first-encountered order); values stay majority until the first
// strict frequency decrease in rank order, and everything after that point
// is minority. A row where every value is distinct therefore classifies
// everything majority: no frequency is ever strictly below a prior one.
func classifyMajority(row Row, servers []string, annotation Annotation) {
	counts := make(map[string]int)
	var order []string
	for _, cell := range row.Cells {
		if !cell.Defined {
			continue
		}
		if _, seen := counts[cell.Value]; !seen {
			order = append(order, cell.Value)
		}
		counts[cell.Value]++
	}
	if len(order) == 0 {
		return
	}

	ranked := append([]string(nil), order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	classes := make(map[string]Class, len(ranked))
	previous := counts[ranked[0]]
	decreased := false
	for _, value := range ranked {
		if counts[value] < previous {
			decreased = true
		}
		if decreased {
			classes[value] = ClassMinority
		} else {
			classes[value] = ClassMajority
		}
		previous = counts[value]
	}

	for i, cell := range row.Cells {
		if cell.Defined {
			annotation[servers[i]] = classes[cell.Value]
		}
	}
}

// classifyReference compares every cell against the reference server
// (the first in input order). Failed cells fold into the comparison here:
// an undefined cell matches an undefined reference and mismatches a
// defined one. The reference itself always classifies match-reference.
func classifyReference(row Row, servers []string, annotation Annotation) {
	if len(row.Cells) == 0 {
		return
	}
	reference := row.Cells[0]
	for i, cell := range row.Cells {
		switch {
		case i == 0:
			annotation[servers[i]] = ClassMatchReference
		case cell.Defined && reference.Defined && cell.Value == reference.Value:
			annotation[servers[i]] = ClassMatchReference
		case !cell.Defined && !reference.Defined:
			annotation[servers[i]] = ClassAbsentMatchReference
		default:
			annotation[servers[i]] = ClassMismatchReference
		}
	}
}

// classifyFastest reparses timing display cells and marks every cell tied
// for the minimum value. Rows without timing cells are left alone.
func classifyFastest(row Row, servers []string, annotation Annotation) {
	minimum := 0.0
	found := false
	values := make([]float64, len(row.Cells))
	parsed := make([]bool, len(row.Cells))

	for i, cell := range row.Cells {
		if !cell.Defined {
			continue
		}
		value, ok := ParseMillis(cell.Value)
		if !ok {
			continue
		}
		values[i] = value
		parsed[i] = true
		if !found || value < minimum {
			minimum = value
			found = true
		}
	}
	if !found {
		return
	}

	for i := range row.Cells {
		if parsed[i] && values[i] == minimum {
			annotation[servers[i]] = ClassFastest
		}
	}
}

// classifyFailed marks undefined cells. Undefined cells are excluded from
// the majority and fastest passes by construction, so failed never
// competes with another class.
func classifyFailed(row Row, servers []string, annotation Annotation) {
	for i, cell := range row.Cells {
		if !cell.Defined {
			annotation[servers[i]] = ClassFailed
		}
	}
}
