// =============================================================================
// internal/grid/matrix.go - Result and timing matrices
// =============================================================================
package grid

// Cell is one (name, server) intersection in the comparison grid.
// A defined cell with an empty Value means the server answered but returned
// no records of the requested type; an undefined cell means no answer at all.
type Cell struct {
	Value   string `json:"value"`
	Defined bool   `json:"defined"`
}

// Matrix holds the completed results of one dispatch run: a resolved value
// per (name, server) pair plus the elapsed query time in milliseconds where
// the server produced at least one matching record.
type Matrix struct {
	names   []string
	servers []string
	cells   map[string]map[string]Cell
	timings map[string]map[string]float64
}

// NewMatrix creates an empty matrix for the given names and servers.
// Every (name, server) pair starts out undefined.
func NewMatrix(names, servers []string) *Matrix {
	m := &Matrix{
		names:   append([]string(nil), names...),
		servers: append([]string(nil), servers...),
		cells:   make(map[string]map[string]Cell, len(names)),
		timings: make(map[string]map[string]float64, len(names)),
	}
	for _, name := range names {
		m.cells[name] = make(map[string]Cell, len(servers))
		m.timings[name] = make(map[string]float64, len(servers))
	}
	return m
}

// Names returns the queried names in input order.
func (m *Matrix) Names() []string {
	return m.names
}

// Servers returns the queried servers in input order.
func (m *Matrix) Servers() []string {
	return m.servers
}

// SetCell records the resolved value for a (name, server) pair.
func (m *Matrix) SetCell(name, server, value string) {
	m.cells[name][server] = Cell{Value: value, Defined: true}
}

// SetTiming records the elapsed milliseconds for a (name, server) pair.
func (m *Matrix) SetTiming(name, server string, millis float64) {
	m.timings[name][server] = millis
}

// Cell returns the cell for a (name, server) pair. Pairs never written
// come back as the zero Cell, i.e. undefined.
func (m *Matrix) Cell(name, server string) Cell {
	return m.cells[name][server]
}

// Timing returns the elapsed milliseconds for a (name, server) pair and
// whether a timing was recorded at all.
func (m *Matrix) Timing(name, server string) (float64, bool) {
	millis, ok := m.timings[name][server]
	return millis, ok
}
