package output

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"name", "8.8.8.8:53"})
	table.AddRow([]string{"example.com", "93.184.216.34"})

	var buf strings.Builder
	require.NoError(t, table.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "name")
	assert.Contains(t, out, "8.8.8.8:53")
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "93.184.216.34")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestTableShortRowIsPadded(t *testing.T) {
	table := NewTable([]string{"name", "a", "b"})
	table.AddRow([]string{"example.com"})

	var buf strings.Builder
	require.NoError(t, table.Render(&buf))

	// All rows render the full column count.
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.HasPrefix(line, "│") {
			assert.Equal(t, 4, strings.Count(line, "│"))
		}
	}
}

// Column widths come from the plain text, so styling must not change the
// rendered geometry.
func TestTableStyledRowKeepsAlignment(t *testing.T) {
	previous := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = previous }()

	plain := NewTable([]string{"name", "a"})
	plain.AddRow([]string{"example.com", "1.1.1.1"})
	var plainBuf strings.Builder
	require.NoError(t, plain.Render(&plainBuf))

	styled := NewTable([]string{"name", "a"})
	styled.AddStyledRow([]string{"example.com", "1.1.1.1"},
		[]*color.Color{nil, color.New(color.FgGreen)})
	var styledBuf strings.Builder
	require.NoError(t, styled.Render(&styledBuf))

	stripped := strings.ReplaceAll(styledBuf.String(), "\x1b[32m", "")
	stripped = strings.ReplaceAll(stripped, "\x1b[0m", "")
	assert.Equal(t, plainBuf.String(), stripped)
}
