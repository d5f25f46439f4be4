package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		name   string
		millis float64
		want   string
	}{
		{"overflow bucket", 6000, ">4000ms"},
		{"just above overflow", 4000.1, ">4000ms"},
		{"at overflow boundary stays numeric", 4000, "4000ms"},
		{"underflow bucket", 0.2, "<=0.5ms"},
		{"at underflow boundary", 0.5, "<=0.5ms"},
		{"two digits pads to width three", 23.4, " 23ms"},
		{"three digits", 700, "700ms"},
		{"single digit", 3.2, "  3ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMillis(tt.millis))
		})
	}
}

func TestParseMillis(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    float64
		ok      bool
	}{
		{"overflow literal ranks above everything", ">4000ms", 4001, true},
		{"underflow literal ranks below everything", "<=0.5ms", 0.01, true},
		{"padded numeric", " 23ms", 23, true},
		{"plain numeric", "700ms", 700, true},
		{"address is not a timing cell", "8.8.8.8", 0, false},
		{"joined addresses are not timing cells", "1.1.1.1, 2.2.2.2", 0, false},
		{"empty string", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMillis(tt.display)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// The bucket literals must survive a full format -> parse round trip so the
// fastest-time classifier can rank rows that contain them.
func TestTimingRoundTrip(t *testing.T) {
	tests := []struct {
		millis float64
		want   float64
	}{
		{6000, 4001},
		{0.2, 0.01},
		{23.4, 23},
	}

	for _, tt := range tests {
		got, ok := ParseMillis(FormatMillis(tt.millis))
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
	}
}
