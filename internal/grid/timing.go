// =============================================================================
// internal/grid/timing.go - Millisecond display buckets
// =============================================================================
package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Display buckets for elapsed query times. Everything above the overflow
// boundary or below the underflow boundary collapses into a literal, and
// the literals reparse to sentinel values so timing cells stay rankable.
const (
	overflowMillis   = 4000.0
	underflowMillis  = 0.5
	overflowDisplay  = ">4000ms"
	underflowDisplay = "<=0.5ms"

	// Sentinels the bucket literals reparse to, for ranking only.
	overflowRank  = 4001.0
	underflowRank = 0.01
)

// FormatMillis renders an elapsed time in milliseconds as a display cell:
// the overflow/underflow literals at the boundaries, otherwise the value
// rounded to three significant digits, right-aligned and suffixed "ms"
// (e.g. " 23ms").
func FormatMillis(millis float64) string {
	switch {
	case millis > overflowMillis:
		return overflowDisplay
	case millis <= underflowMillis:
		return underflowDisplay
	}
	return fmt.Sprintf("%3.0fms", roundSignificant(millis, 3))
}

// ParseMillis recovers an approximate numeric value from a timing display
// cell. Bucket literals map to their rank sentinels. The second return is
// false for anything that is not a timing cell, which lets the fastest-time
// classifier run over address rows as a no-op.
func ParseMillis(display string) (float64, bool) {
	s := strings.TrimSpace(display)
	if !strings.HasSuffix(s, "ms") {
		return 0, false
	}
	switch {
	case strings.HasPrefix(s, "<"):
		return underflowRank, true
	case strings.HasPrefix(s, ">"):
		return overflowRank, true
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "ms")), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// roundSignificant rounds v to the given number of significant digits.
func roundSignificant(v float64, digits int) float64 {
	if v == 0 {
		return 0
	}
	scale := math.Pow(10, float64(digits)-math.Ceil(math.Log10(math.Abs(v))))
	return math.Round(v*scale) / scale
}
