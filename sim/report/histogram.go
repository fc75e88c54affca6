package report

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DefaultBins is the bin count used when none is given.
const DefaultBins = 20

// Bin is one half-open histogram interval [Lo, Hi). The last bin also
// includes its upper edge.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram splits values into equal-width bins spanning [min, max].
// Returns nil for no values. When every value is equal a single bin holds them.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if hi == lo {
		return []Bin{{Lo: lo, Hi: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	out[bins-1].Hi = hi
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// WriteHistogram renders bins as horizontal bars at most barWidth cells wide.
func WriteHistogram(w io.Writer, title string, bins []Bin, barWidth int) error {
	if _, err := fmt.Fprintln(w, headerStyle.Render(title)); err != nil {
		return err
	}
	if len(bins) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("  (no data)"))
		return err
	}
	if barWidth <= 0 {
		barWidth = 40
	}

	peak := 0
	for _, b := range bins {
		peak = max(peak, b.Count)
	}
	for _, b := range bins {
		n := 0
		if peak > 0 {
			n = b.Count * barWidth / peak
		}
		bar := barStyle.Render(strings.Repeat("█", n))
		if _, err := fmt.Fprintf(w, "  %8.2f – %8.2f │%s %d\n", b.Lo, b.Hi, bar, b.Count); err != nil {
			return err
		}
	}
	return nil
}
