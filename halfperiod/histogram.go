// SPDX-License-Identifier: EPL-2.0

package halfperiod

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin is one histogram bucket covering [Low, High) Hz.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// NewHistogram spreads values over bins equally wide buckets between their
// minimum and maximum. It is used to find the frequency bands of a
// recording.
func NewHistogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	x := slices.Clone(values)
	slices.Sort(x)

	lo, hi := floats.Min(x), floats.Max(x)
	if hi <= lo {
		hi = lo + 1
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram needs every value below the last divider
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, x, nil)

	out := make([]Bin, bins)
	for i, c := range counts {
		out[i] = Bin{Low: dividers[i], High: dividers[i+1], Count: int(c)}
	}

	return out
}

// WriteHistogram prints one line per bin with a bar scaled to width
// characters.
func WriteHistogram(w io.Writer, bins []Bin, width int) error {
	peak := 0
	for _, b := range bins {
		peak = max(peak, b.Count)
	}

	for _, b := range bins {
		bar := 0
		if peak > 0 {
			bar = b.Count * width / peak
		}
		if _, err := fmt.Fprintf(w, "%8.1f - %8.1f Hz %8d %s\n", b.Low, b.High, b.Count, strings.Repeat("#", bar)); err != nil {
			return fmt.Errorf("writing histogram: %w", err)
		}
	}

	return nil
}
