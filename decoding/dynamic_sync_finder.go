// SPDX-License-Identifier: EPL-2.0

package decoding

import (
	"math"

	"github.com/ik5/retrotape/halfperiod"
)

// DynamicSyncFinder looks for a pilot tone of unknown frequency: at least
// MinHalfPeriods half periods that each stay within MaxRelativeDeviation of
// the mean of the ones before. It measures the tone, so decoders can
// follow tapes recorded or played at the wrong speed.
type DynamicSyncFinder struct {
	Provider             halfperiod.Provider
	MinHalfPeriods       int
	MaxRelativeDeviation float64
}

// NewDynamicSyncFinder looks for a tone of unknown frequency held within
// maxRelativeDeviation for at least minHalfPeriods half periods.
func NewDynamicSyncFinder(p halfperiod.Provider, minHalfPeriods int, maxRelativeDeviation float64) *DynamicSyncFinder {
	return &DynamicSyncFinder{
		Provider:             p,
		MinHalfPeriods:       minHalfPeriods,
		MaxRelativeDeviation: maxRelativeDeviation,
	}
}

// Find returns the mean frequency of the next pilot tone, measured over
// its last MinHalfPeriods half periods. The provider is positioned on the
// first half period that deviates from the tone.
func (f *DynamicSyncFinder) Find() (float64, bool) {
	p := f.Provider
	size := max(f.MinHalfPeriods, 1)

	window := make([]float64, size)
	start, count := 0, 0
	sum := 0.0

	for {
		v, ok := p.Next()
		if !ok {
			return 0, false
		}

		if count > 0 {
			avg := sum / float64(count)
			if math.Abs(v-avg)/avg > f.MaxRelativeDeviation {
				if count >= f.MinHalfPeriods {
					p.RewindOne()
					return avg, true
				}

				start, count, sum = 0, 0, 0
				continue
			}
		}

		if count == size {
			sum -= window[start]
			window[start] = v
			start = (start + 1) % size
		} else {
			window[(start+count)%size] = v
			count++
		}
		sum += v
	}
}
