// SPDX-License-Identifier: EPL-2.0

package decoding

import "github.com/ik5/retrotape/halfperiod"

// SyncFinder looks for a pilot tone: at least MinHalfPeriods consecutive
// half periods in Range.
type SyncFinder struct {
	Provider       halfperiod.Provider
	Range          FrequencyRange
	MinHalfPeriods int
}

// NewSyncFinder looks for at least minHalfPeriods consecutive half periods in r.
func NewSyncFinder(p halfperiod.Provider, r FrequencyRange, minHalfPeriods int) *SyncFinder {
	return &SyncFinder{Provider: p, Range: r, MinHalfPeriods: minHalfPeriods}
}

// Find advances to the end of the next pilot tone. On success the
// provider is positioned on the first half period after the tone. Input
// ending within a tone counts as not found.
func (f *SyncFinder) Find() bool {
	p := f.Provider

	for {
		for {
			v, ok := p.Next()
			if !ok {
				return false
			}
			if f.Range.Contains(v) {
				p.RewindOne()
				break
			}
		}

		count := 0
		for {
			v, ok := p.Next()
			if !ok {
				return false
			}
			if !f.Range.Contains(v) {
				p.RewindOne()
				break
			}
			count++
		}

		if count >= f.MinHalfPeriods {
			return true
		}
	}
}
