// SPDX-License-Identifier: EPL-2.0

package halfperiod

import "fmt"

// Position of a half period within the input.
type Position struct {
	Samples uint64
	Seconds float64
}

func NewPosition(samples uint64, sampleRate int) Position {
	p := Position{Samples: samples}
	if sampleRate > 0 {
		p.Seconds = float64(samples) / float64(sampleRate)
	}

	return p
}

// Since returns the time from q to p in seconds.
func (p Position) Since(q Position) float64 {
	return p.Seconds - q.Seconds
}

// String renders the position as "hh:mm:ss.ssss sample 000000000".
func (p Position) String() string {
	hours := int(p.Seconds / 3600)
	minutes := int(p.Seconds/60) % 60
	seconds := p.Seconds - float64(hours*3600+minutes*60)

	return fmt.Sprintf("%02d:%02d:%07.4f sample %09d", hours, minutes, seconds, p.Samples)
}
