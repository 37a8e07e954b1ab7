// SPDX-License-Identifier: EPL-2.0

package halfperiod

import "errors"

// ErrDoubleRewind is the panic value of RewindOne when there is nothing to
// undo: two rewinds in a row, or a rewind before the first read.
var ErrDoubleRewind = errors.New("halfperiod: rewind without a preceding read")

// Provider is a cursor over half period frequencies in Hz.
type Provider interface {
	// Next returns the next half period. ok is false at the end of input.
	Next() (freq float64, ok bool)
	// RewindOne makes the following Next return the last value again. It
	// panics with ErrDoubleRewind unless the previous call was a
	// successful Next.
	RewindOne()
	// Position of the last half period read.
	Position() Position
}

// Collect reads up to max half periods from p. A max of zero or less reads
// until the end of input.
func Collect(p Provider, max int) []float64 {
	var values []float64
	for max <= 0 || len(values) < max {
		v, ok := p.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}

	return values
}
