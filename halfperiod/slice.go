// SPDX-License-Identifier: EPL-2.0

package halfperiod

// Slice is a Provider over recorded half periods. Its position is the
// index of the next value.
type Slice struct {
	values     []float64
	sampleRate int
	cursor     int
	canRewind  bool
}

func NewSlice(values []float64, sampleRate int) *Slice {
	return &Slice{values: values, sampleRate: sampleRate}
}

func (s *Slice) Next() (float64, bool) {
	if s.cursor >= len(s.values) {
		return 0, false
	}

	v := s.values[s.cursor]
	s.cursor++
	s.canRewind = true

	return v, true
}

func (s *Slice) RewindOne() {
	if !s.canRewind {
		panic(ErrDoubleRewind)
	}

	s.cursor--
	s.canRewind = false
}

func (s *Slice) Position() Position {
	return NewPosition(uint64(s.cursor), s.sampleRate)
}
