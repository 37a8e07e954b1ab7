// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Skipper drops the first frames of a source. Reading fails with
// ErrSkipExceedsInput when nothing is left after the skipped part.
type Skipper struct {
	src       Source
	remaining uint64
	skipped   bool
	tmp       []float32
}

func NewSkipper(src Source, frames uint64) *Skipper {
	return &Skipper{
		src:       src,
		remaining: frames,
		skipped:   frames == 0,
	}
}

func (s *Skipper) SampleRate() int { return s.src.SampleRate() }
func (s *Skipper) Channels() int   { return s.src.Channels() }
func (s *Skipper) BufSize() int    { return s.src.BufSize() }

func (s *Skipper) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *Skipper) ReadSamples(dst []float32) (int, error) {
	if s.remaining > 0 {
		if err := s.skip(); err != nil {
			return 0, err
		}
	}

	n, err := s.src.ReadSamples(dst)
	if !s.skipped {
		if n == 0 && err == io.EOF {
			return 0, ErrSkipExceedsInput
		}
		if n > 0 {
			s.skipped = true
		}
	}

	return n, err
}

func (s *Skipper) skip() error {
	channels := uint64(s.src.Channels())
	if s.tmp == nil {
		s.tmp = make([]float32, 4096*channels)
	}

	for s.remaining > 0 {
		want := min(s.remaining*channels, uint64(len(s.tmp)))
		n, err := s.src.ReadSamples(s.tmp[:want])
		s.remaining -= min(uint64(n)/channels, s.remaining)
		if err == io.EOF {
			return ErrSkipExceedsInput
		}
		if err != nil {
			return fmt.Errorf("skipping input: %w", err)
		}
	}

	return nil
}
