// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Filter is a moving average over a window of sampleRate/frequency frames,
// applied per channel. As a low pass it outputs the average; as a high pass
// it outputs the sample minus the average, which removes DC offset and slow
// drift from worn tapes.
type Filter struct {
	src      Source
	highPass bool
	size     int
	channels int

	// ring[c*size+i] holds the window of channel c
	ring   []float32
	sums   []float64
	next   int
	filled int
}

// NewLowPass smooths src with a moving average sized for frequency Hz.
func NewLowPass(src Source, frequency float64) (*Filter, error) {
	return newFilter(src, frequency, false)
}

// NewHighPass subtracts the moving average sized for frequency Hz from src.
func NewHighPass(src Source, frequency float64) (*Filter, error) {
	return newFilter(src, frequency, true)
}

func newFilter(src Source, frequency float64, highPass bool) (*Filter, error) {
	if frequency <= 0 {
		return nil, fmt.Errorf("%v Hz: %w", frequency, ErrInvalidFrequency)
	}

	size := max(int(float64(src.SampleRate())/frequency), 1)
	channels := src.Channels()

	return &Filter{
		src:      src,
		highPass: highPass,
		size:     size,
		channels: channels,
		ring:     make([]float32, size*channels),
		sums:     make([]float64, channels),
	}, nil
}

// WindowSize is the number of frames averaged.
func (f *Filter) WindowSize() int { return f.size }

func (f *Filter) SampleRate() int { return f.src.SampleRate() }
func (f *Filter) Channels() int   { return f.channels }
func (f *Filter) BufSize() int    { return f.src.BufSize() }

func (f *Filter) Close() error {
	if err := f.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (f *Filter) ReadSamples(dst []float32) (int, error) {
	if len(dst)%f.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	n, err := f.src.ReadSamples(dst)

	for i := 0; i+f.channels <= n; i += f.channels {
		if f.filled < f.size {
			f.filled++
		}
		for c := range f.channels {
			slot := c*f.size + f.next
			v := dst[i+c]
			f.sums[c] += float64(v) - float64(f.ring[slot])
			f.ring[slot] = v

			avg := float32(f.sums[c] / float64(f.filled))
			if f.highPass {
				dst[i+c] = v - avg
			} else {
				dst[i+c] = avg
			}
		}
		f.next = (f.next + 1) % f.size
	}

	return n, err
}
