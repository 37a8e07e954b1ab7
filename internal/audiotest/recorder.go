// SPDX-License-Identifier: EPL-2.0

package audiotest

import "time"

const (
	levelHigh float32 = 0.5
	levelLow  float32 = -0.5
)

// Recorder synthesizes square wave tape signals. Every half oscillation
// lasts floor(rate/f/2) samples and the level alternates between +0.5 and
// -0.5, starting high.
type Recorder struct {
	sampleRate int
	samples    []float32
	low        bool
}

func NewRecorder(sampleRate int) *Recorder {
	return &Recorder{sampleRate: sampleRate}
}

func (r *Recorder) SampleRate() int { return r.sampleRate }

// HalfOscillation appends one half period at frequency f.
func (r *Recorder) HalfOscillation(f float64) {
	n := int(float64(r.sampleRate) / f / 2)
	level := levelHigh
	if r.low {
		level = levelLow
	}
	for range n {
		r.samples = append(r.samples, level)
	}
	r.low = !r.low
}

// Oscillations appends n full periods at frequency f.
func (r *Recorder) Oscillations(f float64, n int) {
	for range 2 * n {
		r.HalfOscillation(f)
	}
}

// Carrier appends whole periods at f for at least d.
func (r *Recorder) Carrier(f float64, d time.Duration) {
	r.Oscillations(f, int(f*d.Seconds()+0.5))
}

// Silence appends n zero samples.
func (r *Recorder) Silence(n int) {
	for range n {
		r.samples = append(r.samples, 0)
	}
}

func (r *Recorder) SilenceFor(d time.Duration) {
	r.Silence(int(d.Seconds() * float64(r.sampleRate)))
}

// Len is the number of samples recorded so far.
func (r *Recorder) Len() int { return len(r.samples) }

// Samples returns the recording. It must not be modified.
func (r *Recorder) Samples() []float32 { return r.samples }

// Source replays the recording as a mono source.
func (r *Recorder) Source() *MockSource {
	return NewSamplesSource(r.sampleRate, r.samples)
}
