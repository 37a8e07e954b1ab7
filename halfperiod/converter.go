// SPDX-License-Identifier: EPL-2.0

package halfperiod

import (
	"fmt"
	"io"

	"github.com/ik5/retrotape/audio"
)

// DefaultHysteresis is the distance from zero a sample must cross to flip
// the polarity. 0.0003 equals 10 units of a 16 bit recording.
const DefaultHysteresis float32 = 0.0003

// Converter is a streaming Provider over an audio source. Only the first
// channel of interleaved input is used.
//
// A sample continues the current half period while it stays on its side
// of the hysteresis band. The first sample only sets the initial polarity
// and the trailing half period, which has no end, is dropped.
type Converter struct {
	src        audio.Source
	threshold  float32
	sampleRate int
	channels   int

	buf   []float32
	pos   int
	n     int
	eof   bool
	err   error
	index uint64 // samples consumed

	started  bool
	positive bool
	run      uint64

	last      float64
	lastPos   Position
	prevPos   Position
	rewound   bool
	canRewind bool
}

// NewConverter reads half periods from src. A threshold of zero or less
// selects DefaultHysteresis.
func NewConverter(src audio.Source, threshold float32) *Converter {
	if threshold <= 0 {
		threshold = DefaultHysteresis
	}

	channels := max(src.Channels(), 1)
	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	return &Converter{
		src:        src,
		threshold:  threshold,
		sampleRate: src.SampleRate(),
		channels:   channels,
		buf:        make([]float32, size),
	}
}

// SampleRate of the underlying source.
func (c *Converter) SampleRate() int { return c.sampleRate }

// Err returns the first read error of the source other than io.EOF.
func (c *Converter) Err() error { return c.err }

func (c *Converter) Next() (float64, bool) {
	if c.rewound {
		c.rewound = false
		c.canRewind = true
		return c.last, true
	}

	length, end, ok := c.nextRun()
	if !ok {
		return 0, false
	}

	c.prevPos = c.lastPos
	c.last = float64(c.sampleRate) / float64(2*length)
	c.lastPos = NewPosition(end, c.sampleRate)
	c.canRewind = true

	return c.last, true
}

func (c *Converter) RewindOne() {
	if !c.canRewind {
		panic(ErrDoubleRewind)
	}

	c.rewound = true
	c.canRewind = false
}

func (c *Converter) Position() Position {
	if c.rewound {
		return c.prevPos
	}

	return c.lastPos
}

// nextRun returns the length of the next complete half period and the
// index of the sample that ended it.
func (c *Converter) nextRun() (uint64, uint64, bool) {
	if !c.started {
		v, ok := c.sample()
		if !ok {
			return 0, 0, false
		}
		c.positive = v >= 0
		c.run = 1
		c.started = true
	}

	for {
		v, ok := c.sample()
		if !ok {
			return 0, 0, false
		}

		if (c.positive && v > -c.threshold) || (!c.positive && v < c.threshold) {
			c.run++
			continue
		}

		length := c.run
		c.positive = !c.positive
		c.run = 1

		return length, c.index - 1, true
	}
}

func (c *Converter) sample() (float32, bool) {
	for c.pos >= c.n {
		if c.eof {
			return 0, false
		}

		n, err := c.src.ReadSamples(c.buf)
		c.n = n - n%c.channels
		c.pos = 0

		if err == io.EOF {
			c.eof = true
		} else if err != nil {
			c.err = fmt.Errorf("reading samples: %w", err)
			c.eof = true
		}
	}

	v := c.buf[c.pos]
	c.pos += c.channels
	c.index++

	return v, true
}
