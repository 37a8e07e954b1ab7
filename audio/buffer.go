// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer is a fully loaded recording. Decoding works on whole recordings,
// so inputs are read into a Buffer once and replayed from memory as often
// as needed.
type Buffer struct {
	sampleRate int
	channels   int
	data       []float32
}

// NewBuffer wraps interleaved samples. data is not copied.
func NewBuffer(sampleRate, channels int, data []float32) *Buffer {
	return &Buffer{
		sampleRate: sampleRate,
		channels:   channels,
		data:       data,
	}
}

// ReadAll drains src into a Buffer. src is not closed.
func ReadAll(src Source) (*Buffer, error) {
	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	// keep reads frame aligned
	bufSize -= bufSize % max(src.Channels(), 1)
	if bufSize == 0 {
		bufSize = src.Channels()
	}

	buf := make([]float32, bufSize)
	var data []float32

	for {
		n, err := src.ReadSamples(buf)
		data = append(data, buf[:n]...)

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return NewBuffer(src.SampleRate(), src.Channels(), data), nil
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return b.channels }

// Frames is the number of frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.channels == 0 {
		return 0
	}

	return len(b.data) / b.channels
}

// Samples returns the interleaved data. It must not be modified.
func (b *Buffer) Samples() []float32 { return b.data }

func (b *Buffer) Duration() time.Duration {
	if b.sampleRate == 0 {
		return 0
	}

	return time.Duration(float64(b.Frames()) / float64(b.sampleRate) * float64(time.Second))
}

// Source returns a new reader positioned at the start of the buffer.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.sampleRate }
func (s *bufferSource) Channels() int   { return s.buf.channels }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.data) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.data[s.pos:])
	s.pos += n
	if s.pos >= len(s.buf.data) {
		return n, io.EOF
	}

	return n, nil
}
