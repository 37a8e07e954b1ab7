// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the go-audio container decoders to audio.Source.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/retrotape/utils"
)

// Reader is the part of the go-audio wav and aiff decoders a Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from a go-audio decoder.
type Source struct {
	dec       Reader
	format    *goaudio.Format
	bitDepth  int
	unsigned8 bool
	buf       *goaudio.IntBuffer
}

// NewSource wraps dec. unsigned8 selects the WAV convention of unsigned 8
// bit samples; otherwise 8 bit samples are two's complement as in AIFF.
func NewSource(dec Reader, bitDepth int, unsigned8 bool) *Source {
	return &Source{
		dec:       dec,
		format:    dec.Format(),
		bitDepth:  bitDepth,
		unsigned8: unsigned8 && bitDepth == 8,
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}

	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.format, SourceBitDepth: s.bitDepth}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("reading PCM data: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		// go-audio hands out 8 bit samples as raw unsigned bytes.
		switch {
		case s.unsigned8:
			v -= 128
		case s.bitDepth == 8:
			v = int(int8(uint8(v)))
		}
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	return n, nil
}

// ReadSeeker returns r itself when it can seek and otherwise buffers it.
// The go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}

// SupportedBitDepth reports whether a go-audio decoder delivers depth.
func SupportedBitDepth(depth int) bool {
	switch depth {
	case 8, 16, 24, 32:
		return true
	}

	return false
}
