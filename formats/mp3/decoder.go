// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/retrotape/audio"
	"github.com/ik5/retrotape/utils"
)

// mp3Reader is the part of gomp3.Decoder the source needs
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// odd byte left over from a short read
	pending []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 2 }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

// ReadSamples converts the 16 bit little-endian stereo stream of go-mp3.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * 2
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	buf := s.buf[:want]

	carried := copy(buf, s.pending)
	s.pending = s.pending[:0]

	n, err := s.dec.Read(buf[carried:])
	n += carried
	if n%2 == 1 {
		s.pending = append(s.pending, buf[n-1])
		n--
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(buf[2*i:]))
		dst[i] = utils.IntToFloat32(int(v), 16)
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}

	return samples, err
}

type Decoder struct{}

// Decode always yields stereo; go-mp3 duplicates mono streams.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
