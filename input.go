// SPDX-License-Identifier: EPL-2.0

package retrotape

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/ik5/retrotape/audio"
	"github.com/ik5/retrotape/formats/aiff"
	"github.com/ik5/retrotape/formats/mp3"
	"github.com/ik5/retrotape/formats/vorbis"
	"github.com/ik5/retrotape/formats/wav"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// DefaultRegistry knows every container this module can read.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{}, "wave")
	reg.Register("aiff", aiff.Decoder{}, "aif", "aifc")
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{}, "oga")

	return reg
}

// OpenFile decodes the recording at path, picking the container by
// extension. Recordings compressed with gzip or zstd are unpacked on the
// fly; "tape.wav.gz" is read as WAV. A nil reg means DefaultRegistry.
func OpenFile(path string, reg *audio.Registry) (audio.Source, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := Open(f, path, reg)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return src, nil
}

// Open decodes r. name only supplies the extensions. Closing the source
// closes r when it is an io.Closer.
func Open(r io.Reader, name string, reg *audio.Registry) (audio.Source, error) {
	name = strings.TrimSuffix(strings.TrimSuffix(strings.ToLower(name), ".gz"), ".zst")

	_, dec, ok := reg.ForExtension(filepath.Ext(name))
	if !ok {
		return nil, fmt.Errorf("%q: %w", filepath.Ext(name), ErrUnknownContainer)
	}

	closers := []io.Closer{}
	if c, ok := r.(io.Closer); ok {
		closers = append(closers, c)
	}

	plain, closer, err := decompress(r)
	if err != nil {
		closeAll(closers)
		return nil, err
	}
	if closer != nil {
		closers = append([]io.Closer{closer}, closers...)
	}

	src, err := dec.Decode(plain)
	if err != nil {
		closeAll(closers)
		return nil, err
	}

	return &fileSource{Source: src, closers: closers}, nil
}

// decompress sniffs r for a compression header. The returned closer is
// nil for plain input.
func decompress(r io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return zr, zr, nil

	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		return zr, zr.IOReadCloser(), nil
	}

	return br, nil, nil
}

func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

type fileSource struct {
	audio.Source
	closers []io.Closer
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := closeAll(s.closers); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
