// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"strings"
	"sync"
)

// Source is a stream of PCM samples.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels per frame (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1] and
	// returns the number of values written (not frames). The stream is
	// finished when n == 0 and err == io.EOF.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry holds container decoders by format key (e.g. "wav", "mp3") and
// the file extensions that select them.
type Registry struct {
	codecs     map[string]Decoder
	extensions map[string]string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:     make(map[string]Decoder),
		extensions: make(map[string]string),
		mtx:        &sync.Mutex{},
	}
}

// Register adds d under format. The format name itself is always accepted
// as an extension; extensions adds further aliases.
func (r *Registry) Register(format string, d Decoder, extensions ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
	r.extensions[normalizeExt(format)] = format
	for _, ext := range extensions {
		r.extensions[normalizeExt(ext)] = format
	}
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// ForExtension resolves a file extension like ".WAV" or "ogg" to its
// format key and decoder.
func (r *Registry) ForExtension(ext string) (string, Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	format, ok := r.extensions[normalizeExt(ext)]
	if !ok {
		return "", nil, false
	}

	return format, r.codecs[format], true
}

// Formats returns the registered format keys, sorted.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.codecs))
	for f := range r.codecs {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	return formats
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
