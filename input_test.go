// SPDX-License-Identifier: EPL-2.0

package retrotape

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/ik5/retrotape/formats/wav"
)

func TestDefaultRegistry_Extensions(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	tests := map[string]string{
		".wav": "wav",
		"WAVE": "wav",
		".aif": "aiff",
		"aiff": "aiff",
		".mp3": "mp3",
		".ogg": "ogg",
		".oga": "ogg",
	}

	for ext, want := range tests {
		format, dec, ok := reg.ForExtension(ext)
		if !ok || format != want || dec == nil {
			t.Errorf("ForExtension(%q) = %q, %v, want %q", ext, format, ok, want)
		}
	}
}

// writeFixtures stores the same z1013 WAV recording plain, gzip and zstd
// compressed.
func writeFixtures(t *testing.T) map[string]string {
	t.Helper()

	dir := t.TempDir()
	plain := filepath.Join(dir, "tape.wav")

	f, err := os.Create(plain)
	if err != nil {
		t.Fatal(err)
	}
	rec := z1013Tape()
	if err := wav.Encode(f, rec.SampleRate(), 16, rec.Samples()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	f.Close()

	raw, err := os.ReadFile(plain)
	if err != nil {
		t.Fatal(err)
	}

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	zw.Write(raw)
	zw.Close()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	zst := enc.EncodeAll(raw, nil)
	enc.Close()

	paths := map[string]string{
		"plain": plain,
		"gzip":  filepath.Join(dir, "tape.wav.gz"),
		"zstd":  filepath.Join(dir, "tape.wav.zst"),
		// compression is found by its header, not the name
		"sniffed": filepath.Join(dir, "sniffed.wav"),
	}
	for name, data := range map[string][]byte{"gzip": gz.Bytes(), "zstd": zst, "sniffed": zst} {
		if err := os.WriteFile(paths[name], data, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return paths
}

func TestOpenFile_Compressed(t *testing.T) {
	t.Parallel()

	for name, path := range writeFixtures(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src, err := OpenFile(path, nil)
			if err != nil {
				t.Fatalf("OpenFile() error = %v", err)
			}
			if src.SampleRate() != 44100 || src.Channels() != 1 {
				t.Errorf("format = %d Hz, %d channels", src.SampleRate(), src.Channels())
			}

			d, err := NewDecoder(src, "z1013generic", DefaultConfig())
			if err != nil {
				t.Fatalf("NewDecoder() error = %v", err)
			}
			files, err := collect(t, d)
			if err != nil {
				t.Fatalf("All() error = %v", err)
			}
			if len(files) != 2 {
				t.Errorf("got %d files, want 2", len(files))
			}
			if err := d.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
	}
}

func TestOpenFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	flac := filepath.Join(dir, "tape.flac")
	garbage := filepath.Join(dir, "garbage.wav")
	for _, p := range []string{flac, garbage} {
		if err := os.WriteFile(p, []byte("not audio at all"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"unknown container", flac, ErrUnknownContainer},
		{"not a wav", garbage, wav.ErrNotWavFile},
		{"missing", filepath.Join(dir, "missing.wav"), os.ErrNotExist},
	}

	for _, tt := range tests {
		if _, err := OpenFile(tt.path, nil); !errors.Is(err, tt.want) {
			t.Errorf("%s: OpenFile() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}
