// SPDX-License-Identifier: EPL-2.0

package retrotape

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ik5/retrotape/audio"
	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/decoding/kc"
	"github.com/ik5/retrotape/formats/wav"
	"github.com/ik5/retrotape/internal/audiotest"
)

// z1013Tape holds two files: 64 bytes in two blocks, then 32 bytes.
func z1013Tape() *audiotest.Recorder {
	rec := audiotest.NewRecorder(44100)
	audiotest.EncodeZ1013(rec,
		audiotest.Z1013Block(0x0100, bytes.Repeat([]byte{0xa5}, 32)),
		audiotest.Z1013Block(0x0120, bytes.Repeat([]byte{0x3c}, 32)))
	rec.SilenceFor(1500 * time.Millisecond)
	audiotest.EncodeZ1013(rec, audiotest.Z1013Block(0x0000, []byte("second")))

	return rec
}

// kcTape holds one KC file named GAME_1.
func kcTape(rate int) (*audiotest.Recorder, []byte) {
	first := append([]byte("GAME 1  COM"), bytes.Repeat([]byte{0x5a}, 100)...)

	rec := audiotest.NewRecorder(rate)
	audiotest.EncodeKC(rec, 800, audiotest.KCBlock(0x01, first))
	audiotest.EncodeKC(rec, 200, audiotest.KCBlock(0xff, []byte("end")))

	want := []byte(kc.TapeHeader)
	want = append(want, audiotest.KCBlock(0x01, first)[:129]...)
	want = append(want, audiotest.KCBlock(0xff, []byte("end"))[:129]...)

	return rec, want
}

// stereo puts samples on the left channel and silence on the right.
func stereo(rec *audiotest.Recorder) *audiotest.MockSource {
	samples := rec.Samples()
	return audiotest.NewMockSource(rec.SampleRate(), 2, len(samples), func(frame, channel int) float32 {
		if channel == 0 {
			return samples[frame]
		}
		return 0
	})
}

func collect(t *testing.T, d *Decoder) ([]decoding.OutputFile, error) {
	t.Helper()

	var files []decoding.OutputFile
	for f, err := range d.All() {
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}

	return files, nil
}

func TestDecoder_Z1013(t *testing.T) {
	t.Parallel()

	d, err := NewDecoder(z1013Tape().Source(), "z1013generic", DefaultConfig())
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	defer d.Close()

	files, err := collect(t, d)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if len(files[0].Data) != 64 || len(files[1].Data) != 32 {
		t.Errorf("file sizes = %d, %d, want 64, 32", len(files[0].Data), len(files[1].Data))
	}

	if _, err := d.Next(); err != io.EOF {
		t.Errorf("Next() after the end = %v, want io.EOF", err)
	}
}

func TestDecoder_Channels(t *testing.T) {
	t.Parallel()

	one := 1
	tests := []struct {
		name    string
		channel *int
		files   int
		logged  bool
	}{
		{"auto", nil, 2, true},
		{"right", &one, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			cfg := DefaultConfig()
			cfg.Channel = tt.channel
			cfg.Logger = slog.New(slog.NewTextHandler(&logs, nil))

			d, err := NewDecoder(stereo(z1013Tape()), "z1013generic", cfg)
			if err != nil {
				t.Fatalf("NewDecoder() error = %v", err)
			}

			files, err := collect(t, d)
			if err != nil {
				t.Fatalf("All() error = %v", err)
			}
			if len(files) != tt.files {
				t.Errorf("got %d files, want %d", len(files), tt.files)
			}
			if got := strings.Contains(logs.String(), "several channels"); got != tt.logged {
				t.Errorf("channel notice logged = %v, want %v\n%s", got, tt.logged, logs.String())
			}
		})
	}
}

func TestNewDecoder_Errors(t *testing.T) {
	t.Parallel()

	two := 2
	outOfRange := DefaultConfig()
	outOfRange.Channel = &two

	invalid := DefaultConfig()
	invalid.Resample = -1

	tests := []struct {
		name   string
		format string
		cfg    Config
		want   error
	}{
		{"unknown format", "zx81", DefaultConfig(), ErrUnknownFormat},
		{"channel out of range", "kctap", outOfRange, audio.ErrChannelOutOfRange},
		{"invalid config", "kctap", invalid, ErrInvalidConfig},
	}

	for _, tt := range tests {
		if _, err := NewDecoder(stereo(z1013Tape()), tt.format, tt.cfg); !errors.Is(err, tt.want) {
			t.Errorf("%s: NewDecoder() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestDecoder_SourceErrors(t *testing.T) {
	t.Parallel()

	t.Run("skip past the end", func(t *testing.T) {
		t.Parallel()

		rec := z1013Tape()
		cfg := DefaultConfig()
		cfg.Skip = uint64(rec.Len() + 1)

		d, err := NewDecoder(rec.Source(), "z1013generic", cfg)
		if err != nil {
			t.Fatalf("NewDecoder() error = %v", err)
		}
		if _, err := d.Next(); !errors.Is(err, audio.ErrSkipExceedsInput) {
			t.Errorf("Next() error = %v, want %v", err, audio.ErrSkipExceedsInput)
		}
	})

	t.Run("read failure", func(t *testing.T) {
		t.Parallel()

		rec := z1013Tape()
		src := rec.Source()
		src.FailAfter = rec.Len() / 2

		d, err := NewDecoder(src, "z1013generic", DefaultConfig())
		if err != nil {
			t.Fatalf("NewDecoder() error = %v", err)
		}
		files, err := collect(t, d)
		if !errors.Is(err, audiotest.ErrMockRead) {
			t.Errorf("All() error = %v, want %v", err, audiotest.ErrMockRead)
		}
		if len(files) > 1 {
			t.Errorf("got %d files before the failure", len(files))
		}
		// the error is sticky
		if _, err := d.Next(); !errors.Is(err, audiotest.ErrMockRead) {
			t.Errorf("Next() error = %v, want %v", err, audiotest.ErrMockRead)
		}
	})
}

func TestDecoder_AllBreak(t *testing.T) {
	t.Parallel()

	d, err := NewDecoder(z1013Tape().Source(), "z1013generic", DefaultConfig())
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	for f, err := range d.All() {
		if err != nil || len(f.Data) != 64 {
			t.Fatalf("first file = %d bytes, %v", len(f.Data), err)
		}
		break
	}

	f, err := d.Next()
	if err != nil || len(f.Data) != 32 {
		t.Errorf("Next() after break = %d bytes, %v, want the second file", len(f.Data), err)
	}
}

func TestDecoder_StopPolicy(t *testing.T) {
	t.Parallel()

	bad := audiotest.Z1013Block(0x0100, []byte("broken"))
	bad[34] ^= 0x01
	rec := audiotest.NewRecorder(44100)
	audiotest.EncodeZ1013(rec, bad)

	cfg := DefaultConfig()
	cfg.OnError = decoding.Stop

	d, err := NewDecoder(rec.Source(), "z1013generic", cfg)
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	_, err = d.Next()
	var derr *decoding.DecodingError
	if !errors.As(err, &derr) || !errors.Is(err, decoding.ErrStopped) {
		t.Errorf("Next() error = %v, want a stopping DecodingError", err)
	}
}

func TestDecoder_KCResampled(t *testing.T) {
	t.Parallel()

	rec, want := kcTape(22050)
	cfg := DefaultConfig()
	cfg.Resample = 44100

	d, err := NewDecoder(rec.Source(), "kctap", cfg)
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	files, err := collect(t, d)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(files) != 1 || !bytes.Equal(files[0].Data, want) {
		t.Fatalf("got %d files, want one KC-TAPE image", len(files))
	}
	if files[0].ProposedName != "GAME_1" {
		t.Errorf("ProposedName = %q, want GAME_1", files[0].ProposedName)
	}
}

func TestDecodeFile_WAV(t *testing.T) {
	t.Parallel()

	rec, want := kcTape(44100)
	path := filepath.Join(t.TempDir(), "tape.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := wav.Encode(f, rec.SampleRate(), 16, rec.Samples()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	files, err := DecodeFile(path, "kctap", DefaultConfig())
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if len(files) != 1 || !bytes.Equal(files[0].Data, want) || files[0].Status != decoding.Success {
		t.Errorf("DecodeFile() = %d files, want one complete KC-TAPE image", len(files))
	}

	if _, err := DecodeFile(path, "zx81", DefaultConfig()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("DecodeFile(zx81) error = %v, want %v", err, ErrUnknownFormat)
	}
}

func TestDecoder_Close(t *testing.T) {
	t.Parallel()

	src := z1013Tape().Source()
	d, err := NewDecoder(src, "z1013generic", DefaultConfig())
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	if err := d.Close(); err != nil || !src.Closed {
		t.Errorf("Close() = %v, source closed = %v", err, src.Closed)
	}
}

func BenchmarkDecoder_Z1013(b *testing.B) {
	samples := z1013Tape().Samples()
	b.ReportAllocs()

	for b.Loop() {
		d, err := NewDecoder(audiotest.NewSamplesSource(44100, samples), "z1013generic", DefaultConfig())
		if err != nil {
			b.Fatal(err)
		}
		for _, err := range d.All() {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func TestPrepareSource(t *testing.T) {
	t.Parallel()

	rec := z1013Tape()
	cfg := DefaultConfig()
	cfg.Skip = 100

	src, err := PrepareSource(stereo(rec), "kctap", cfg)
	if err != nil {
		t.Fatalf("PrepareSource() error = %v", err)
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Frames() != rec.Len()-100 {
		t.Errorf("Frames() = %d, want %d", buf.Frames(), rec.Len()-100)
	}
}
