// SPDX-License-Identifier: EPL-2.0

package pc

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/halfperiod"
	"github.com/ik5/retrotape/internal/audiotest"
)

func decodeAll(t *testing.T, samples []float32, s decoding.Settings) ([]decoding.OutputFile, error) {
	t.Helper()

	src := audiotest.NewSamplesSource(44100, samples)
	d := NewDecoder(halfperiod.NewConverter(src, 0), DefaultParams(), s)

	var files []decoding.OutputFile
	for {
		f, err := d.Next()
		if err == io.EOF {
			return files, nil
		}
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}
}

func TestParseHeader(t *testing.T) {
	t.Parallel()

	h, ok := ParseHeader(audiotest.PCBasicHeader("HELLO", 0x81, 300, 0x0060, 0x081e))
	if !ok {
		t.Fatal("ParseHeader() ok = false, want true")
	}

	want := Header{Name: "HELLO", Flags: 0x81, Length: 300, Segment: 0x0060, Offset: 0x081e}
	if h != want {
		t.Errorf("ParseHeader() = %+v, want %+v", h, want)
	}
	if got := strings.Join(h.FlagNames(), ","); got != "Memory area,Tokenized BASIC" {
		t.Errorf("FlagNames() = %q", got)
	}

	if _, ok := ParseHeader(make([]byte, 256)); ok {
		t.Error("ParseHeader(zeros) ok = true, want false")
	}
	if _, ok := ParseHeader([]byte{0xa5, 'A'}); ok {
		t.Error("ParseHeader(short) ok = true, want false")
	}
}

func TestIsTrailer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		data []byte
		want bool
	}{
		{nil, true},
		{[]byte{0xff, 0xff, 0xff}, true},
		{[]byte{0xff, 0xff, 0xff, 0xff}, true},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff}, false},
		{[]byte{0xff, 0x00}, false},
	}

	for _, tt := range tests {
		if got := isTrailer(tt.data); got != tt.want {
			t.Errorf("isTrailer(% x) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestDecoder_BasicProgram(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := decoding.Settings{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	program := bytes.Repeat([]byte("10 PRINT 1\r"), 30)

	rec := audiotest.NewRecorder(44100)
	audiotest.EncodePC(rec, audiotest.PCBasicHeader("HELLO", 0x80, uint16(len(program)), 0x0060, 0x081e))
	audiotest.EncodePC(rec, program)
	audiotest.EncodePC(rec, []byte("raw"))

	files, err := decodeAll(t, rec.Samples(), s)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}

	wantNames := []string{"HELLO_header", "HELLO", ""}
	wantSizes := []int{256, 512, 256}
	for i, f := range files {
		if f.ProposedName != wantNames[i] || len(f.Data) != wantSizes[i] || f.Status != decoding.Success {
			t.Errorf("file %d = %q %v with %d bytes, want %q with %d", i, f.ProposedName, f.Status, len(f.Data), wantNames[i], wantSizes[i])
		}
	}
	if !bytes.HasPrefix(files[1].Data, program) {
		t.Error("program data differs")
	}
	if !strings.Contains(buf.String(), "Tokenized BASIC") {
		t.Errorf("log = %q, want BASIC header", buf.String())
	}
}

func TestDecoder_TruncatedRecord(t *testing.T) {
	t.Parallel()

	rec := audiotest.NewRecorder(44100)
	audiotest.EncodePC(rec, make([]byte, 256))

	// leader, sync bit, sync byte and ten zero bytes
	const (
		oneBit  = 44
		zeroBit = 22
	)
	cut := 256*8*oneBit + zeroBit + 5*zeroBit + 3*oneBit + 10*8*zeroBit + zeroBit/2

	files, err := decodeAll(t, rec.Samples()[:cut], decoding.Settings{})
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Status != decoding.Error || !bytes.Equal(files[0].Data, make([]byte, 10)) {
		t.Errorf("got %v with %d bytes, want error with 10", files[0].Status, len(files[0].Data))
	}

	files, err = decodeAll(t, rec.Samples()[:cut], decoding.Settings{OnError: decoding.Stop})
	if err == nil || len(files) != 0 {
		t.Errorf("stop: got %d files, error %v", len(files), err)
	}
}

func TestNewFileBoundary(t *testing.T) {
	t.Parallel()

	boundary := NewFileBoundary()
	prev := decoding.Block{AfterSync: true}
	if boundary(&prev, decoding.Block{}) {
		t.Error("boundary(follow up block) = true, want false")
	}
	if !boundary(&prev, decoding.Block{AfterSync: true}) {
		t.Error("boundary(block after sync) = false, want true")
	}
}

func TestDefaultParams_Bands(t *testing.T) {
	t.Parallel()

	p := DefaultParams()

	tests := []struct {
		name string
		band decoding.FrequencyRange
		v    float64
		want bool
	}{
		{"one low edge", p.One, 800, true},
		{"one high edge", p.One, 1200, false},
		{"zero low edge", p.Zero, 1600, true},
		{"zero high edge", p.Zero, 2400, false},
	}

	for _, tt := range tests {
		if got := tt.band.Contains(tt.v); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tt.name, tt.v, got, tt.want)
		}
	}
}
