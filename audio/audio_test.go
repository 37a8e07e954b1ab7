// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"testing"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return newConstantSource(44100, 1, 100, 0), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_ForExtension(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	oggDecoder := &mockDecoder{name: "ogg"}

	registry.Register("wav", wavDecoder, "wave")
	registry.Register("ogg", oggDecoder, ".oga")

	tests := []struct {
		ext        string
		wantFormat string
		want       Decoder
		wantOK     bool
	}{
		{"wav", "wav", wavDecoder, true},
		{".WAV", "wav", wavDecoder, true},
		{"wave", "wav", wavDecoder, true},
		{".ogg", "ogg", oggDecoder, true},
		{"oga", "ogg", oggDecoder, true},
		{"flac", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			format, got, ok := registry.ForExtension(tt.ext)
			if ok != tt.wantOK {
				t.Fatalf("ForExtension(%q) ok = %v, want %v", tt.ext, ok, tt.wantOK)
			}
			if format != tt.wantFormat {
				t.Errorf("ForExtension(%q) format = %q, want %q", tt.ext, format, tt.wantFormat)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("ForExtension(%q) returned wrong decoder", tt.ext)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != second {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"ogg", "aiff", "wav"} {
		registry.Register(f, &mockDecoder{name: f})
	}

	want := []string{"aiff", "ogg", "wav"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder, "fmt")
			done <- true
		}()
	}

	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			_, _, _ = registry.ForExtension("fmt")
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok || got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func BenchmarkRegistry_ForExtension(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{}, "wave")

	b.ReportAllocs()

	for b.Loop() {
		_, _, _ = registry.ForExtension(".WAV")
	}
}
