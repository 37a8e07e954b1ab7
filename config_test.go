// SPDX-License-Identifier: EPL-2.0

package retrotape

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/decoding/kc"
	"github.com/ik5/retrotape/decoding/z1013"
)

func TestDefaultConfig_Valid(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	doc := `
on_error: stop
skip: 100
channel: 1
kc:
  one: [800, 1300]
  low_pass: 0
z1013:
  max_block_gap: 2.5
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.OnError != decoding.Stop || cfg.Skip != 100 {
		t.Errorf("top level = %v, %d, want stop, 100", cfg.OnError, cfg.Skip)
	}
	if cfg.Channel == nil || *cfg.Channel != 1 {
		t.Errorf("Channel = %v, want 1", cfg.Channel)
	}
	if cfg.KC.One != (decoding.FrequencyRange{Low: 800, High: 1300}) || cfg.KC.LowPass != 0 {
		t.Errorf("KC = %+v", cfg.KC)
	}
	// untouched keys keep their defaults
	if cfg.KC.Zero != kc.DefaultParams().Zero {
		t.Errorf("KC.Zero = %v, want %v", cfg.KC.Zero, kc.DefaultParams().Zero)
	}
	if cfg.Z1013.MaxBlockGap != 2.5 || cfg.Z1013.One != z1013.DefaultParams().One {
		t.Errorf("Z1013 = %+v", cfg.Z1013)
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.KC != kc.DefaultParams() || cfg.OnError != decoding.Ignore {
		t.Errorf("LoadConfig(empty) = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"bad policy", "on_error: maybe", decoding.ErrInvalidPolicy},
		{"negative channel", "channel: -1", ErrInvalidConfig},
		{"hysteresis", "hysteresis: 2", ErrInvalidConfig},
		{"inverted band", "kc:\n  one: [1300, 800]", decoding.ErrInvalidRange},
		{"params", "z1013:\n  max_block_gap: 0", z1013.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := LoadConfig(strings.NewReader(tt.doc)); !errors.Is(err, tt.want) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(strings.NewReader("kc:\n  speed: 3\n"))
	if err == nil || !strings.Contains(err.Error(), "speed") {
		t.Errorf("LoadConfig() error = %v, want unknown field speed", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "retrotape.yaml")
	if err := os.WriteFile(path, []byte("resample: 48000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if cfg.Resample != 48000 {
		t.Errorf("Resample = %d, want 48000", cfg.Resample)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfigFile(missing) error = %v, want %v", err, os.ErrNotExist)
	}
}

func TestConfig_Settings(t *testing.T) {
	t.Parallel()

	channel := 1
	cfg := DefaultConfig()
	cfg.OnError = decoding.SkipFile
	cfg.Skip = 7
	cfg.Channel = &channel

	s := cfg.Settings()
	if s.OnError != decoding.SkipFile || s.Skip != 7 || s.Channel != &channel {
		t.Errorf("Settings() = %+v", s)
	}
}
