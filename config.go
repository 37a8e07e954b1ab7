// SPDX-License-Identifier: EPL-2.0

package retrotape

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/decoding/apple2"
	"github.com/ik5/retrotape/decoding/electron"
	"github.com/ik5/retrotape/decoding/kc"
	"github.com/ik5/retrotape/decoding/lc80"
	"github.com/ik5/retrotape/decoding/pc"
	"github.com/ik5/retrotape/decoding/z1013"
)

// Config holds everything a decoding run can be tuned with. The zero
// value is not usable; start from DefaultConfig or LoadConfig.
type Config struct {
	OnError decoding.ErrorPolicy `yaml:"on_error"`
	// Skip drops this many frames at the start of the recording.
	Skip uint64 `yaml:"skip"`
	// Channel picks the input channel. nil selects the first one.
	Channel *int `yaml:"channel,omitempty"`
	// Hysteresis of the zero crossing detector, 0 for the default.
	Hysteresis float32 `yaml:"hysteresis"`
	// Resample converts the input to this rate first. 0 keeps it.
	Resample int `yaml:"resample"`
	// HighPass removes drift below this frequency. 0 disables it.
	HighPass float64 `yaml:"high_pass"`

	KC       kc.Params       `yaml:"kc"`
	LC80     lc80.Params     `yaml:"lc80"`
	Electron electron.Params `yaml:"electron"`
	Apple2   apple2.Params   `yaml:"apple2"`
	PC       pc.Params       `yaml:"pc"`
	Z1013    z1013.Params    `yaml:"z1013"`

	Logger   *slog.Logger           `yaml:"-"`
	Observer decoding.BlockObserver `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		OnError:  decoding.Ignore,
		KC:       kc.DefaultParams(),
		LC80:     lc80.DefaultParams(),
		Electron: electron.DefaultParams(),
		Apple2:   apple2.DefaultParams(),
		PC:       pc.DefaultParams(),
		Z1013:    z1013.DefaultParams(),
	}
}

// LoadConfig reads YAML from r over the defaults. Unknown keys are
// rejected. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Channel != nil && *c.Channel < 0 {
		errs = append(errs, fmt.Errorf("channel %d: %w", *c.Channel, ErrInvalidConfig))
	}
	if c.Hysteresis < 0 || c.Hysteresis >= 1 {
		errs = append(errs, fmt.Errorf("hysteresis %v: %w", c.Hysteresis, ErrInvalidConfig))
	}
	if c.Resample < 0 {
		errs = append(errs, fmt.Errorf("resample %d: %w", c.Resample, ErrInvalidConfig))
	}
	if c.HighPass < 0 {
		errs = append(errs, fmt.Errorf("high_pass %v: %w", c.HighPass, ErrInvalidConfig))
	}

	errs = append(errs,
		c.KC.Validate(),
		c.LC80.Validate(),
		c.Electron.Validate(),
		c.Apple2.Validate(),
		c.PC.Validate(),
		c.Z1013.Validate(),
	)

	return errors.Join(errs...)
}

// Settings are the parts of c every machine decoder sees.
func (c Config) Settings() decoding.Settings {
	return decoding.Settings{
		OnError:  c.OnError,
		Skip:     c.Skip,
		Channel:  c.Channel,
		Logger:   c.Logger,
		Observer: c.Observer,
	}
}
