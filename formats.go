// SPDX-License-Identifier: EPL-2.0

package retrotape

import (
	"fmt"
	"slices"

	"github.com/ik5/retrotape/audio"
	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/decoding/apple2"
	"github.com/ik5/retrotape/decoding/electron"
	"github.com/ik5/retrotape/decoding/kc"
	"github.com/ik5/retrotape/decoding/lc80"
	"github.com/ik5/retrotape/decoding/pc"
	"github.com/ik5/retrotape/decoding/z1013"
	"github.com/ik5/retrotape/halfperiod"
)

// Format is one tape format the decoder understands.
type Format struct {
	Name    string
	Machine string
	// Prepare filters the samples before half period conversion. nil
	// leaves them untouched.
	Prepare func(src audio.Source, cfg Config) (audio.Source, error)
	New     func(p halfperiod.Provider, cfg Config, s decoding.Settings) decoding.FileDecoder
}

var formats = []Format{
	{
		Name:    kc.Format,
		Machine: "KC 85/1, KC 85/2-4, KC 87",
		Prepare: func(src audio.Source, cfg Config) (audio.Source, error) {
			if cfg.KC.LowPass == 0 {
				return src, nil
			}
			return audio.NewLowPass(src, cfg.KC.LowPass)
		},
		New: func(p halfperiod.Provider, cfg Config, s decoding.Settings) decoding.FileDecoder {
			return kc.NewDecoder(p, cfg.KC, s)
		},
	},
	{
		Name:    lc80.Format,
		Machine: "LC80",
		New: func(p halfperiod.Provider, cfg Config, s decoding.Settings) decoding.FileDecoder {
			return lc80.NewDecoder(p, cfg.LC80, s)
		},
	},
	{
		Name:    electron.Format,
		Machine: "Acorn Electron, BBC Micro",
		New: func(p halfperiod.Provider, cfg Config, s decoding.Settings) decoding.FileDecoder {
			return electron.NewDecoder(p, cfg.Electron, s)
		},
	},
	{
		Name:    apple2.Format,
		Machine: "Apple II",
		New: func(p halfperiod.Provider, cfg Config, s decoding.Settings) decoding.FileDecoder {
			return apple2.NewDecoder(p, cfg.Apple2, s)
		},
	},
	{
		Name:    pc.Format,
		Machine: "IBM PC, PCjr",
		New: func(p halfperiod.Provider, cfg Config, s decoding.Settings) decoding.FileDecoder {
			return pc.NewDecoder(p, cfg.PC, s)
		},
	},
	{
		Name:    z1013.Format,
		Machine: "Robotron Z1013",
		New: func(p halfperiod.Provider, cfg Config, s decoding.Settings) decoding.FileDecoder {
			return z1013.NewDecoder(p, cfg.Z1013, s)
		},
	},
}

// Formats lists the supported tape formats.
func Formats() []Format {
	return slices.Clone(formats)
}

// Lookup finds a format by name.
func Lookup(name string) (Format, error) {
	i := slices.IndexFunc(formats, func(f Format) bool { return f.Name == name })
	if i < 0 {
		return Format{}, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}

	return formats[i], nil
}
