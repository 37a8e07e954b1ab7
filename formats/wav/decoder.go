// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/retrotape/audio"
	"github.com/ik5/retrotape/formats/internal/pcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xfffe
)

type Decoder struct{}

// Decode reads PCM WAV at 8, 16, 24 or 32 bits. Inputs that cannot seek
// are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("format tag %d: %w", dec.WavAudioFormat, ErrNotPCM)
	}

	depth := int(dec.BitDepth)
	if !pcm.SupportedBitDepth(depth) {
		return nil, fmt.Errorf("%d bits: %w", depth, ErrUnsupportedBitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}

	return pcm.NewSource(dec, depth, true), nil
}
