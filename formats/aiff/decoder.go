// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/retrotape/audio"
	"github.com/ik5/retrotape/formats/internal/pcm"
)

type Decoder struct{}

// Decode reads AIFF PCM at 8, 16, 24 or 32 bits. Inputs that cannot seek
// are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	depth := int(dec.BitDepth)
	if !pcm.SupportedBitDepth(depth) {
		return nil, fmt.Errorf("%d bits: %w", depth, ErrUnsupportedBitDepth)
	}

	return pcm.NewSource(dec, depth, false), nil
}
