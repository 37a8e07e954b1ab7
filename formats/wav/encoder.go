// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/retrotape/formats/internal/pcm"
	"github.com/ik5/retrotape/utils"
)

// Encode writes mono samples as a PCM WAV file of the given bit depth.
// Samples outside [-1, 1] are clamped.
func Encode(w io.WriteSeeker, sampleRate, bitDepth int, samples []float32) error {
	if !pcm.SupportedBitDepth(bitDepth) {
		return fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = utils.Float32ToInt(v, bitDepth)
		if bitDepth == 8 {
			data[i] += 128
		}
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing WAV file: %w", err)
	}

	return nil
}
