// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/retrotape/utils"

// Resample converts b to rate using cubic interpolation. Upsampling a low
// rate recording gives the zero crossing detector a finer time grid;
// downsampling is not filtered against aliasing.
func Resample(b *Buffer, rate int) *Buffer {
	if rate <= 0 || rate == b.sampleRate || b.Frames() == 0 {
		return b
	}

	channels := b.channels
	frames := b.Frames()
	ratio := float64(b.sampleRate) / float64(rate)
	outFrames := int(float64(frames) / ratio)
	out := make([]float32, outFrames*channels)

	at := func(frame, c int) float32 {
		frame = min(max(frame, 0), frames-1)
		return b.data[frame*channels+c]
	}

	for i := range outFrames {
		x := float64(i) * ratio
		k := int(x)
		t := float32(x - float64(k))
		for c := range channels {
			out[i*channels+c] = utils.CubicInterpolate(at(k-1, c), at(k, c), at(k+1, c), at(k+2, c), t)
		}
	}

	return NewBuffer(rate, channels, out)
}
