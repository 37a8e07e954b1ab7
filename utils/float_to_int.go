// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt converts a normalized sample to signed PCM of the given bit
// depth, clamping values outside of [-1, 1].
func Float32ToInt(x float32, bitDepth int) int {
	top := int64(1) << (bitDepth - 1)
	switch {
	case x >= 1:
		return int(top - 1)
	case x <= -1:
		return int(-top)
	}

	return int(float64(x) * float64(top-1))
}

// IntToFloat32 normalizes a signed PCM value of the given bit depth to [-1, 1).
// Unknown bit depths are treated as 16 bit.
func IntToFloat32(v int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32(v) / 128.0
	case 24:
		return float32(v) / 8388608.0
	case 32:
		return float32(float64(v) / 2147483648.0)
	default:
		return float32(v) / 32768.0
	}
}
