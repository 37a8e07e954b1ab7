// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF recordings through github.com/go-audio/aiff.
//
// Samples are big-endian signed PCM at 8, 16, 24 or 32 bits and come out
// as float32 in [-1, 1]:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // compressed or unusual AIFF-C data
//	}
package aiff
