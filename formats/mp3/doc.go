// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 recordings through github.com/hajimehoshi/go-mp3.
//
// The source is always two channels at the stream's own rate. Tape
// recordings are usually mono, so pick a channel or mix down before
// half-period conversion:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	left, err := audio.NewChannelSelector(src, 0)
//
// Lossy encoding smears edges; expect more checksum failures than with
// the same recording stored as WAV.
package mp3
