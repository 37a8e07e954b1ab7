// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis recordings through
// github.com/jfreymuth/oggvorbis.
//
// Samples come out interleaved as float32 in [-1, 1]:
//
//	[L0, R0, L1, R1, ...]
//
// Reads shorter than one frame return nothing, so size dst in whole
// frames.
package vorbis
