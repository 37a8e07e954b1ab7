// SPDX-License-Identifier: EPL-2.0

// Package kc decodes KC 85 tapes into KC-TAPE files.
//
// A KC file is a sequence of 130 byte blocks: block number, 128 data bytes
// and an 8 bit checksum. Every block starts after its own pilot tone and
// every byte after a delimiter oscillation. The last block is numbered
// 0xff.
package kc
