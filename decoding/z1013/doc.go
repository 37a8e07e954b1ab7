// SPDX-License-Identifier: EPL-2.0

// Package z1013 decodes Robotron Z 1013 tapes. Blocks of 32 data bytes
// follow each other after short sync tones; a longer pause separates
// files.
package z1013
