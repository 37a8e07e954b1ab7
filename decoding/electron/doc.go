// SPDX-License-Identifier: EPL-2.0

// Package electron decodes Acorn Electron tapes. Blocks carry the file
// name, load and execution addresses and a block number, each protected
// by a CRC. The carrier frequency is measured from the pilot tone, so
// recordings played at the wrong speed still decode.
package electron
