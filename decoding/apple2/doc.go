// SPDX-License-Identifier: EPL-2.0

// Package apple2 decodes Apple II tapes. Every file is one record after a
// pilot tone, ending with an XOR checksum.
package apple2
