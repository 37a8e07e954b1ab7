// SPDX-License-Identifier: EPL-2.0

// Package lc80 decodes LC 80 tapes. A recording holds a header with file
// number and address range, a mid sync, and the data bytes. Bits are
// trains of short and long oscillations.
package lc80
