// SPDX-License-Identifier: EPL-2.0

// Package pc decodes IBM PC 5150 cassette records. A record starts with a
// leader, a sync bit and the sync byte 0x16, followed by 256 byte blocks
// that each carry a CRC. Cassette BASIC writes a header record in front of
// every program.
package pc
