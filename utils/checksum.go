// SPDX-License-Identifier: EPL-2.0

package utils

import "github.com/sigurn/crc16"

// Sum8 adds all bytes, wrapping around at 8 bits.
func Sum8(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}

	return sum
}

// Xor8 xors all bytes onto seed.
func Xor8(data []byte, seed byte) byte {
	sum := seed
	for _, b := range data {
		sum ^= b
	}

	return sum
}

// Sum16LE adds little endian 16 bit words, wrapping around at 16 bits.
// A trailing odd byte is added as the low byte of a final word.
func Sum16LE(data []byte) uint16 {
	var sum uint16
	for i := 0; i < len(data); i += 2 {
		word := uint16(data[i])
		if i+1 < len(data) {
			word |= uint16(data[i+1]) << 8
		}
		sum += word
	}

	return sum
}

var (
	ccittTable  = crc16.MakeTable(crc16.CRC16_GENIBUS)
	xmodemTable = crc16.MakeTable(crc16.CRC16_XMODEM)
)

// CRC16CCITT is the CRC used by IBM PC 5150 (and Amstrad CPC) tape routines:
// polynomial 0x1021, initial value 0xffff, MSB first, result inverted.
func CRC16CCITT(data []byte) uint16 {
	return crc16.Checksum(data, ccittTable)
}

// CRC16XModem is the CRC used by Acorn tape blocks:
// polynomial 0x1021, initial value 0, no inversion.
func CRC16XModem(data []byte) uint16 {
	return crc16.Checksum(data, xmodemTable)
}
