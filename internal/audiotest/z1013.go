// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"

	"github.com/ik5/retrotape/utils"
)

// Z 1013 signal frequencies.
const (
	Z1013One  = 1280.0
	Z1013Zero = 2560.0
	Z1013Sync = 640.0
)

// Z1013Block builds a 36 byte block: number, 32 data bytes, checksum.
func Z1013Block(number uint16, data []byte) []byte {
	raw := make([]byte, 36)
	binary.LittleEndian.PutUint16(raw, number)
	copy(raw[2:34], data)
	binary.LittleEndian.PutUint16(raw[34:], utils.Sum16LE(raw[:34]))

	return raw
}

// EncodeZ1013 records blocks back to back. The first block gets a long
// leader, the others a short one.
func EncodeZ1013(r *Recorder, blocks ...[]byte) {
	for i, raw := range blocks {
		if i == 0 {
			r.Oscillations(Z1013Sync, 2000)
		} else {
			r.Oscillations(Z1013Sync, 7)
		}
		r.Oscillations(Z1013One, 1)
		for _, b := range raw {
			for bit := range 8 {
				if b&(1<<bit) != 0 {
					r.HalfOscillation(Z1013One)
				} else {
					r.Oscillations(Z1013Zero, 1)
				}
			}
		}
	}
	r.Oscillations(Z1013Sync, 7)
}
