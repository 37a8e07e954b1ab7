// SPDX-License-Identifier: EPL-2.0

package audiotest

import "github.com/ik5/retrotape/utils"

// KC 85 signal frequencies.
const (
	KCZero      = 1950.0
	KCOne       = 1050.0
	KCDelimiter = 557.0
)

// KCBlock builds a 130 byte KC block: number, 128 data bytes (data is
// zero padded or cut) and the checksum.
func KCBlock(number byte, data []byte) []byte {
	raw := make([]byte, 130)
	raw[0] = number
	copy(raw[1:129], data)
	raw[129] = utils.Sum8(raw[1:129])

	return raw
}

// EncodeKC records raw after an intro of the given number of oscillations.
// Every byte is preceded by a delimiter oscillation, and one more
// delimiter closes the block.
func EncodeKC(r *Recorder, intro int, raw []byte) {
	r.Oscillations(KCOne, intro)
	for _, b := range raw {
		r.Oscillations(KCDelimiter, 1)
		for i := range 8 {
			if b&(1<<i) != 0 {
				r.Oscillations(KCOne, 1)
			} else {
				r.Oscillations(KCZero, 1)
			}
		}
	}
	r.Oscillations(KCDelimiter, 1)
}
