// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"time"

	"github.com/ik5/retrotape/utils"
)

// Apple II signal frequencies.
const (
	Apple2Sync = 770.0
	Apple2One  = 1000.0
	Apple2Zero = 2000.0
)

// EncodeApple2 records one record: pilot tone, sync marker, data and its
// checksum.
func EncodeApple2(r *Recorder, data []byte) {
	EncodeApple2Raw(r, append(data[:len(data):len(data)], utils.Xor8(data, 0xff)))
}

// EncodeApple2Raw records raw without adding a checksum.
func EncodeApple2Raw(r *Recorder, raw []byte) {
	r.Carrier(Apple2Sync, time.Second)
	r.HalfOscillation(2500)
	r.HalfOscillation(2000)
	for _, b := range raw {
		for i := range 8 {
			if b&(0x80>>i) != 0 {
				r.Oscillations(Apple2One, 1)
			} else {
				r.Oscillations(Apple2Zero, 1)
			}
		}
	}
	r.Carrier(Apple2Sync, 250*time.Millisecond)
}
