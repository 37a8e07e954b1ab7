// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"time"

	"github.com/ik5/retrotape/utils"
)

// LC 80 signal frequencies.
const (
	LC80Short = 2000.0
	LC80Long  = 1000.0
)

// LC80Options selects the variations of real machines.
type LC80Options struct {
	// ExtraHalf adds the long half period real machines emit after the
	// mid sync.
	ExtraHalf bool
	// BadChecksum stores a wrong checksum in the header.
	BadChecksum bool
	// NoMidSync leaves out the sync between header and data.
	NoMidSync bool
}

// EncodeLC80 records one LC 80 file.
func EncodeLC80(r *Recorder, fileNumber, start uint16, data []byte, opts LC80Options) {
	end := start + uint16(len(data))

	header := make([]byte, 7)
	binary.LittleEndian.PutUint16(header[0:], fileNumber)
	binary.LittleEndian.PutUint16(header[2:], start)
	binary.LittleEndian.PutUint16(header[4:], end)
	header[6] = utils.Sum8(data)
	if opts.BadChecksum {
		header[6]++
	}

	r.Carrier(LC80Long, 4*time.Second)
	for _, b := range header {
		lc80Byte(r, b)
	}

	if opts.NoMidSync {
		r.Carrier(LC80Long, time.Second)
		return
	}

	r.Carrier(LC80Short, 2*time.Second)
	if opts.ExtraHalf {
		r.HalfOscillation(LC80Long)
	}
	for _, b := range data {
		lc80Byte(r, b)
	}
	r.Carrier(LC80Short, 2*time.Second)
}

func lc80Byte(r *Recorder, b byte) {
	lc80Bit(r, false)
	for i := range 8 {
		lc80Bit(r, b&(1<<i) != 0)
	}
	lc80Bit(r, true)
}

func lc80Bit(r *Recorder, one bool) {
	if one {
		r.Oscillations(LC80Short, 6)
		r.Oscillations(LC80Long, 6)
		return
	}
	r.Oscillations(LC80Short, 12)
	r.Oscillations(LC80Long, 3)
}
