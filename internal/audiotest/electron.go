// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"time"

	"github.com/ik5/retrotape/utils"
)

// Electron carrier frequency; a 0 bit is one oscillation at half of it.
const ElectronCarrier = 2400.0

// ElectronBlock describes one Acorn tape block.
type ElectronBlock struct {
	Name       string
	Load, Exec uint32
	Number     uint16
	Last       bool
	Data       []byte
	// BadDataCRC corrupts the data checksum.
	BadDataCRC bool
}

// Bytes returns the block as recorded, starting with the 0x2A sync byte.
func (b ElectronBlock) Bytes() []byte {
	raw := []byte{0x2a}
	raw = append(raw, b.Name...)
	raw = append(raw, 0)

	header := make([]byte, 17)
	binary.LittleEndian.PutUint32(header[0:], b.Load)
	binary.LittleEndian.PutUint32(header[4:], b.Exec)
	binary.LittleEndian.PutUint16(header[8:], b.Number)
	binary.LittleEndian.PutUint16(header[10:], uint16(len(b.Data)))
	if b.Last {
		header[12] = 0x80
	}
	raw = append(raw, header...)
	raw = binary.BigEndian.AppendUint16(raw, utils.CRC16XModem(raw[1:]))

	if len(b.Data) > 0 {
		raw = append(raw, b.Data...)
		crc := utils.CRC16XModem(b.Data)
		if b.BadDataCRC {
			crc ^= 0xffff
		}
		raw = binary.BigEndian.AppendUint16(raw, crc)
	}

	return raw
}

// EncodeElectron records blocks, each after a pilot tone of the given
// length, followed by a short trailing carrier.
func EncodeElectron(r *Recorder, pilot time.Duration, blocks ...ElectronBlock) {
	for _, b := range blocks {
		r.Carrier(ElectronCarrier, pilot)
		for _, v := range b.Bytes() {
			electronBit(r, false)
			for i := range 8 {
				electronBit(r, v&(1<<i) != 0)
			}
			electronBit(r, true)
		}
	}
	r.Carrier(ElectronCarrier, 100*time.Millisecond)
}

func electronBit(r *Recorder, one bool) {
	if one {
		r.Oscillations(ElectronCarrier, 2)
		return
	}
	r.Oscillations(ElectronCarrier/2, 1)
}
