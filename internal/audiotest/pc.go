// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"

	"github.com/ik5/retrotape/utils"
)

// IBM PC signal frequencies.
const (
	PCOne  = 1000.0
	PCZero = 2000.0
)

// EncodePC records one PC record: leader, sync bit, sync byte, 256 byte
// blocks with their CRC and the trailer. data is zero padded to whole
// blocks.
func EncodePC(r *Recorder, data []byte) {
	for range 256 {
		pcByte(r, 0xff)
	}
	pcBit(r, false)
	pcByte(r, 0x16)

	blocks := max((len(data)+255)/256, 1)
	padded := make([]byte, blocks*256)
	copy(padded, data)

	for i := range blocks {
		block := padded[i*256 : (i+1)*256]
		raw := binary.BigEndian.AppendUint16(block[:256:256], utils.CRC16CCITT(block))
		for _, b := range raw {
			pcByte(r, b)
		}
	}

	for range 4 {
		pcByte(r, 0xff)
	}
	r.Silence(1000)
}

// PCBasicHeader builds the 256 byte header block of IBM Cassette BASIC.
func PCBasicHeader(name string, flags byte, length, segment, offset uint16) []byte {
	h := make([]byte, 256)
	h[0] = 0xa5
	copy(h[1:9], "        ")
	copy(h[1:9], name)
	h[9] = flags
	binary.LittleEndian.PutUint16(h[10:], length)
	binary.LittleEndian.PutUint16(h[12:], segment)
	binary.LittleEndian.PutUint16(h[14:], offset)

	return h
}

func pcByte(r *Recorder, b byte) {
	for i := range 8 {
		pcBit(r, b&(0x80>>i) != 0)
	}
}

func pcBit(r *Recorder, one bool) {
	if one {
		r.Oscillations(PCOne, 1)
		return
	}
	r.Oscillations(PCZero, 1)
}
