// SPDX-License-Identifier: EPL-2.0

package electron

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ik5/retrotape/utils"
)

const (
	syncByte   = 0x2a
	maxNameLen = 10
	lastBlock  = 0x80
	crcSize    = 2

	// sync byte and name terminator
	nameOverhead = 2
	// load address up to and including the header CRC
	headerTail = 19
)

// BlockHeader holds the fields in front of the data of every block.
type BlockHeader struct {
	Name        string
	Load        uint32
	Exec        uint32
	Number      uint16
	Length      uint16
	Flags       byte
	NextAddress uint32
	CRC         uint16
}

// ParseHeader reads the header of a raw block, starting with the sync
// byte.
func ParseHeader(raw []byte) (BlockHeader, error) {
	if len(raw) == 0 || raw[0] != syncByte {
		return BlockHeader{}, ErrNoSyncByte
	}

	end := bytes.IndexByte(raw[1:min(len(raw), maxNameLen+2)], 0)
	if end < 0 {
		return BlockHeader{}, ErrNoFileName
	}

	h := end + nameOverhead
	if len(raw) < h+headerTail {
		return BlockHeader{}, fmt.Errorf("%d of %d bytes: %w", len(raw), h+headerTail, ErrShortHeader)
	}

	return BlockHeader{
		Name:        string(raw[1 : end+1]),
		Load:        binary.LittleEndian.Uint32(raw[h:]),
		Exec:        binary.LittleEndian.Uint32(raw[h+4:]),
		Number:      binary.LittleEndian.Uint16(raw[h+8:]),
		Length:      binary.LittleEndian.Uint16(raw[h+10:]),
		Flags:       raw[h+12],
		NextAddress: binary.LittleEndian.Uint32(raw[h+13:]),
		CRC:         binary.BigEndian.Uint16(raw[h+17:]),
	}, nil
}

func (h BlockHeader) Last() bool { return h.Flags&lastBlock != 0 }

func (h BlockHeader) dataOffset() int { return len(h.Name) + nameOverhead + headerTail }

// Size of the complete block in bytes.
func (h BlockHeader) Size() int {
	if h.Length == 0 {
		return h.dataOffset()
	}

	return h.dataOffset() + int(h.Length) + crcSize
}

// Payload returns the data bytes of raw, cut short when raw is.
func (h BlockHeader) Payload(raw []byte) []byte {
	from := min(h.dataOffset(), len(raw))
	to := min(h.dataOffset()+int(h.Length), len(raw))

	return raw[from:to]
}

// check verifies both CRCs of a complete block.
func (h BlockHeader) check(raw []byte) (headerOK, dataOK bool) {
	headerOK = utils.CRC16XModem(raw[1:h.dataOffset()-crcSize]) == h.CRC
	if h.Length == 0 {
		return headerOK, true
	}

	data := h.Payload(raw)
	read := binary.BigEndian.Uint16(raw[h.dataOffset()+len(data):])

	return headerOK, utils.CRC16XModem(data) == read
}
