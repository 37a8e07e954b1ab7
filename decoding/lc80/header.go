// SPDX-License-Identifier: EPL-2.0

package lc80

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/retrotape/utils"
)

const headerSize = 7

// Header is the record in front of the data of every LC 80 file.
type Header struct {
	FileNumber uint16
	Start      uint16
	End        uint16
	Checksum   byte
}

func ParseHeader(raw []byte) (Header, error) {
	if len(raw) < headerSize {
		return Header{}, fmt.Errorf("%d bytes: %w", len(raw), ErrShortHeader)
	}

	h := Header{
		FileNumber: binary.LittleEndian.Uint16(raw[0:]),
		Start:      binary.LittleEndian.Uint16(raw[2:]),
		End:        binary.LittleEndian.Uint16(raw[4:]),
		Checksum:   raw[6],
	}
	if h.End < h.Start {
		return Header{}, fmt.Errorf("%s..%s: %w", utils.Hex16(h.Start), utils.Hex16(h.End), ErrInvalidHeader)
	}

	return h, nil
}

// Length of the data in bytes.
func (h Header) Length() int {
	return int(h.End) - int(h.Start)
}

// Name is "file_start_end" in hex.
func (h Header) Name() string {
	return utils.Hex16(h.FileNumber) + "_" + utils.Hex16(h.Start) + "_" + utils.Hex16(h.End)
}
