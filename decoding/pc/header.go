// SPDX-License-Identifier: EPL-2.0

package pc

import (
	"encoding/binary"
	"strings"
)

const headerMarker = 0xa5

// Header is the first block of a Cassette BASIC file.
type Header struct {
	Name    string
	Flags   byte
	Length  uint16
	Segment uint16
	Offset  uint16
}

var flagNames = [8]string{"Memory area", "?", "?", "?", "?", "Protected", "ASCII listing", "Tokenized BASIC"}

// ParseHeader reports whether block is a Cassette BASIC header.
func ParseHeader(block []byte) (Header, bool) {
	if len(block) < 16 || block[0] != headerMarker {
		return Header{}, false
	}

	return Header{
		Name:    strings.TrimRight(string(block[1:9]), " \x00"),
		Flags:   block[9],
		Length:  binary.LittleEndian.Uint16(block[10:]),
		Segment: binary.LittleEndian.Uint16(block[12:]),
		Offset:  binary.LittleEndian.Uint16(block[14:]),
	}, true
}

// FlagNames lists the set flags, lowest bit first.
func (h Header) FlagNames() []string {
	var names []string
	for i, name := range flagNames {
		if h.Flags&(1<<i) != 0 {
			names = append(names, name)
		}
	}

	return names
}
