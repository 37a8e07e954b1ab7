// SPDX-License-Identifier: EPL-2.0

package decoding

type BitOrder int

const (
	LSBFirst BitOrder = iota
	MSBFirst
)

// BitReader reads the next bit from the tape. ok is false when the signal
// does not form a bit.
type BitReader func() (bit bool, ok bool)

// Framing describes how a byte is sent: optional start and stop bits
// around eight data bits.
type Framing struct {
	Order     BitOrder
	StartBits []bool
	StopBits  []bool
}

// ReadByte assembles one byte from readBit. It returns the number of data
// bits read, which tells a clean end of data (no bit at all) from a broken
// byte. A missing or wrong start bit is reported as ErrStartBit with zero
// data bits.
func (f Framing) ReadByte(readBit BitReader) (byte, int, error) {
	for _, want := range f.StartBits {
		bit, ok := readBit()
		if !ok || bit != want {
			return 0, 0, ErrStartBit
		}
	}

	b, n, err := f.readData(readBit)
	if err != nil {
		return b, n, err
	}

	for _, want := range f.StopBits {
		bit, ok := readBit()
		if !ok || bit != want {
			return b, n, ErrStopBit
		}
	}

	return b, n, nil
}

// ReadData reads the data bits of a byte whose start bits were already
// consumed by the caller, followed by the stop bits.
func (f Framing) ReadData(readBit BitReader) (byte, int, error) {
	return Framing{Order: f.Order, StopBits: f.StopBits}.ReadByte(readBit)
}

func (f Framing) readData(readBit BitReader) (byte, int, error) {
	var b byte
	for i := range 8 {
		bit, ok := readBit()
		if !ok {
			return b, i, ErrBitNotDetected
		}
		if !bit {
			continue
		}
		if f.Order == LSBFirst {
			b |= 1 << i
		} else {
			b |= 0x80 >> i
		}
	}

	return b, 8, nil
}
