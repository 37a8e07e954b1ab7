// SPDX-License-Identifier: EPL-2.0

package kc

import (
	"bytes"
	"log/slog"
	"strings"
	"unicode"

	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/halfperiod"
	"github.com/ik5/retrotape/utils"
)

// NewFileBoundary starts a new file when the block number does not
// increase or the tape paused for longer than MaxBlockGap.
func NewFileBoundary(params Params, s decoding.Settings) decoding.FileBoundary {
	log := s.Log()

	return func(prev *decoding.Block, cur decoding.Block) bool {
		num := int(cur.Data[0])
		if prev == nil {
			checkFirstBlock(log, cur)
			return true
		}

		prevNum := int(prev.Data[0])
		if num <= prevNum || cur.Begin.Since(prev.End) > params.MaxBlockGap {
			checkFirstBlock(log, cur)
			return true
		}

		if num > prevNum+1 && num != 0xff {
			log.Warn("missing block", decoding.PosAttr(cur.Begin),
				"got", utils.Hex8(byte(num)), "expected", utils.Hex8(byte(prevNum+1)))
		}

		return false
	}
}

func checkFirstBlock(log *slog.Logger, b decoding.Block) {
	if n := b.Data[0]; n != 0 && n != 1 {
		log.Info("first block of file has unusual number", decoding.PosAttr(b.Begin), "block", utils.Hex8(n))
	}
}

// Decoder produces KC-TAPE files.
type Decoder struct {
	files decoding.FileReader
}

func NewDecoder(p halfperiod.Provider, params Params, s decoding.Settings) *Decoder {
	blocks := NewBlockReader(p, params, s)

	return &Decoder{files: decoding.NewGrouper(blocks, NewFileBoundary(params, s), s)}
}

func (d *Decoder) Next() (decoding.OutputFile, error) {
	f, err := d.files.NextFile()
	if err != nil {
		return decoding.OutputFile{}, err
	}

	return OutputFile(f), nil
}

// OutputFile renders f as a KC-TAPE file: the tape header, then every block
// without its checksum. Partial blocks are zero padded.
func OutputFile(f decoding.File) decoding.OutputFile {
	data := make([]byte, 0, len(TapeHeader)+outputBlockSize*len(f.Blocks))
	data = append(data, TapeHeader...)
	for _, b := range f.Blocks {
		chunk := make([]byte, outputBlockSize)
		copy(chunk, b.Data)
		data = append(data, chunk...)
	}

	return decoding.OutputFile{
		Data:              data,
		ProposedName:      ProposedName(f.Blocks[0].Data),
		ProposedExtension: "tap",
		Status:            f.Status,
		Begin:             f.Begin,
		End:               f.End,
	}
}

var basicPrefixes = [][]byte{
	[]byte("\x01\xd3\xd3\xd3"),
	[]byte("\x01\xd7\xd7\xd7"),
}

// ProposedName extracts the file name from the first block. BASIC
// programs carry it after a three byte marker, machine code files right
// after the block number.
func ProposedName(first []byte) string {
	start, end := 1, 9
	for _, prefix := range basicPrefixes {
		if bytes.HasPrefix(first, prefix) {
			start, end = 4, 12
			break
		}
	}

	if len(first) <= start {
		return ""
	}
	name := strings.TrimFunc(string(first[start:min(end, len(first))]), func(c rune) bool {
		return unicode.IsSpace(c) || c == 0
	})

	return strings.Map(func(c rune) rune {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return c
		case c == '_' || c == '.' || c == ',':
			return c
		}
		return '_'
	}, name)
}

var _ decoding.FileDecoder = (*Decoder)(nil)
