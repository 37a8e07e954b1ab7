// SPDX-License-Identifier: EPL-2.0

package electron

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/halfperiod"
	"github.com/ik5/retrotape/utils"
)

type blockReader struct {
	p       halfperiod.Provider
	params  Params
	sync    *decoding.DynamicSyncFinder
	framing decoding.Framing
	log     *slog.Logger

	one  decoding.FrequencyRange
	zero decoding.FrequencyRange
}

// NewBlockReader decodes Electron blocks. Block data starts with the
// 0x2a sync byte and runs to the data CRC.
func NewBlockReader(p halfperiod.Provider, params Params, s decoding.Settings) *decoding.BlockDecoder {
	r := &blockReader{
		p:       p,
		params:  params,
		sync:    decoding.NewDynamicSyncFinder(p, params.MinIntroHalfPeriods, params.MaxRelativeDeviation),
		framing: decoding.Framing{Order: decoding.LSBFirst, StartBits: []bool{false}, StopBits: []bool{true}},
		log:     s.Log(),
	}

	return decoding.NewBlockDecoder(r.decodeBlock, s)
}

func (r *blockReader) decodeBlock() (decoding.Block, error) {
	carrier, ok := r.sync.Find()
	if !ok {
		return decoding.Block{}, io.EOF
	}
	r.one = r.params.One.Scaled(carrier)
	r.zero = r.params.Zero.Scaled(carrier)

	begin := r.p.Position()
	r.log.Debug("found pilot tone", decoding.PosAttr(begin), "frequency", carrier)

	var raw []byte
	for {
		b, _, err := r.framing.ReadByte(r.readBit)
		if err != nil {
			if len(raw) == 0 {
				return decoding.Block{}, decoding.ErrBlockStartNotFound
			}
			break
		}
		raw = append(raw, b)
	}

	if raw[0] != syncByte {
		r.log.Warn(ErrNoSyncByte.Error(), decoding.PosAttr(begin), "read", utils.Hex8(raw[0]))
		return decoding.Block{}, decoding.ErrBlockStartNotFound
	}

	block := decoding.Block{Data: raw, Status: decoding.Partial, Begin: begin, End: r.p.Position()}

	h, err := ParseHeader(raw)
	if err != nil {
		r.log.Error(err.Error(), decoding.PosAttr(block.End))
		return block, nil
	}

	r.log.Info("block", decoding.PosAttr(begin), "name", h.Name, "number", h.Number,
		"length", h.Length, "load", fmt.Sprintf("%08x", h.Load), "last", h.Last())

	if len(raw) < h.Size() {
		r.log.Error("block truncated", decoding.PosAttr(block.End), "read", len(raw), "expected", h.Size())
		return block, nil
	}

	block.Data = raw[:h.Size()]
	block.Status = decoding.Complete
	headerOK, dataOK := h.check(block.Data)
	if !headerOK || !dataOK {
		r.log.Warn("invalid checksum", decoding.PosAttr(block.End), "header", headerOK, "data", dataOK)
		block.Status = decoding.InvalidChecksum
	}

	return block, nil
}

func (r *blockReader) readBit() (bool, bool) {
	v, ok := decoding.ReadOscillation(r.p)
	if !ok {
		return false, false
	}

	switch {
	case r.zero.Contains(v):
		return false, true
	case r.one.Contains(v):
		return true, decoding.OscillationIs(r.p, r.one)
	}

	return false, false
}

// NewFileBoundary starts a file at block 0, after a last block and when
// the file name changes.
func NewFileBoundary() decoding.FileBoundary {
	return func(prev *decoding.Block, cur decoding.Block) bool {
		h, err := ParseHeader(cur.Data)
		if err != nil {
			return prev == nil
		}
		if prev == nil || h.Number == 0 {
			return true
		}

		ph, err := ParseHeader(prev.Data)
		if err != nil {
			return false
		}

		return ph.Last() || ph.Name != h.Name
	}
}

// Decoder produces the files of an Electron tape.
type Decoder struct {
	files decoding.FileReader
}

func NewDecoder(p halfperiod.Provider, params Params, s decoding.Settings) *Decoder {
	return &Decoder{files: decoding.NewGrouper(NewBlockReader(p, params, s), NewFileBoundary(), s)}
}

func (d *Decoder) Next() (decoding.OutputFile, error) {
	f, err := d.files.NextFile()
	if err != nil {
		return decoding.OutputFile{}, err
	}

	return OutputFile(f), nil
}

// OutputFile concatenates the block data and names the file after the
// first readable header.
func OutputFile(f decoding.File) decoding.OutputFile {
	out := decoding.OutputFile{
		ProposedExtension: "bin",
		Status:            f.Status,
		Begin:             f.Begin,
		End:               f.End,
	}

	var data bytes.Buffer
	for _, b := range f.Blocks {
		h, err := ParseHeader(b.Data)
		if err != nil {
			continue
		}
		if out.ProposedName == "" {
			out.ProposedName = h.Name
		}
		data.Write(h.Payload(b.Data))
	}
	out.Data = data.Bytes()

	return out
}

var _ decoding.FileDecoder = (*Decoder)(nil)
