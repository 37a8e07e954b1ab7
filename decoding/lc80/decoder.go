// SPDX-License-Identifier: EPL-2.0

package lc80

import (
	"io"
	"log/slog"

	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/halfperiod"
	"github.com/ik5/retrotape/utils"
)

type reader struct {
	p       halfperiod.Provider
	params  Params
	intro   *decoding.SyncFinder
	mid     *decoding.SyncFinder
	framing decoding.Framing
	log     *slog.Logger
}

// NewFileReader decodes LC 80 files. Every file has two blocks: the
// header and the data.
func NewFileReader(p halfperiod.Provider, params Params, s decoding.Settings) *decoding.RecordDecoder {
	r := &reader{
		p:       p,
		params:  params,
		intro:   decoding.NewSyncFinder(p, params.Long, params.MinIntroHalfPeriods),
		mid:     decoding.NewSyncFinder(p, params.Short, params.MinMidHalfPeriods),
		framing: decoding.Framing{Order: decoding.LSBFirst, StartBits: []bool{false}, StopBits: []bool{true}},
		log:     s.Log(),
	}

	return decoding.NewRecordDecoder(r.decodeFile, s)
}

func (r *reader) decodeFile() (decoding.File, error) {
	if !r.intro.Find() {
		return decoding.File{}, io.EOF
	}

	begin := r.p.Position()

	raw := make([]byte, 0, headerSize)
	for range headerSize {
		b, _, err := r.framing.ReadByte(r.readBit)
		if err != nil {
			r.log.Warn("unable to read header", decoding.PosAttr(r.p.Position()), "error", err)
			return decoding.File{}, decoding.ErrBlockStartNotFound
		}
		raw = append(raw, b)
	}

	h, err := ParseHeader(raw)
	if err != nil {
		r.log.Warn("invalid header", decoding.PosAttr(r.p.Position()), "error", err)
		return decoding.File{}, decoding.ErrBlockStartNotFound
	}

	header := decoding.Block{Data: raw, Status: decoding.Complete, Begin: begin, End: r.p.Position()}
	r.log.Debug("read file header", decoding.PosAttr(header.End),
		"file", utils.Hex16(h.FileNumber), "start", utils.Hex16(h.Start), "end", utils.Hex16(h.End), "length", h.Length())

	data := r.readData(h)

	return decoding.NewFile([]decoding.Block{header, data}), nil
}

func (r *reader) readData(h Header) decoding.Block {
	partial := func(data []byte) decoding.Block {
		return decoding.Block{Data: data, Status: decoding.Partial, Begin: r.p.Position(), End: r.p.Position()}
	}

	if !r.mid.Find() {
		r.log.Error(ErrNoMidSync.Error(), decoding.PosAttr(r.p.Position()))
		return partial(nil)
	}

	begin := r.p.Position()

	// Real machines emit one long half period after the mid sync. Without
	// it the short train of the first start bit merges into the sync and
	// the first long oscillation has already begun.
	startBitBegun := false
	first, ok1 := r.p.Next()
	second, ok2 := r.p.Next()
	switch {
	case !ok1 || !ok2:
		return partial(nil)
	case r.params.Short.Contains(second):
		r.p.RewindOne()
	case r.params.Long.Contains(first) && r.params.Long.Contains(second):
		startBitBegun = true
	default:
		r.log.Error("unexpected signal after mid sync", decoding.PosAttr(r.p.Position()), "first", first, "second", second)
		return partial(nil)
	}

	data := make([]byte, 0, h.Length())
	for i := range h.Length() {
		var b byte
		var err error
		if i == 0 && startBitBegun {
			if !r.finishStartBit() {
				err = decoding.ErrStartBit
			} else {
				b, _, err = r.framing.ReadData(r.readBit)
			}
		} else {
			b, _, err = r.framing.ReadByte(r.readBit)
		}

		if err != nil {
			r.log.Error(err.Error(), decoding.PosAttr(r.p.Position()), "byte", i)
			block := partial(data)
			block.Begin = begin
			return block
		}
		data = append(data, b)
	}

	end := r.p.Position()
	status := decoding.Complete
	if sum := utils.Sum8(data); sum != h.Checksum {
		r.log.Warn("invalid checksum", decoding.PosAttr(end),
			"file", utils.Hex16(h.FileNumber), "read", utils.Hex8(h.Checksum), "calculated", utils.Hex8(sum))
		status = decoding.InvalidChecksum
	}

	return decoding.Block{Data: data, Status: status, Begin: begin, End: end}
}

// readBit reads a 0 bit (short train, 3 long oscillations) or a 1 bit
// (short train, 6 long oscillations). Telling them apart consumes the
// first short oscillation of the next bit after a 0.
func (r *reader) readBit() (bool, bool) {
	if !r.skipShort() || !r.readLong(3) {
		return false, false
	}

	v, ok := decoding.ReadOscillation(r.p)
	if !ok {
		return false, false
	}

	switch {
	case r.params.Long.Contains(v):
		return true, r.readLong(2)
	case r.params.Short.Contains(v):
		return false, true
	}

	return false, false
}

// finishStartBit completes a start bit whose first long oscillation was
// already read.
func (r *reader) finishStartBit() bool {
	if !r.readLong(2) {
		return false
	}

	return decoding.OscillationIs(r.p, r.params.Short)
}

func (r *reader) skipShort() bool {
	for {
		v, ok := r.p.Next()
		if !ok {
			return false
		}
		if !r.params.Short.Contains(v) {
			r.p.RewindOne()
			return true
		}
	}
}

func (r *reader) readLong(n int) bool {
	for range n {
		if !decoding.OscillationIs(r.p, r.params.Long) {
			return false
		}
	}

	return true
}

// Decoder produces LC 80 files named after their header.
type Decoder struct {
	files decoding.FileReader
}

func NewDecoder(p halfperiod.Provider, params Params, s decoding.Settings) *Decoder {
	return &Decoder{files: decoding.Policy(NewFileReader(p, params, s), s)}
}

func (d *Decoder) Next() (decoding.OutputFile, error) {
	f, err := d.files.NextFile()
	if err != nil {
		return decoding.OutputFile{}, err
	}

	return OutputFile(f), nil
}

// OutputFile renders a file read by NewFileReader.
func OutputFile(f decoding.File) decoding.OutputFile {
	out := decoding.OutputFile{
		ProposedExtension: "bin",
		Status:            f.Status,
		Begin:             f.Begin,
		End:               f.End,
	}

	if h, err := ParseHeader(f.Blocks[0].Data); err == nil {
		out.ProposedName = h.Name()
	}
	if len(f.Blocks) > 1 {
		out.Data = f.Blocks[1].Data
	}

	return out
}

var _ decoding.FileDecoder = (*Decoder)(nil)
