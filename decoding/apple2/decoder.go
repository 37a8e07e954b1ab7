// SPDX-License-Identifier: EPL-2.0

package apple2

import (
	"encoding/binary"
	"io"
	"log/slog"

	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/halfperiod"
	"github.com/ik5/retrotape/utils"
)

type reader struct {
	p       halfperiod.Provider
	params  Params
	sync    *decoding.SyncFinder
	framing decoding.Framing
	log     *slog.Logger
}

// NewFileReader decodes Apple II records. Each file has a single block
// holding the data without its checksum.
func NewFileReader(p halfperiod.Provider, params Params, s decoding.Settings) *decoding.RecordDecoder {
	r := &reader{
		p:       p,
		params:  params,
		sync:    decoding.NewSyncFinder(p, params.Sync, params.MinIntroHalfPeriods),
		framing: decoding.Framing{Order: decoding.MSBFirst},
		log:     s.Log(),
	}

	return decoding.NewRecordDecoder(r.decodeFile, s)
}

func (r *reader) decodeFile() (decoding.File, error) {
	for {
		if !r.sync.Find() {
			return decoding.File{}, io.EOF
		}
		if r.readSyncEnd() {
			break
		}
	}

	begin := r.p.Position()

	var raw []byte
	for len(raw) < maxRecordSize {
		b, n, err := r.framing.ReadByte(r.readBit)
		if err != nil && n == 0 {
			break
		}
		if err != nil {
			r.log.Error("unable to detect bit", decoding.PosAttr(r.p.Position()), "byte", len(raw), "bit", n)
			block := decoding.Block{Data: raw, Status: decoding.Partial, Begin: begin, End: r.p.Position()}
			return decoding.NewFile([]decoding.Block{block}), nil
		}
		raw = append(raw, b)
	}

	end := r.p.Position()
	if len(raw) == 0 {
		r.log.Debug("empty record", decoding.PosAttr(end))
		return decoding.File{}, decoding.ErrBlockStartNotFound
	}

	data, read := raw[:len(raw)-1], raw[len(raw)-1]
	status := decoding.Complete
	if sum := utils.Xor8(data, checksumSeed); sum != read {
		r.log.Error("invalid checksum", decoding.PosAttr(end), "read", utils.Hex8(read), "calculated", utils.Hex8(sum))
		status = decoding.InvalidChecksum
	}

	if status == decoding.Complete && len(data) == basicHeaderSize {
		r.log.Info("skipping probable BASIC header record", decoding.PosAttr(begin),
			"length", binary.LittleEndian.Uint16(data))
		return decoding.File{}, decoding.ErrBlockStartNotFound
	}

	block := decoding.Block{Data: data, Status: status, Begin: begin, End: end}

	return decoding.NewFile([]decoding.Block{block}), nil
}

func (r *reader) readSyncEnd() bool {
	for range 2 {
		v, ok := r.p.Next()
		if !ok || !r.params.SyncEnd.Contains(v) {
			return false
		}
	}

	return true
}

func (r *reader) readBit() (bool, bool) {
	v, ok := decoding.ReadOscillation(r.p)
	if !ok {
		return false, false
	}

	bit, ok := decoding.BitByFrequency(v, r.params.Zero, r.params.One)
	if !ok {
		r.log.Debug("unable to determine bit value", decoding.PosAttr(r.p.Position()), "frequency", v)
	}

	return bit, ok
}

// Decoder produces Apple II files. The tape carries no names.
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

	return decoding.OutputFile{
		Data:              f.Blocks[0].Data,
		ProposedExtension: "bin",
		Status:            f.Status,
		Begin:             f.Begin,
		End:               f.End,
	}, nil
}

var _ decoding.FileDecoder = (*Decoder)(nil)
