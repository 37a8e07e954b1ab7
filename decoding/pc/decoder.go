// SPDX-License-Identifier: EPL-2.0

package pc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/halfperiod"
	"github.com/ik5/retrotape/utils"
)

type blockReader struct {
	p       halfperiod.Provider
	params  Params
	sync    *decoding.SyncFinder
	framing decoding.Framing
	log     *slog.Logger

	inRecord bool
}

// NewBlockReader decodes the blocks of PC records. Blocks hold 256 data
// bytes and the CRC. The first block of every record is marked
// AfterSync.
func NewBlockReader(p halfperiod.Provider, params Params, s decoding.Settings) *decoding.BlockDecoder {
	r := &blockReader{
		p:       p,
		params:  params,
		sync:    decoding.NewSyncFinder(p, params.One, params.MinIntroHalfPeriods),
		framing: decoding.Framing{Order: decoding.MSBFirst},
		log:     s.Log(),
	}

	return decoding.NewBlockDecoder(r.decodeBlock, s)
}

func (r *blockReader) decodeBlock() (decoding.Block, error) {
	afterSync := !r.inRecord
	if afterSync {
		if err := r.findSync(); err != nil {
			return decoding.Block{}, err
		}
		r.inRecord = true
	}

	begin := r.p.Position()

	data := make([]byte, 0, blockSize)
	for len(data) < blockSize {
		b, _, err := r.framing.ReadByte(r.readBit)
		if err == nil {
			data = append(data, b)
			continue
		}

		// Blocks carry no marker, so the end of a record shows up as a
		// failing byte.
		r.inRecord = false
		if isTrailer(data) {
			r.log.Debug("end of record", decoding.PosAttr(r.p.Position()))
			return decoding.Block{}, decoding.ErrBlockStartNotFound
		}

		r.log.Error(err.Error(), decoding.PosAttr(r.p.Position()), "byte", len(data))
		return decoding.Block{Data: data, Status: decoding.Partial, Begin: begin, End: r.p.Position(), AfterSync: afterSync}, nil
	}

	end := r.p.Position()
	status := decoding.Complete
	read := binary.BigEndian.Uint16(data[blockData:])
	if crc := utils.CRC16CCITT(data[:blockData]); crc != read {
		r.log.Error("invalid checksum", decoding.PosAttr(end), "read", utils.Hex16(read), "calculated", utils.Hex16(crc))
		status = decoding.InvalidChecksum
	}

	if h, ok := ParseHeader(data); ok && afterSync {
		r.log.Info("recognized IBM Cassette BASIC header", decoding.PosAttr(begin),
			"name", h.Name, "flags", fmt.Sprintf("%s (%s)", utils.Hex8(h.Flags), strings.Join(h.FlagNames(), ", ")),
			"length", h.Length, "load", utils.Hex16(h.Segment)+":"+utils.Hex16(h.Offset))
	}

	return decoding.Block{Data: data, Status: status, Begin: begin, End: end, AfterSync: afterSync}, nil
}

func (r *blockReader) findSync() error {
	if !r.sync.Find() {
		return io.EOF
	}

	if bit, ok := r.readBit(); !ok || bit {
		r.log.Debug(ErrNoSyncBit.Error(), decoding.PosAttr(r.p.Position()))
		return decoding.ErrBlockStartNotFound
	}

	if b, _, err := r.framing.ReadByte(r.readBit); err != nil || b != syncByte {
		r.log.Debug(ErrNoSyncByte.Error(), decoding.PosAttr(r.p.Position()), "read", utils.Hex8(b))
		return decoding.ErrBlockStartNotFound
	}

	return nil
}

func (r *blockReader) readBit() (bool, bool) {
	v, ok := decoding.ReadOscillation(r.p)
	if !ok {
		return false, false
	}

	return decoding.BitByFrequency(v, r.params.Zero, r.params.One)
}

func isTrailer(data []byte) bool {
	return len(data) <= maxTrailer && len(bytes.Trim(data, "\xff")) == 0
}

// NewFileBoundary starts a file with every record.
func NewFileBoundary() decoding.FileBoundary {
	return func(_ *decoding.Block, cur decoding.Block) bool {
		return cur.AfterSync
	}
}

// Decoder produces one file per PC record. A Cassette BASIC header
// record is named "<name>_header" and the record following it "<name>".
type Decoder struct {
	files    decoding.FileReader
	basicFor string
}

func NewDecoder(p halfperiod.Provider, params Params, s decoding.Settings) *Decoder {
	return &Decoder{files: decoding.NewGrouper(NewBlockReader(p, params, s), NewFileBoundary(), s)}
}

func (d *Decoder) Next() (decoding.OutputFile, error) {
	f, err := d.files.NextFile()
	if err != nil {
		return decoding.OutputFile{}, err
	}

	out := OutputFile(f)
	if h, ok := ParseHeader(f.Blocks[0].Data); ok && f.Blocks[0].AfterSync {
		out.ProposedName = h.Name + "_header"
		d.basicFor = h.Name
		return out, nil
	}

	out.ProposedName, d.basicFor = d.basicFor, ""

	return out, nil
}

// OutputFile joins the data of every block, without the CRCs.
func OutputFile(f decoding.File) decoding.OutputFile {
	var data bytes.Buffer
	for _, b := range f.Blocks {
		data.Write(b.Data[:min(len(b.Data), blockData)])
	}

	return decoding.OutputFile{
		Data:              data.Bytes(),
		ProposedExtension: "bin",
		Status:            f.Status,
		Begin:             f.Begin,
		End:               f.End,
	}
}

var _ decoding.FileDecoder = (*Decoder)(nil)
