// SPDX-License-Identifier: EPL-2.0

package z1013

import (
	"bytes"
	"encoding/binary"
	"io"
	"log/slog"

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
}

func NewBlockReader(p halfperiod.Provider, params Params, s decoding.Settings) *decoding.BlockDecoder {
	r := &blockReader{
		p:       p,
		params:  params,
		sync:    decoding.NewSyncFinder(p, params.Sync, params.MinIntroHalfPeriods),
		framing: decoding.Framing{Order: decoding.LSBFirst},
		log:     s.Log(),
	}

	return decoding.NewBlockDecoder(r.decodeBlock, s)
}

func (r *blockReader) decodeBlock() (decoding.Block, error) {
	if !r.sync.Find() {
		return decoding.Block{}, io.EOF
	}

	begin := r.p.Position()
	if !decoding.OscillationIs(r.p, r.params.One) {
		r.log.Debug(ErrNoDelimiter.Error(), decoding.PosAttr(r.p.Position()))
		return decoding.Block{}, decoding.ErrBlockStartNotFound
	}

	data := make([]byte, 0, blockSize)
	for i := range blockSize {
		b, _, err := r.framing.ReadByte(r.readBit)
		if err != nil {
			r.log.Error(err.Error(), decoding.PosAttr(r.p.Position()), "byte", i)
			if i == 0 {
				return decoding.Block{}, decoding.ErrBlockStartNotFound
			}

			return decoding.Block{Data: data, Status: decoding.Partial, Begin: begin, End: r.p.Position()}, nil
		}
		data = append(data, b)
	}

	end := r.p.Position()
	status := decoding.Complete
	read := binary.LittleEndian.Uint16(data[blockSize-2:])
	if sum := utils.Sum16LE(data[:blockSize-2]); sum != read {
		r.log.Error("invalid checksum", decoding.PosAttr(end), "read", utils.Hex16(read), "calculated", utils.Hex16(sum))
		status = decoding.InvalidChecksum
	}

	return decoding.Block{Data: data, Status: status, Begin: begin, End: end}, nil
}

// readBit reads a 1 bit as a single half period and a 0 bit as two.
func (r *blockReader) readBit() (bool, bool) {
	v, ok := r.p.Next()
	if !ok {
		return false, false
	}

	bit, ok := decoding.BitByFrequency(v, r.params.Zero, r.params.One)
	if !ok || bit {
		return bit, ok
	}

	v, ok = r.p.Next()
	if !ok {
		return false, false
	}

	return false, r.params.Zero.Contains(v) && !r.params.One.Contains(v)
}

// NewFileBoundary starts a file when a block ends MaxBlockGap or more
// after the previous one.
func NewFileBoundary(params Params) decoding.FileBoundary {
	return func(prev *decoding.Block, cur decoding.Block) bool {
		return prev == nil || cur.End.Since(prev.End) >= params.MaxBlockGap
	}
}

// Decoder produces unnamed Z 1013 files.
type Decoder struct {
	files decoding.FileReader
}

func NewDecoder(p halfperiod.Provider, params Params, s decoding.Settings) *Decoder {
	return &Decoder{files: decoding.NewGrouper(NewBlockReader(p, params, s), NewFileBoundary(params), s)}
}

func (d *Decoder) Next() (decoding.OutputFile, error) {
	f, err := d.files.NextFile()
	if err != nil {
		return decoding.OutputFile{}, err
	}

	return OutputFile(f), nil
}

// OutputFile joins the data bytes of every block.
func OutputFile(f decoding.File) decoding.OutputFile {
	var data bytes.Buffer
	for _, b := range f.Blocks {
		if len(b.Data) > 2 {
			data.Write(b.Data[2:min(len(b.Data), blockSize-2)])
		}
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
