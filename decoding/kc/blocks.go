// SPDX-License-Identifier: EPL-2.0

package kc

import (
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
	sync    *decoding.SyncFinder
	framing decoding.Framing
	log     *slog.Logger
}

// NewBlockReader decodes KC blocks from p.
func NewBlockReader(p halfperiod.Provider, params Params, s decoding.Settings) *decoding.BlockDecoder {
	r := &blockReader{
		p:       p,
		params:  params,
		sync:    decoding.NewSyncFinder(p, params.One, params.MinIntroHalfPeriods),
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
	r.log.Debug("reading block", decoding.PosAttr(begin))

	data := make([]byte, 0, blockSize)
	for i := range blockSize {
		b, err := r.readByte()
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
	if sum := utils.Sum8(data[1:129]); sum != data[129] {
		r.log.Warn("invalid checksum", decoding.PosAttr(end),
			"block", utils.Hex8(data[0]), "read", utils.Hex8(data[129]), "calculated", utils.Hex8(sum))
		status = decoding.InvalidChecksum
	}
	r.log.Debug("finished block", decoding.PosAttr(end), "block", utils.Hex8(data[0]))

	return decoding.Block{Data: data, Status: status, Begin: begin, End: end}, nil
}

func (r *blockReader) readByte() (byte, error) {
	v, ok := decoding.ReadOscillation(r.p)
	if !ok || !r.params.Delimiter.Contains(v) {
		return 0, fmt.Errorf("%w: read %.1f Hz, expected %v", ErrNoDelimiter, v, r.params.Delimiter)
	}

	b, _, err := r.framing.ReadByte(r.readBit)
	return b, err
}

func (r *blockReader) readBit() (bool, bool) {
	v, ok := decoding.ReadOscillation(r.p)
	if !ok {
		return false, false
	}

	return decoding.BitByFrequency(v, r.params.Zero, r.params.One)
}
