// SPDX-License-Identifier: EPL-2.0

package decoding

import (
	"errors"
	"io"
	"log/slog"
)

// BlockDecoder is a BlockReader over a function that decodes the block
// after the next pilot tone. The function returns io.EOF at the end of
// input and ErrBlockStartNotFound when a tone is not followed by a block,
// in which case the search continues.
type BlockDecoder struct {
	decode func() (Block, error)
	log    *slog.Logger
	eof    bool
}

func NewBlockDecoder(decode func() (Block, error), s Settings) *BlockDecoder {
	return &BlockDecoder{decode: decode, log: s.Log()}
}

func (d *BlockDecoder) NextBlock() (Block, error) {
	return retry(d.decode, d.log, &d.eof)
}

// RecordDecoder is the FileReader counterpart of BlockDecoder for
// machines that record a file as one unit.
type RecordDecoder struct {
	decode func() (File, error)
	log    *slog.Logger
	eof    bool
}

func NewRecordDecoder(decode func() (File, error), s Settings) *RecordDecoder {
	return &RecordDecoder{decode: decode, log: s.Log()}
}

func (d *RecordDecoder) NextFile() (File, error) {
	return retry(d.decode, d.log, &d.eof)
}

func retry[T any](decode func() (T, error), log *slog.Logger, eof *bool) (T, error) {
	var zero T
	if *eof {
		return zero, io.EOF
	}

	for {
		v, err := decode()
		switch {
		case errors.Is(err, ErrBlockStartNotFound):
			log.Debug("no block after pilot tone")
			continue
		case err == io.EOF:
			*eof = true
			return zero, io.EOF
		case err != nil:
			return zero, err
		}

		return v, nil
	}
}
