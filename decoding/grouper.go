// SPDX-License-Identifier: EPL-2.0

package decoding

import (
	"io"
	"log/slog"
)

// FileBoundary reports whether cur starts a new file. prev is nil for the
// first block of the input; the result is ignored then.
type FileBoundary func(prev *Block, cur Block) bool

// Grouper collects blocks into files and applies the error policy.
type Grouper struct {
	src      BlockReader
	boundary FileBoundary
	settings Settings
	log      *slog.Logger

	pending []Block
	prev    *Block
	eof     bool
	err     error
}

func NewGrouper(src BlockReader, boundary FileBoundary, s Settings) *Grouper {
	return &Grouper{
		src:      src,
		boundary: boundary,
		settings: s,
		log:      s.Log(),
	}
}

// NextFile returns the next file allowed by the error policy. Under the
// stop policy the first broken block ends decoding with a *DecodingError;
// the file it belongs to is discarded and every later call returns the
// same error.
func (g *Grouper) NextFile() (File, error) {
	for {
		if g.err != nil {
			return File{}, g.err
		}

		f, err := g.next()
		if err != nil {
			if err != io.EOF {
				g.err = err
			}
			return File{}, err
		}

		if f.Status == Error && g.settings.OnError == SkipFile {
			g.log.Warn("skipping broken file", PosAttr(f.Begin), "blocks", len(f.Blocks))
			continue
		}

		return f, nil
	}
}

func (g *Grouper) next() (File, error) {
	for !g.eof {
		b, err := g.src.NextBlock()
		if err == io.EOF {
			g.eof = true
			break
		}
		if err != nil {
			return File{}, err
		}

		g.settings.observe(b)

		if b.Status != Complete && g.settings.OnError == Stop {
			g.pending = nil
			return File{}, &DecodingError{Pos: b.Begin, Msg: "block " + b.Status.String(), Err: ErrStopped}
		}

		newFile := g.boundary(g.prev, b)
		g.prev = &b

		if newFile && len(g.pending) > 0 {
			f := NewFile(g.pending)
			g.pending = []Block{b}
			return f, nil
		}

		g.pending = append(g.pending, b)
	}

	if len(g.pending) == 0 {
		return File{}, io.EOF
	}

	f := NewFile(g.pending)
	g.pending = nil

	return f, nil
}
