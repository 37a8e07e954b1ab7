// SPDX-License-Identifier: EPL-2.0

package decoding

import (
	"io"
	"log/slog"
)

// PolicyReader applies the error policy to machines that decode whole
// files at once.
type PolicyReader struct {
	src      FileReader
	settings Settings
	log      *slog.Logger
	err      error
}

// Policy wraps src and applies s.OnError to files that fail to decode.
func Policy(src FileReader, s Settings) *PolicyReader {
	return &PolicyReader{src: src, settings: s, log: s.Log()}
}

func (p *PolicyReader) NextFile() (File, error) {
	for {
		if p.err != nil {
			return File{}, p.err
		}

		f, err := p.src.NextFile()
		if err != nil {
			if err != io.EOF {
				p.err = err
			}
			return File{}, err
		}

		for _, b := range f.Blocks {
			p.settings.observe(b)
		}

		if f.Status != Error {
			return f, nil
		}

		switch p.settings.OnError {
		case Stop:
			p.err = &DecodingError{Pos: f.Begin, Msg: "file " + f.Status.String(), Err: ErrStopped}
			return File{}, p.err
		case SkipFile:
			p.log.Warn("skipping broken file", PosAttr(f.Begin))
			continue
		}

		return f, nil
	}
}
