// SPDX-License-Identifier: EPL-2.0

package retrotape

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/ik5/retrotape/audio"
	"github.com/ik5/retrotape/decoding"
	"github.com/ik5/retrotape/halfperiod"
)

// FileObserver is told about every file the Decoder hands out. A
// Config.Observer that also implements FileObserver gets both calls.
type FileObserver interface {
	ObserveFile(decoding.OutputFile)
}

// Decoder runs one tape format over one recording.
type Decoder struct {
	in   audio.Source
	conv *halfperiod.Converter
	dec  decoding.FileDecoder
	obs  FileObserver
	err  error
}

// NewDecoder builds the pipeline channel selection, skip, resampling,
// high pass, format filter and half period conversion over src.
func NewDecoder(src audio.Source, format string, cfg Config) (*Decoder, error) {
	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := cfg.Settings()
	log := s.Log()

	samples, err := prepare(src, f, cfg, log)
	if err != nil {
		return nil, err
	}

	conv := halfperiod.NewConverter(samples, cfg.Hysteresis)
	d := &Decoder{
		in:   src,
		conv: conv,
		dec:  f.New(conv, cfg, s),
	}
	if obs, ok := cfg.Observer.(FileObserver); ok {
		d.obs = obs
	}

	return d, nil
}

// PrepareSource returns the single channel, filtered samples NewDecoder
// would turn into half periods. Tuning tools dump or analyse them.
func PrepareSource(src audio.Source, format string, cfg Config) (audio.Source, error) {
	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return prepare(src, f, cfg, cfg.Settings().Log())
}

func prepare(src audio.Source, f Format, cfg Config, log *slog.Logger) (audio.Source, error) {
	var err error

	channel := 0
	switch {
	case cfg.Channel != nil:
		channel = *cfg.Channel
	case src.Channels() > 1:
		log.Info("input has several channels, decoding the first one", "channels", src.Channels())
	}
	if cfg.Channel != nil || src.Channels() > 1 {
		if src, err = audio.NewChannelSelector(src, channel); err != nil {
			return nil, err
		}
	}

	if cfg.Skip > 0 {
		src = audio.NewSkipper(src, cfg.Skip)
	}

	if cfg.Resample > 0 && cfg.Resample != src.SampleRate() {
		buf, err := audio.ReadAll(src)
		if err != nil {
			return nil, err
		}
		log.Info("resampled input", "from", buf.SampleRate(), "to", cfg.Resample)
		src = audio.Resample(buf, cfg.Resample).Source()
	}

	if cfg.HighPass > 0 {
		if src, err = audio.NewHighPass(src, cfg.HighPass); err != nil {
			return nil, err
		}
	}

	if f.Prepare != nil {
		if src, err = f.Prepare(src, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
	}

	return src, nil
}

// Next returns the next decoded file, or io.EOF after the last one. A
// failing audio source is reported instead of io.EOF.
func (d *Decoder) Next() (decoding.OutputFile, error) {
	if d.err != nil {
		return decoding.OutputFile{}, d.err
	}

	f, err := d.dec.Next()
	if err == io.EOF {
		if cerr := d.conv.Err(); cerr != nil {
			err = cerr
		}
	}
	if err != nil {
		d.err = err
		return decoding.OutputFile{}, err
	}

	if d.obs != nil {
		d.obs.ObserveFile(f)
	}

	return f, nil
}

// All yields the remaining files. Iteration ends after the first error;
// io.EOF is not yielded.
func (d *Decoder) All() iter.Seq2[decoding.OutputFile, error] {
	return func(yield func(decoding.OutputFile, error) bool) {
		for {
			f, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(f, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the audio source.
func (d *Decoder) Close() error {
	if err := d.in.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// DecodeFile decodes every file of the recording at path.
func DecodeFile(path, format string, cfg Config) ([]decoding.OutputFile, error) {
	src, err := OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	d, err := NewDecoder(src, format, cfg)
	if err != nil {
		src.Close()
		return nil, err
	}
	defer d.Close()

	var files []decoding.OutputFile
	for f, err := range d.All() {
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}

	return files, nil
}
