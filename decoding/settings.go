// SPDX-License-Identifier: EPL-2.0

package decoding

import (
	"fmt"
	"log/slog"

	"github.com/ik5/retrotape/halfperiod"
)

// ErrorPolicy selects what happens to files with broken blocks.
type ErrorPolicy int

const (
	// Ignore keeps broken files, marked with status Error.
	Ignore ErrorPolicy = iota
	// SkipFile drops broken files.
	SkipFile
	// Stop ends decoding at the first broken block.
	Stop
)

func (p ErrorPolicy) String() string {
	switch p {
	case Ignore:
		return "ignore"
	case SkipFile:
		return "skipfile"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// ParseErrorPolicy converts a string to an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "ignore":
		return Ignore, nil
	case "skipfile":
		return SkipFile, nil
	case "stop":
		return Stop, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidPolicy)
	}
}

// MarshalYAML implements yaml.Marshaler for ErrorPolicy
func (p ErrorPolicy) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ErrorPolicy
func (p *ErrorPolicy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	return p.Set(s)
}

// Set parses s into p, so an ErrorPolicy can be used as a flag value.
func (p *ErrorPolicy) Set(s string) error {
	policy, err := ParseErrorPolicy(s)
	if err != nil {
		return err
	}

	*p = policy
	return nil
}

func (p *ErrorPolicy) Type() string { return "policy" }

// Settings are the options shared by all decoders. They are not modified
// during a run.
type Settings struct {
	OnError ErrorPolicy
	// Skip drops this many frames at the start of the input.
	Skip uint64
	// Channel selects the input channel. nil picks the first one.
	Channel  *int
	Logger   *slog.Logger
	Observer BlockObserver
}

// Log returns the configured logger or one that discards everything.
func (s Settings) Log() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return s.Logger
}

func (s Settings) observe(b Block) {
	if s.Observer != nil {
		s.Observer.ObserveBlock(b)
	}
}

// PosAttr is the log attribute for a tape position.
func PosAttr(p halfperiod.Position) slog.Attr {
	return slog.String("pos", p.String())
}
