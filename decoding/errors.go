// SPDX-License-Identifier: EPL-2.0

package decoding

import (
	"errors"

	"github.com/ik5/retrotape/halfperiod"
)

var (
	// ErrBlockStartNotFound means a pilot tone was found but no block
	// followed it. Block decoders retry at the next pilot tone.
	ErrBlockStartNotFound = errors.New("block start not found")

	// ErrStopped is wrapped by the DecodingError returned under the stop
	// policy.
	ErrStopped = errors.New("stopping")

	ErrStartBit       = errors.New("unable to detect start bit")
	ErrStopBit        = errors.New("unable to detect stop bit")
	ErrBitNotDetected = errors.New("unable to detect bit")

	ErrInvalidRange  = errors.New("invalid frequency range")
	ErrInvalidPolicy = errors.New("unknown error policy")
)

// DecodingError is an unrecoverable decoding failure at a known position.
type DecodingError struct {
	Pos halfperiod.Position
	Msg string
	Err error
}

func (e *DecodingError) Error() string {
	msg := e.Pos.String() + " " + e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *DecodingError) Unwrap() error { return e.Err }
