// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrChannelOutOfRange = errors.New("selected channel does not exist in input")
	ErrSkipExceedsInput  = errors.New("number of samples to skip exceeds input length")
	ErrInvalidFrequency  = errors.New("filter frequency must be positive")
)
