// SPDX-License-Identifier: EPL-2.0

package retrotape

import "errors"

var (
	ErrUnknownFormat    = errors.New("unknown tape format")
	ErrUnknownContainer = errors.New("unknown audio container")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
