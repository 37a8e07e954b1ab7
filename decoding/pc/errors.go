// SPDX-License-Identifier: EPL-2.0

package pc

import "errors"

var (
	ErrInvalidParams = errors.New("min_intro_half_periods must be positive")
	ErrNoSyncBit     = errors.New("sync bit not found")
	ErrNoSyncByte    = errors.New("sync byte not found")
)
