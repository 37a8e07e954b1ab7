// SPDX-License-Identifier: EPL-2.0

package electron

import "errors"

var (
	ErrInvalidParams = errors.New("invalid sync parameters")
	ErrNoSyncByte    = errors.New("block does not start with 0x2a")
	ErrNoFileName    = errors.New("file name not terminated")
	ErrShortHeader   = errors.New("block header truncated")
)
