// SPDX-License-Identifier: EPL-2.0

package lc80

import "errors"

var (
	ErrInvalidParams = errors.New("sync lengths must be positive")
	ErrShortHeader   = errors.New("header too short")
	ErrInvalidHeader = errors.New("end address before start address")
	ErrNoMidSync     = errors.New("did not find mid sync")
)
