// SPDX-License-Identifier: EPL-2.0

package z1013

import "errors"

var (
	ErrInvalidParams = errors.New("sync length and block gap must be positive")
	ErrNoDelimiter   = errors.New("no delimiter after sync")
)
