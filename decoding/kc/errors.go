// SPDX-License-Identifier: EPL-2.0

package kc

import "errors"

var (
	ErrInvalidParams = errors.New("intro length, block gap and low pass must be positive")
	ErrNoDelimiter   = errors.New("unable to find delimiter")
)
