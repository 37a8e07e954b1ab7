// SPDX-License-Identifier: EPL-2.0

package apple2

import "errors"

var ErrInvalidParams = errors.New("min_intro_half_periods must be positive")
