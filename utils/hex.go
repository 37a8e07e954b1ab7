// SPDX-License-Identifier: EPL-2.0

package utils

import "fmt"

// Hex8 formats v as two upper case hex digits.
func Hex8(v byte) string {
	return fmt.Sprintf("%02X", v)
}

// Hex16 formats v as four upper case hex digits.
func Hex16(v uint16) string {
	return fmt.Sprintf("%04X", v)
}
