// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrNotPCM              = errors.New("WAV data is not PCM")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrNoPCMData           = errors.New("WAV file has no data chunk")
)
