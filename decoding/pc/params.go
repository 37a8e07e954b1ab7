// SPDX-License-Identifier: EPL-2.0

package pc

import (
	"errors"
	"fmt"

	"github.com/ik5/retrotape/decoding"
)

const (
	Format = "pcgeneric"

	syncByte  = 0x16
	blockData = 256
	blockSize = blockData + 2
	// trailing 0xff bytes after the last block
	maxTrailer = 4
)

type Params struct {
	One                 decoding.FrequencyRange `yaml:"one"`
	Zero                decoding.FrequencyRange `yaml:"zero"`
	MinIntroHalfPeriods int                     `yaml:"min_intro_half_periods"`
}

func DefaultParams() Params {
	return Params{
		One:                 decoding.FrequencyRange{Low: 800, High: 1200},
		Zero:                decoding.FrequencyRange{Low: 1600, High: 2400},
		MinIntroHalfPeriods: 200,
	}
}

func (p Params) Validate() error {
	if err := errors.Join(p.One.Validate(), p.Zero.Validate()); err != nil {
		return fmt.Errorf("%s: %w", Format, err)
	}
	if p.MinIntroHalfPeriods < 1 {
		return fmt.Errorf("%s: %w", Format, ErrInvalidParams)
	}

	return nil
}
