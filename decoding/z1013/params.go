// SPDX-License-Identifier: EPL-2.0

package z1013

import (
	"errors"
	"fmt"

	"github.com/ik5/retrotape/decoding"
)

const (
	Format = "z1013generic"

	// block number, data, checksum
	blockSize = 2 + 32 + 2
)

type Params struct {
	One                 decoding.FrequencyRange `yaml:"one"`
	Zero                decoding.FrequencyRange `yaml:"zero"`
	Sync                decoding.FrequencyRange `yaml:"sync"`
	MinIntroHalfPeriods int                     `yaml:"min_intro_half_periods"`
	// MaxBlockGap in seconds between the ends of two blocks of a file.
	MaxBlockGap float64 `yaml:"max_block_gap"`
}

func DefaultParams() Params {
	return Params{
		One:                 decoding.FrequencyRange{Low: 1000, High: 1500},
		Zero:                decoding.FrequencyRange{Low: 2200, High: 2800},
		Sync:                decoding.FrequencyRange{Low: 300, High: 900},
		MinIntroHalfPeriods: 5,
		MaxBlockGap:         1,
	}
}

func (p Params) Validate() error {
	if err := errors.Join(p.One.Validate(), p.Zero.Validate(), p.Sync.Validate()); err != nil {
		return fmt.Errorf("%s: %w", Format, err)
	}
	if p.MinIntroHalfPeriods < 1 || p.MaxBlockGap <= 0 {
		return fmt.Errorf("%s: %w", Format, ErrInvalidParams)
	}

	return nil
}
