// SPDX-License-Identifier: EPL-2.0

package kc

import (
	"errors"
	"fmt"

	"github.com/ik5/retrotape/decoding"
)

const (
	Format = "kctap"

	blockSize = 130
	// block number and data, as written to KC-TAPE files
	outputBlockSize = 129

	// TapeHeader starts every KC-TAPE file.
	TapeHeader = "\xc3KC-TAPE by AF. "
)

// Params are the tunable parts of the decoder.
type Params struct {
	One       decoding.FrequencyRange `yaml:"one"`
	Zero      decoding.FrequencyRange `yaml:"zero"`
	Delimiter decoding.FrequencyRange `yaml:"delimiter"`
	// MinIntroHalfPeriods of the One band make a pilot tone.
	MinIntroHalfPeriods int `yaml:"min_intro_half_periods"`
	// MaxBlockGap in seconds between blocks of the same file.
	MaxBlockGap float64 `yaml:"max_block_gap"`
	// LowPass smooths the input before decoding. 0 disables it.
	LowPass float64 `yaml:"low_pass"`
}

func DefaultParams() Params {
	return Params{
		One:                 decoding.FrequencyRange{Low: 770, High: 1300},
		Zero:                decoding.FrequencyRange{Low: 1400, High: 2800},
		Delimiter:           decoding.FrequencyRange{Low: 500, High: 670},
		MinIntroHalfPeriods: 200,
		MaxBlockGap:         1,
		LowPass:             11025,
	}
}

func (p Params) Validate() error {
	if err := errors.Join(p.One.Validate(), p.Zero.Validate(), p.Delimiter.Validate()); err != nil {
		return fmt.Errorf("%s: %w", Format, err)
	}

	if p.MinIntroHalfPeriods < 1 || p.MaxBlockGap <= 0 || p.LowPass < 0 {
		return fmt.Errorf("%s: %w", Format, ErrInvalidParams)
	}

	return nil
}
