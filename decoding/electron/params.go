// SPDX-License-Identifier: EPL-2.0

package electron

import (
	"errors"
	"fmt"

	"github.com/ik5/retrotape/decoding"
)

const Format = "electrongeneric"

// Params holds the bands as factors of the measured carrier frequency.
type Params struct {
	One                  decoding.FrequencyRange `yaml:"one"`
	Zero                 decoding.FrequencyRange `yaml:"zero"`
	MinIntroHalfPeriods  int                     `yaml:"min_intro_half_periods"`
	MaxRelativeDeviation float64                 `yaml:"max_relative_deviation"`
}

func DefaultParams() Params {
	return Params{
		One:                  decoding.FrequencyRange{Low: 0.75, High: 1.5},
		Zero:                 decoding.FrequencyRange{Low: 0.25, High: 0.75},
		MinIntroHalfPeriods:  200,
		MaxRelativeDeviation: 0.3,
	}
}

func (p Params) Validate() error {
	if err := errors.Join(p.One.Validate(), p.Zero.Validate()); err != nil {
		return fmt.Errorf("%s: %w", Format, err)
	}
	if p.MinIntroHalfPeriods < 1 || p.MaxRelativeDeviation <= 0 || p.MaxRelativeDeviation >= 1 {
		return fmt.Errorf("%s: %w", Format, ErrInvalidParams)
	}

	return nil
}
