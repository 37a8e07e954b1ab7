// SPDX-License-Identifier: EPL-2.0

package lc80

import (
	"errors"
	"fmt"

	"github.com/ik5/retrotape/decoding"
)

const Format = "lc80generic"

type Params struct {
	Short               decoding.FrequencyRange `yaml:"short"`
	Long                decoding.FrequencyRange `yaml:"long"`
	MinIntroHalfPeriods int                     `yaml:"min_intro_half_periods"`
	MinMidHalfPeriods   int                     `yaml:"min_mid_half_periods"`
}

func DefaultParams() Params {
	return Params{
		Short:               decoding.FrequencyRange{Low: 1300, High: 2300},
		Long:                decoding.FrequencyRange{Low: 600, High: 1300},
		MinIntroHalfPeriods: 200,
		MinMidHalfPeriods:   10,
	}
}

func (p Params) Validate() error {
	if err := errors.Join(p.Short.Validate(), p.Long.Validate()); err != nil {
		return fmt.Errorf("%s: %w", Format, err)
	}
	if p.MinIntroHalfPeriods < 1 || p.MinMidHalfPeriods < 1 {
		return fmt.Errorf("%s: %w", Format, ErrInvalidParams)
	}

	return nil
}
