// SPDX-License-Identifier: EPL-2.0

package apple2

import (
	"errors"
	"fmt"

	"github.com/ik5/retrotape/decoding"
)

const (
	Format = "apple2generic"

	maxRecordSize = 1 << 16
	checksumSeed  = 0xff
	// BASIC programs are preceded by a record holding only their length.
	basicHeaderSize = 2
)

type Params struct {
	Sync decoding.FrequencyRange `yaml:"sync"`
	// SyncEnd is the band of both halves of the marker after the pilot tone.
	SyncEnd             decoding.FrequencyRange `yaml:"sync_end"`
	One                 decoding.FrequencyRange `yaml:"one"`
	Zero                decoding.FrequencyRange `yaml:"zero"`
	MinIntroHalfPeriods int                     `yaml:"min_intro_half_periods"`
}

func DefaultParams() Params {
	return Params{
		Sync:                decoding.FrequencyRange{Low: 680, High: 930},
		SyncEnd:             decoding.FrequencyRange{Low: 1700, High: 2800},
		One:                 decoding.FrequencyRange{Low: 850, High: 1200},
		Zero:                decoding.FrequencyRange{Low: 1500, High: 2950},
		MinIntroHalfPeriods: 200,
	}
}

func (p Params) Validate() error {
	if err := errors.Join(p.Sync.Validate(), p.SyncEnd.Validate(), p.One.Validate(), p.Zero.Validate()); err != nil {
		return fmt.Errorf("%s: %w", Format, err)
	}
	if p.MinIntroHalfPeriods < 1 {
		return fmt.Errorf("%s: %w", Format, ErrInvalidParams)
	}

	return nil
}
