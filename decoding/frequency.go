// SPDX-License-Identifier: EPL-2.0

package decoding

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ik5/retrotape/halfperiod"
)

// FrequencyRange is the half-open band [Low, High) in Hz.
type FrequencyRange struct {
	Low  float64
	High float64
}

// Contains reports whether f lies in the band.
func (r FrequencyRange) Contains(f float64) bool {
	return f >= r.Low && f < r.High
}

// Scaled multiplies both edges by f. Bands relative to a measured pilot
// tone are stored as factors and scaled once the tone is known.
func (r FrequencyRange) Scaled(f float64) FrequencyRange {
	return FrequencyRange{Low: r.Low * f, High: r.High * f}
}

func (r FrequencyRange) String() string {
	return fmt.Sprintf("[%g, %g)", r.Low, r.High)
}

// Validate rejects empty and negative bands.
func (r FrequencyRange) Validate() error {
	if r.Low < 0 || r.High <= r.Low {
		return fmt.Errorf("frequency range %v: %w", r, ErrInvalidRange)
	}

	return nil
}

// MarshalYAML writes the band as [low, high].
func (r FrequencyRange) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%g", r.Low)},
			{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%g", r.High)},
		},
	}, nil
}

// UnmarshalYAML reads the band from a two element sequence.
func (r *FrequencyRange) UnmarshalYAML(node *yaml.Node) error {
	var edges []float64
	if err := node.Decode(&edges); err != nil {
		return err
	}

	if len(edges) != 2 {
		return fmt.Errorf("line %d: frequency range needs 2 values, got %d: %w", node.Line, len(edges), ErrInvalidRange)
	}

	*r = FrequencyRange{Low: edges[0], High: edges[1]}

	return r.Validate()
}

// Is reports whether v is inside r.
func Is(v float64, r FrequencyRange) bool { return r.Contains(v) }

// IsNot reports whether v is outside r.
func IsNot(v float64, r FrequencyRange) bool { return !r.Contains(v) }

// Avg is the mean of two half-period frequencies.
func Avg(a, b float64) float64 { return (a + b) / 2 }

// BitByFrequency classifies v. ok is false when v is in neither band or in
// both.
func BitByFrequency(v float64, zero, one FrequencyRange) (bit bool, ok bool) {
	isZero := zero.Contains(v)
	isOne := one.Contains(v)
	if isZero == isOne {
		return false, false
	}

	return isOne, true
}

// ReadOscillation reads two half periods and returns their mean.
func ReadOscillation(p halfperiod.Provider) (float64, bool) {
	first, ok := p.Next()
	if !ok {
		return 0, false
	}
	second, ok := p.Next()
	if !ok {
		return 0, false
	}

	return Avg(first, second), true
}

// OscillationIs reads one oscillation and reports whether it lies in r.
func OscillationIs(p halfperiod.Provider, r FrequencyRange) bool {
	v, ok := ReadOscillation(p)
	return ok && r.Contains(v)
}
