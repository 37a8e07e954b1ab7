// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelSelector extracts a single channel from an interleaved source.
type ChannelSelector struct {
	src     Source
	channel int
	tmp     []float32
}

// NewChannelSelector returns a mono view of channel (0 based) of src.
func NewChannelSelector(src Source, channel int) (*ChannelSelector, error) {
	if channel < 0 || channel >= src.Channels() {
		return nil, fmt.Errorf("channel %d of %d: %w", channel, src.Channels(), ErrChannelOutOfRange)
	}

	return &ChannelSelector{
		src:     src,
		channel: channel,
		tmp:     make([]float32, 4096),
	}, nil
}

func (c *ChannelSelector) SampleRate() int { return c.src.SampleRate() }
func (c *ChannelSelector) Channels() int   { return 1 }
func (c *ChannelSelector) BufSize() int    { return c.src.BufSize() }

func (c *ChannelSelector) Close() error {
	if err := c.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (c *ChannelSelector) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := c.src.Channels()
	if channels == 1 {
		return c.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(c.tmp) < needed {
		c.tmp = make([]float32, needed)
	}
	c.tmp = c.tmp[:needed]

	n, err := c.src.ReadSamples(c.tmp)
	frames := n / channels
	for f := range frames {
		dst[f] = c.tmp[f*channels+c.channel]
	}

	return frames, err
}
