// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample level building blocks in front of the
// tape decoders.
//
//   - Source interface for audio input
//   - Registry of container decoders, selectable by file extension
//   - ChannelSelector picks one channel of an interleaved recording
//   - Skipper drops the leader of a recording
//   - Filter is a moving average low or high pass
//   - Buffer holds a whole recording and replays it from memory
//   - Resample changes the sample rate of a Buffer
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources are chained: a container decoder feeds a ChannelSelector, which
// feeds a Skipper and so on.
//
//	src, _ := wav.Decoder{}.Decode(f)
//	mono, _ := audio.NewChannelSelector(src, 0)
//	smooth, _ := audio.NewLowPass(audio.NewSkipper(mono, 44100), 11025)
//
// # Channels
//
// Tape recordings are usually mono on both channels, with one channel
// often cleaner than the other. Mixing channels can cancel a signal that
// was recorded with inverted phase, so this package only selects.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]. The decoders only look at
// zero crossings, so absolute levels matter as far as the hysteresis of the
// half period converter goes.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
