// SPDX-License-Identifier: EPL-2.0

// Package retrotape recovers files from audio recordings of home computer
// cassette tapes.
//
// A recording is opened through the container decoders in formats/ (WAV,
// AIFF, MP3, Ogg Vorbis, optionally gzip or zstd compressed), reduced to
// one channel, turned into a stream of half period frequencies and handed
// to one of the machine decoders under decoding/:
//
//	kctap            KC 85/1, KC 85/2-4, KC 87
//	lc80generic      LC80
//	electrongeneric  Acorn Electron, BBC Micro
//	apple2generic    Apple II
//	pcgeneric        IBM PC, PCjr
//	z1013generic     Robotron Z1013
//
// Decoding pulls one file at a time:
//
//	src, _ := retrotape.OpenFile("tape.wav", nil)
//	d, _ := retrotape.NewDecoder(src, "kctap", retrotape.DefaultConfig())
//	defer d.Close()
//	for f, err := range d.All() {
//	    ...
//	}
//
// Broken blocks are handled by Config.OnError: ignore keeps the file and
// marks it, skipfile drops it, stop ends decoding with a
// *decoding.DecodingError.
//
// Every frequency band is configurable. LoadConfig reads YAML over
// DefaultConfig:
//
//	on_error: skipfile
//	channel: 1
//	kc:
//	  one: [770, 1300]
//	  low_pass: 0
//
// Metrics counts files, blocks and bytes per format for prometheus; hook
// it in through Config.Observer.
package retrotape
