// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV recordings through
// github.com/go-audio/wav.
//
// Decoding supports 8, 16, 24 and 32 bit PCM with any number of channels.
// 8 bit WAV samples are unsigned; they are recentred around zero like the
// other depths:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a WAV file
//	}
//
// Encode writes mono PCM. It needs an io.WriteSeeker because the sizes in
// the header are patched once all samples are written:
//
//	f, _ := os.Create("tape.wav")
//	defer f.Close()
//	err := wav.Encode(f, 44100, 16, samples)
package wav
