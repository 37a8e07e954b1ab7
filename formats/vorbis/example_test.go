// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/ik5/retrotape/audio"
	"github.com/ik5/retrotape/formats/vorbis"
)

// ExampleDecoder_Decode buffers a whole Ogg recording in memory.
func ExampleDecoder_Decode() {
	f, err := os.Open("tape.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d frames, %v\n", buf.Frames(), buf.Duration())
}

func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("not an ogg file")))
	fmt.Println(err != nil)
	// Output: true
}
