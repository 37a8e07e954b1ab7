// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/ik5/retrotape/audio"
	"github.com/ik5/retrotape/formats/mp3"
)

// ExampleDecoder_Decode picks the left channel of an MP3 recording.
func ExampleDecoder_Decode() {
	f, err := os.Open("tape.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	left, err := audio.NewChannelSelector(src, 0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d channel\n", left.SampleRate(), left.Channels())
}

func ExampleDecoder_Decode_errorHandling() {
	_, err := mp3.Decoder{}.Decode(bytes.NewReader([]byte("not an mp3 file")))
	fmt.Println(err != nil)
	// Output: true
}
