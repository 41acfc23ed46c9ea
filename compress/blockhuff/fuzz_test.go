//go:build go1.18
// +build go1.18

package blockhuff

import (
	"bytes"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("AAABBC"))
	f.Add([]byte{})
	f.Add(makeTestData(4096, 9))
	f.Fuzz(func(t *testing.T, source []byte) {
		for _, blockSize := range []int{1, 2, 3} {
			enc, err := Encode(source, blockSize)
			if err != nil {
				t.Fatal(err)
			}
			data, err := Decode(enc, blockSize)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(data, padded(source, blockSize)) {
				t.Fatal(blockSize, len(data), len(source))
			}
		}
	})
}
