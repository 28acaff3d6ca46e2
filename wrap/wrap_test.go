package wrap

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	random := make([]byte, 1<<16)
	for i := range random {
		random[i] = byte(rng.Intn(256))
	}

	inputs := []struct {
		desc string
		src  []byte
	}{
		{desc: "empty", src: nil},
		{desc: "tiny", src: []byte("?")},
		{desc: "text", src: bytes.Repeat([]byte("HelloHelloHello, world. "), 500)},
		{desc: "random", src: random},
	}
	for _, c := range Codecs() {
		for _, in := range inputs {
			t.Run(c.Name()+"/"+in.desc, func(t *testing.T) {
				packed, err := c.Compress(in.src)
				require.NoError(t, err)
				got, err := c.Decompress(packed)
				require.NoError(t, err)
				if len(in.src) == 0 {
					require.Empty(t, got)
					return
				}
				require.Equal(t, in.src, got)
			})
		}
	}
}

func TestCodecsGarbageInput(t *testing.T) {
	garbage := []byte("not a compressed stream of any kind, definitely not")
	for _, c := range Codecs() {
		t.Run(c.Name(), func(t *testing.T) {
			_, err := c.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestLookup(t *testing.T) {
	for _, c := range Codecs() {
		got, ok := Lookup(c.Name())
		require.True(t, ok)
		require.Equal(t, c.Name(), got.Name())
	}
	_, ok := Lookup("shrinkray")
	require.False(t, ok)
}
