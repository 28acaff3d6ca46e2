package lzss

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gamearc/lzkit"
)

func roundTrip(t *testing.T, src []byte, opts *Options) {
	t.Helper()
	packed, err := Compress(src, opts)
	require.NoError(t, err)
	got, err := Decompress(packed, len(src), opts)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	random := make([]byte, 3000)
	for i := range random {
		random[i] = byte(rng.Intn(256))
	}

	testCases := []struct {
		desc string
		src  []byte
	}{
		{desc: "empty", src: nil},
		{desc: "single byte", src: []byte{0x7F}},
		{desc: "short text", src: []byte("no matches here!")},
		{desc: "repeated triple", src: []byte("ABCABCABC")},
		{desc: "long run", src: bytes.Repeat([]byte{0xAA}, 5000)},
		{desc: "periodic", src: bytes.Repeat([]byte("tile-row "), 700)},
		{desc: "random", src: random},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			roundTrip(t, tc.src, nil)
			roundTrip(t, tc.src, &Options{Fill: 0x20, Level: lzkit.LevelOptimal, LookAhead: true})
			roundTrip(t, tc.src, &Options{Level: lzkit.LevelFastest})
		})
	}
}

func TestRoundTripStoredLevel(t *testing.T) {
	// LevelNone stores everything literally but must still decode.
	src := bytes.Repeat([]byte("AB"), 500)
	packed, err := Compress(src, &Options{Level: lzkit.LevelNone})
	require.NoError(t, err)
	require.Greater(t, len(packed), len(src))
	got, err := Decompress(packed, len(src), nil)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestCompressKnownVector(t *testing.T) {
	// "AAAAAA": one literal, then a length-5 pointer at distance 1. The
	// ring cursor starts at 0xFEE, so the pointer names cell 0xFEE.
	packed, err := Compress([]byte("AAAAAA"), nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 'A', 0xEE, 0xF2}, packed)
}

func TestDecompressPrefillPointer(t *testing.T) {
	// A pointer into never-written window cells yields the fill byte;
	// text-era containers encode leading space runs exactly like this.
	src := []byte{0x00, 0x00, 0x0F}
	got, err := Decompress(src, 18, &Options{Fill: 0x20})
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0x20}, 18), got)
}

func TestDecompressTruncated(t *testing.T) {
	packed, err := Compress(bytes.Repeat([]byte("spritedata"), 100), nil)
	require.NoError(t, err)

	_, err = Decompress(packed[:len(packed)-2], 1000, nil)
	require.ErrorIs(t, err, lzkit.ErrUnexpectedEOF)

	_, err = Decompress(nil, 1, nil)
	require.ErrorIs(t, err, lzkit.ErrUnexpectedEOF)
}

func TestDecompressDeclaredSizeTooSmall(t *testing.T) {
	// Stream: literal 'A', then a pointer producing 5 more bytes. A
	// container claiming only 2 bytes is lying about one or the other.
	packed, err := Compress([]byte("AAAAAA"), nil)
	require.NoError(t, err)

	_, err = Decompress(packed, 2, nil)
	require.ErrorIs(t, err, lzkit.ErrSizeMismatch)
}

func TestDecompressNegativeLength(t *testing.T) {
	_, err := Decompress([]byte{0x01, 'A'}, -1, nil)
	require.Error(t, err)
}

func TestDecompressIgnoresPadding(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog")
	packed, err := Compress(src, nil)
	require.NoError(t, err)

	padded := append(append([]byte{}, packed...), 0xCD, 0xCD, 0xCD)
	got, err := Decompress(padded, len(src), nil)
	require.NoError(t, err)
	require.Equal(t, src, got)
}
