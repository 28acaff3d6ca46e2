package lzkit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowOverlappingRun(t *testing.T) {
	var out bytes.Buffer
	w := &Window{Size: 4096, Sink: &out}

	require.NoError(t, w.WriteByte(0x41))
	require.NoError(t, w.CopyBack(1, 100))
	require.NoError(t, w.Flush())

	require.Equal(t, bytes.Repeat([]byte{0x41}, 101), out.Bytes())
	require.Equal(t, 101, w.Produced())
}

func TestWindowCopyBack(t *testing.T) {
	var out bytes.Buffer
	w := &Window{Size: 4096, Sink: &out}

	_, err := w.Write([]byte("abcdef"))
	require.NoError(t, err)
	require.NoError(t, w.CopyBack(3, 3))
	require.NoError(t, w.Flush())

	require.Equal(t, "abcdefdef", out.String())
}

func TestWindowEvictionOrder(t *testing.T) {
	// A ring much smaller than the output: bytes must reach the sink in
	// production order, partly by eviction, partly by the final flush.
	var out bytes.Buffer
	w := &Window{Size: 8, Sink: &out}

	_, err := w.Write([]byte("ABCDEFGH"))
	require.NoError(t, err)
	_, err = w.Write([]byte("IJ"))
	require.NoError(t, err)
	require.NoError(t, w.CopyBack(3, 2))
	require.NoError(t, w.Flush())

	require.Equal(t, "ABCDEFGHIJHI", out.String())
}

func TestWindowLargeOutputThroughSmallRing(t *testing.T) {
	var out bytes.Buffer
	w := &Window{Size: 16, Sink: &out}

	var want []byte
	for i := 0; i < 1000; i++ {
		b := byte(i % 251)
		require.NoError(t, w.WriteByte(b))
		want = append(want, b)
	}
	require.NoError(t, w.CopyBack(16, 16))
	want = append(want, want[len(want)-16:]...)
	require.NoError(t, w.Flush())

	require.Equal(t, want, out.Bytes())
}

func TestWindowCopyBackCorruption(t *testing.T) {
	var out bytes.Buffer
	w := &Window{Size: 16, Sink: &out}

	err := w.CopyBack(1, 1)
	require.ErrorIs(t, err, ErrLookBehind)

	_, err = w.Write([]byte("xyz"))
	require.NoError(t, err)

	require.ErrorIs(t, w.CopyBack(4, 1), ErrLookBehind)
	require.ErrorIs(t, w.CopyBack(0, 1), ErrWindowRange)
	require.ErrorIs(t, w.CopyBack(17, 1), ErrWindowRange)
	require.ErrorIs(t, w.CopyBack(2, -1), ErrWindowRange)

	// The failed copies must not have produced anything.
	require.NoError(t, w.Flush())
	require.Equal(t, "xyz", out.String())
}

func TestWindowCopyOffsetPrefill(t *testing.T) {
	// Absolute addressing with a biased start cursor: reads of unwritten
	// cells see the fill byte, then the freshly written cells, with the
	// destination cursor wrapping around the ring.
	var out bytes.Buffer
	w := &Window{Size: 16, Start: 12, Fill: 0x20, Sink: &out}

	require.NoError(t, w.CopyOffset(0, 3))
	require.NoError(t, w.WriteByte('X'))
	require.NoError(t, w.CopyOffset(12, 4))
	require.NoError(t, w.Flush())

	require.Equal(t, []byte{0x20, 0x20, 0x20, 'X', 0x20, 0x20, 0x20, 'X'}, out.Bytes())
}

func TestWindowCopyOffsetChasesCursor(t *testing.T) {
	// An offset copy whose source runs into cells it is itself writing:
	// the classic in-ring run encoding. Every read must see the byte
	// written the iteration before.
	var out bytes.Buffer
	w := &Window{Size: 16, Sink: &out}

	require.NoError(t, w.WriteByte('Z'))
	require.NoError(t, w.CopyOffset(0, 5))
	require.NoError(t, w.Flush())

	require.Equal(t, "ZZZZZZ", out.String())
}

func TestWindowCopyOffsetRange(t *testing.T) {
	var out bytes.Buffer
	w := &Window{Size: 16, Sink: &out}

	require.ErrorIs(t, w.CopyOffset(16, 1), ErrWindowRange)
	require.ErrorIs(t, w.CopyOffset(-1, 1), ErrWindowRange)
	require.ErrorIs(t, w.CopyOffset(0, -2), ErrWindowRange)
}

func TestWindowCopyFrom(t *testing.T) {
	var out bytes.Buffer
	w := &Window{Size: 16, Sink: &out}

	n, err := w.CopyFrom(strings.NewReader("hello"), 5)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = w.CopyFrom(strings.NewReader("he"), 5)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	require.Equal(t, 2, n)

	require.NoError(t, w.Flush())
	require.Equal(t, "hellohe", out.String())
}

func TestWindowFlushIdempotent(t *testing.T) {
	var out bytes.Buffer
	w := &Window{Size: 8, Sink: &out}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	require.NoError(t, w.Flush())
	require.Equal(t, "abc", out.String())

	// The window stays usable after a flush.
	require.NoError(t, w.WriteByte('d'))
	require.NoError(t, w.Flush())
	require.Equal(t, "abcd", out.String())
}

func TestWindowConfigPanics(t *testing.T) {
	var out bytes.Buffer

	assert.Panics(t, func() {
		w := &Window{Size: 0, Sink: &out}
		_ = w.WriteByte(0)
	})
	assert.Panics(t, func() {
		w := &Window{Size: 8, Start: 8, Sink: &out}
		_ = w.WriteByte(0)
	})
	assert.Panics(t, func() {
		w := &Window{Size: 8}
		_ = w.WriteByte(0)
	})
}

func TestSizeMismatchError(t *testing.T) {
	err := SizeMismatch(1024, 1000)
	require.ErrorIs(t, err, ErrSizeMismatch)
	require.Contains(t, err.Error(), "1024")
	require.Contains(t, err.Error(), "1000")
	require.False(t, errors.Is(err, ErrLookBehind))
}
