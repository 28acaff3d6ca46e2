package lzkit

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// A Window is the circular buffer decompression runs back-references
// against. It keeps the most recent Size bytes of produced output in a ring;
// bytes pushed out of the ring stream to Sink in production order, and Flush
// drains whatever is still buffered. The sink only ever sees appends, so any
// io.Writer works, growable buffers and sockets included.
//
// The ring is also directly addressable for formats that encode absolute
// in-window positions instead of back-distances: cells that have not been
// written yet read as Fill, and the write cursor begins at Start so encoded
// offsets line up with what legacy decoders expect.
//
// Copies run strictly byte-by-byte with the cursor advancing after each
// byte, so a reference that overlaps its own destination (length greater
// than distance) replicates the way the formats require.
type Window struct {
	// Size is the ring capacity in bytes, the window size of the format
	// being decoded. It must be at least 1.
	Size int

	// Start is the initial write position inside the ring, for formats
	// whose absolute offsets assume a biased starting cursor. It must lie
	// in [0, Size). Default 0.
	Start int

	// Fill is the value absolute reads see in ring cells that have not
	// been written yet. Default 0.
	Fill byte

	// Sink receives every produced byte exactly once, in production
	// order: as it is evicted from the ring, or at Flush.
	Sink io.Writer

	buf      []byte
	pos      int
	produced int
	flushed  int
	scratch  [1]byte
}

func (w *Window) init() {
	if w.buf != nil {
		return
	}
	if w.Size < 1 {
		panic(fmt.Sprintf("lzkit: window size %d; need at least 1", w.Size))
	}
	if w.Start < 0 || w.Start >= w.Size {
		panic(fmt.Sprintf("lzkit: window start %d outside [0, %d)", w.Start, w.Size))
	}
	if w.Sink == nil {
		panic("lzkit: window has no sink")
	}
	w.buf = make([]byte, w.Size)
	if w.Fill != 0 {
		for i := range w.buf {
			w.buf[i] = w.Fill
		}
	}
	w.pos = w.Start
}

// put appends one produced byte, evicting the oldest buffered byte to the
// sink once the ring is full.
func (w *Window) put(b byte) error {
	if w.produced >= w.Size && w.produced-w.Size >= w.flushed {
		w.scratch[0] = w.buf[w.pos]
		if _, err := w.Sink.Write(w.scratch[:]); err != nil {
			return err
		}
		w.flushed++
	}
	w.buf[w.pos] = b
	w.pos++
	if w.pos == w.Size {
		w.pos = 0
	}
	w.produced++
	return nil
}

// WriteByte appends a single literal byte.
func (w *Window) WriteByte(b byte) error {
	w.init()
	return w.put(b)
}

// Write appends a run of literal bytes. It implements io.Writer.
func (w *Window) Write(p []byte) (int, error) {
	w.init()
	for i, b := range p {
		if err := w.put(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// CopyBack copies length bytes starting distance bytes behind the write
// cursor. The referenced bytes must still be in the ring (distance in
// [1, Size]) and must actually have been produced; a violation reports the
// stream as corrupt rather than truncating silently.
func (w *Window) CopyBack(distance, length int) error {
	w.init()
	if distance < 1 || distance > w.Size {
		return errors.Wrapf(ErrWindowRange, "back-copy distance %d with window of %d", distance, w.Size)
	}
	if distance > w.produced {
		return errors.Wrapf(ErrLookBehind, "back-copy distance %d with only %d bytes produced", distance, w.produced)
	}
	if length < 0 {
		return errors.Wrapf(ErrWindowRange, "back-copy length %d", length)
	}
	src := w.pos - distance
	if src < 0 {
		src += w.Size
	}
	for ; length > 0; length-- {
		b := w.buf[src]
		if err := w.put(b); err != nil {
			return err
		}
		src++
		if src == w.Size {
			src = 0
		}
	}
	return nil
}

// CopyOffset copies length bytes starting at an absolute ring position,
// for formats that encode window offsets mod Size instead of distances.
// Cells never written read as Fill; legacy streams reference them on
// purpose, so that is not an error.
func (w *Window) CopyOffset(offset, length int) error {
	w.init()
	if offset < 0 || offset >= w.Size {
		return errors.Wrapf(ErrWindowRange, "window offset %d outside [0, %d)", offset, w.Size)
	}
	if length < 0 {
		return errors.Wrapf(ErrWindowRange, "copy length %d", length)
	}
	src := offset
	for ; length > 0; length-- {
		b := w.buf[src]
		if err := w.put(b); err != nil {
			return err
		}
		src++
		if src == w.Size {
			src = 0
		}
	}
	return nil
}

// CopyFrom streams length literal bytes from r into the window. A source
// that ends early reports ErrUnexpectedEOF with the shortfall.
func (w *Window) CopyFrom(r io.Reader, length int) (int, error) {
	w.init()
	if length < 0 {
		return 0, errors.Wrapf(ErrWindowRange, "copy length %d", length)
	}
	n, err := io.CopyN(w, r, int64(length))
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = errors.Wrapf(ErrUnexpectedEOF, "literal run ended after %d of %d bytes", n, length)
	}
	return int(n), err
}

// Flush writes the bytes still buffered in the ring to the sink. The window
// stays usable afterwards; flushing with nothing buffered is a no-op.
func (w *Window) Flush() error {
	n := w.produced - w.flushed
	if n == 0 {
		return nil
	}
	start := w.pos - n
	if start < 0 {
		start += w.Size
	}
	if start+n <= w.Size {
		if _, err := w.Sink.Write(w.buf[start : start+n]); err != nil {
			return err
		}
	} else {
		if _, err := w.Sink.Write(w.buf[start:]); err != nil {
			return err
		}
		if _, err := w.Sink.Write(w.buf[:n-(w.Size-start)]); err != nil {
			return err
		}
	}
	w.flushed = w.produced
	return nil
}

// Produced reports the total number of bytes written through the window,
// flushed or not. Decoders compare it against a format's declared size.
func (w *Window) Produced() int {
	return w.produced
}
