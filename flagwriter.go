package lzkit

import (
	"encoding/binary"
	"fmt"
)

// A FlagWriter is the encode-side counterpart of FlagReader. Flag bits
// accumulate into a unit while the payload bytes written alongside them
// collect in an auxiliary buffer; when the group closes, the unit is emitted
// followed by its payload ("all flag bits for the group, then their
// payload"). A full unit is held open until the next bit arrives, so payload
// written after a group's final bit still lands in that group, the same
// ordering the reserved-slot writers in legacy encoders produce.
//
// Writes cannot fail; the encoded stream is collected with Bytes.
type FlagWriter struct {
	// Unit is the accumulator width in bytes: 1 (default), 2 or 4.
	Unit int

	// Order is the bit order within a unit. Default MSBFirst.
	Order BitOrder

	// ByteOrder is the byte order of multi-byte units.
	// Default little-endian.
	ByteOrder binary.ByteOrder

	out     []byte
	pending []byte
	acc     uint32
	nbits   int
}

func (w *FlagWriter) unitBits() int {
	switch w.Unit {
	case 0, 1:
		return 8
	case 2:
		return 16
	case 4:
		return 32
	}
	panic(fmt.Sprintf("lzkit: flag unit of %d bytes not supported", w.Unit))
}

func (w *FlagWriter) byteOrder() binary.ByteOrder {
	if w.ByteOrder == nil {
		return binary.LittleEndian
	}
	return w.ByteOrder
}

// WriteBit appends one flag bit, closing the previous group first if its
// unit is already full.
func (w *FlagWriter) WriteBit(bit bool) {
	if w.nbits == w.unitBits() {
		w.emitGroup()
	}
	if w.Order == LSBFirst {
		if bit {
			w.acc |= 1 << w.nbits
		}
	} else {
		w.acc <<= 1
		if bit {
			w.acc |= 1
		}
	}
	w.nbits++
}

// WriteBits appends the n least significant bits of v, most significant
// first. n must be at most 32.
func (w *FlagWriter) WriteBits(v uint32, n int) {
	if n < 0 || n > 32 {
		panic(fmt.Sprintf("lzkit: cannot write %d flag bits", n))
	}
	for i := n - 1; i >= 0; i-- {
		w.WriteBit(v>>i&1 != 0)
	}
}

// WriteBitsLSB appends the n least significant bits of v, least significant
// first.
func (w *FlagWriter) WriteBitsLSB(v uint32, n int) {
	if n < 0 || n > 32 {
		panic(fmt.Sprintf("lzkit: cannot write %d flag bits", n))
	}
	for i := 0; i < n; i++ {
		w.WriteBit(v>>i&1 != 0)
	}
}

// WriteByte queues one payload byte behind the current group's flag bits.
func (w *FlagWriter) WriteByte(b byte) {
	w.pending = append(w.pending, b)
}

// emitGroup writes the completed flag unit and its payload to the output.
func (w *FlagWriter) emitGroup() {
	acc := w.acc
	if w.Order == MSBFirst && w.nbits < w.unitBits() {
		// Pad the trailing partial group: first-written bits stay at
		// the most significant end, pad bits are 0.
		acc <<= uint(w.unitBits() - w.nbits)
	}
	var buf [4]byte
	switch w.unitBits() / 8 {
	case 1:
		buf[0] = byte(acc)
		w.out = append(w.out, buf[0])
	case 2:
		w.byteOrder().PutUint16(buf[:2], uint16(acc))
		w.out = append(w.out, buf[:2]...)
	case 4:
		w.byteOrder().PutUint32(buf[:4], acc)
		w.out = append(w.out, buf[:4]...)
	}
	w.out = append(w.out, w.pending...)
	w.pending = w.pending[:0]
	w.acc = 0
	w.nbits = 0
}

// FlushPending emits any group that can be closed without padding: a full
// unit waiting for its successor, or payload queued with no flag bits at
// all. Encoders call it at natural boundaries to bound buffering.
func (w *FlagWriter) FlushPending() {
	if w.nbits == w.unitBits() {
		w.emitGroup()
		return
	}
	if w.nbits == 0 && len(w.pending) > 0 {
		w.out = append(w.out, w.pending...)
		w.pending = w.pending[:0]
	}
}

// Flush closes the stream: a trailing partial group is padded with 0 bits,
// trailing payload is emitted even when no bits accompany it. Flush is
// idempotent, so it is safe to call on every exit path.
func (w *FlagWriter) Flush() {
	if w.nbits > 0 {
		w.emitGroup()
	} else if len(w.pending) > 0 {
		w.out = append(w.out, w.pending...)
		w.pending = w.pending[:0]
	}
}

// Bytes flushes and returns the encoded stream. The returned slice aliases
// the writer's buffer and is valid until the next Reset.
func (w *FlagWriter) Bytes() []byte {
	w.Flush()
	return w.out
}

// Reset discards all buffered state so the writer can encode a new stream.
func (w *FlagWriter) Reset() {
	w.out = w.out[:0]
	w.pending = w.pending[:0]
	w.acc = 0
	w.nbits = 0
}
