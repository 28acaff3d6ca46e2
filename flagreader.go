package lzkit

import (
	"encoding/binary"
	"fmt"
	"io"
)

// BitOrder selects which end of a flag unit bits are consumed from.
type BitOrder int

const (
	// MSBFirst consumes bits from the most significant end of each unit.
	MSBFirst BitOrder = iota

	// LSBFirst consumes bits from the least significant end.
	LSBFirst
)

// A FlagReader decodes the decision-bit stream most legacy formats interleave
// with their payload bytes: flag bits are packed into 1-, 2- or 4-byte units,
// payload bytes sit between units in the same stream. Flag units are fetched
// lazily, on the first bit request after the previous unit is exhausted, so
// payload reads between groups land on the right bytes.
//
// A FlagReader is single-use, single-goroutine state; each decode call owns
// its own instance.
type FlagReader struct {
	// Src is the compressed input cursor shared with payload reads.
	Src io.ByteReader

	// Unit is the accumulator width in bytes: 1 (default), 2 or 4.
	Unit int

	// Order is the bit order within a unit. Default MSBFirst.
	Order BitOrder

	// ByteOrder is the byte order of multi-byte units.
	// Default little-endian.
	ByteOrder binary.ByteOrder

	acc   uint32
	nbits int
}

func (r *FlagReader) unitBits() int {
	switch r.Unit {
	case 0, 1:
		return 8
	case 2:
		return 16
	case 4:
		return 32
	}
	panic(fmt.Sprintf("lzkit: flag unit of %d bytes not supported", r.Unit))
}

func (r *FlagReader) byteOrder() binary.ByteOrder {
	if r.ByteOrder == nil {
		return binary.LittleEndian
	}
	return r.ByteOrder
}

func (r *FlagReader) refill() error {
	var buf [4]byte
	n := r.unitBits() / 8
	for i := 0; i < n; i++ {
		b, err := r.Src.ReadByte()
		if err != nil {
			if err == io.EOF {
				return ErrUnexpectedEOF
			}
			return err
		}
		buf[i] = b
	}
	switch n {
	case 1:
		r.acc = uint32(buf[0])
	case 2:
		r.acc = uint32(r.byteOrder().Uint16(buf[:2]))
	case 4:
		r.acc = r.byteOrder().Uint32(buf[:4])
	}
	r.nbits = r.unitBits()
	return nil
}

// ReadBit returns the next flag bit, fetching a fresh unit from Src when the
// current one is exhausted.
func (r *FlagReader) ReadBit() (bool, error) {
	if r.nbits == 0 {
		if err := r.refill(); err != nil {
			return false, err
		}
	}
	var bit uint32
	if r.Order == LSBFirst {
		bit = r.acc & 1
		r.acc >>= 1
	} else {
		bit = (r.acc >> (r.nbits - 1)) & 1
	}
	r.nbits--
	return bit != 0, nil
}

// ReadBits composes n consecutive flag bits into an unsigned integer,
// first bit read in the most significant position. n must be at most 32.
func (r *FlagReader) ReadBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		panic(fmt.Sprintf("lzkit: cannot read %d flag bits", n))
	}
	var v uint32
	for i := 0; i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, nil
}

// ReadBitsLSB composes n consecutive flag bits into an unsigned integer,
// first bit read in the least significant position.
func (r *FlagReader) ReadBitsLSB(n int) (uint32, error) {
	if n < 0 || n > 32 {
		panic(fmt.Sprintf("lzkit: cannot read %d flag bits", n))
	}
	var v uint32
	for i := 0; i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			v |= 1 << i
		}
	}
	return v, nil
}

// Align discards any partially consumed flag unit. Formats that realign to a
// byte boundary mid-stream call this before continuing.
func (r *FlagReader) Align() {
	r.acc = 0
	r.nbits = 0
}

// ReadByte reads one payload byte from the underlying source, bypassing the
// flag accumulator. Exhaustion surfaces as ErrUnexpectedEOF: decoders only
// ask for payload they still owe the declared output.
func (r *FlagReader) ReadByte() (byte, error) {
	b, err := r.Src.ReadByte()
	if err == io.EOF {
		return 0, ErrUnexpectedEOF
	}
	return b, err
}
