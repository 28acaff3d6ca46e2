package rle

import "github.com/gamearc/lzkit"

// Compress encodes src. Run discovery is a single linear scan with no
// dictionary and no effort knob, so unlike the LZ coders there is nothing
// to configure and nothing that can fail.
func Compress(src []byte) []byte {
	w := &lzkit.FlagWriter{Order: lzkit.MSBFirst}

	lit := 0
	for pos := 0; pos < len(src); {
		n := runLength(src, pos)
		if n >= MinRun {
			writeLiterals(w, src[lit:pos])
			w.WriteBit(true)
			w.WriteByte(byte(n - MinRun))
			w.WriteByte(src[pos])
			lit = pos + n
		}
		// A shorter repeat cannot hide a longer run in its tail, so the
		// scan may hop over it whole.
		pos += n
	}
	writeLiterals(w, src[lit:])

	return w.Bytes()
}

// runLength counts identical bytes starting at pos, capped at MaxRun.
func runLength(src []byte, pos int) int {
	b := src[pos]
	n := 1
	for pos+n < len(src) && n < MaxRun && src[pos+n] == b {
		n++
	}
	return n
}

func writeLiterals(w *lzkit.FlagWriter, lit []byte) {
	for len(lit) > 0 {
		n := len(lit)
		if n > MaxLiteral {
			n = MaxLiteral
		}
		w.WriteBit(false)
		w.WriteByte(byte(n - 1))
		for _, b := range lit[:n] {
			w.WriteByte(b)
		}
		lit = lit[n:]
	}
}
