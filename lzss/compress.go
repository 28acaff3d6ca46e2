package lzss

import "github.com/gamearc/lzkit"

// Compress encodes src and returns the compressed stream. Options nil means
// DefaultOptions. The output carries no size field; keep len(src) wherever
// the container records it.
func Compress(src []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	matches := lzkit.FindMatchesParallel(src, constraints, opts.LookAhead, opts.Level)

	w := &lzkit.FlagWriter{Order: lzkit.LSBFirst}
	pos := 0
	for _, m := range matches {
		for ; pos < m.Offset; pos++ {
			w.WriteBit(true)
			w.WriteByte(src[pos])
		}
		// The source's ring position when the cursor sits at m.Offset.
		off := (WindowStart + m.Offset - m.Distance) & (WindowSize - 1)
		w.WriteBit(false)
		w.WriteByte(byte(off))
		w.WriteByte(byte(off>>4&0xF0) | byte(m.Length-MinMatch))
		pos = m.End()
	}
	for ; pos < len(src); pos++ {
		w.WriteBit(true)
		w.WriteByte(src[pos])
	}

	return w.Bytes(), nil
}
