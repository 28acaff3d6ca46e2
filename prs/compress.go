package prs

import "github.com/gamearc/lzkit"

// Compress encodes src, terminator included. Options nil means
// DefaultOptions.
//
// The finder is driven interactively, one position at a time, because arm
// selection feeds back into how far the cursor advances; the deferred
// positions of lazy matching fall out of the same loop.
func Compress(src []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	f := &lzkit.Finder{Constraints: constraints, Level: opts.Level, LookAhead: opts.LookAhead}
	f.Reset(src)
	w := &lzkit.FlagWriter{Order: lzkit.LSBFirst}

	pos := 0
	for pos < len(src) {
		m, ok := f.TryFindMatch(pos)
		if !ok {
			w.WriteBit(true)
			w.WriteByte(src[pos])
			pos++
			continue
		}
		writeCopy(w, m)
		f.AddEntryRange(pos+1, m.End())
		pos = m.End()
	}

	// Terminator: long-copy arm with a zero word.
	w.WriteBit(false)
	w.WriteBit(true)
	w.WriteByte(0)
	w.WriteByte(0)

	return w.Bytes(), nil
}

func writeCopy(w *lzkit.FlagWriter, m lzkit.Match) {
	switch {
	case m.Length <= shortCopyMaxLength && m.Distance <= shortCopyMaxDistance:
		w.WriteBit(false)
		w.WriteBit(false)
		w.WriteBits(uint32(m.Length-2), 2)
		w.WriteByte(byte(shortCopyMaxDistance - m.Distance))
	case m.Length <= longCopyMaxLength:
		a := uint16(DecodeWindow-m.Distance)<<3 | uint16(m.Length-2)
		w.WriteBit(false)
		w.WriteBit(true)
		w.WriteByte(byte(a))
		w.WriteByte(byte(a >> 8))
	default:
		a := uint16(DecodeWindow-m.Distance) << 3
		w.WriteBit(false)
		w.WriteBit(true)
		w.WriteByte(byte(a))
		w.WriteByte(byte(a >> 8))
		w.WriteByte(byte(m.Length - 1))
	}
}
