package lzkit

import "fmt"

const (
	finderBits      = 15
	finderTableSize = 1 << finderBits
	finderShift     = 32 - finderBits
	finderHashMul   = 0x1e35a7bd
)

// A Finder locates repeated byte sequences in an input buffer, bounded by a
// format's Constraints. It keeps a hash-chain dictionary over the positions
// it has seen: a head table from hashed key bytes to the most recent
// position, and a windowed ring of links to earlier positions with the same
// key. One finder owns its dictionary outright; nothing is shared, so a
// finder must not be used from more than one goroutine.
//
// Reset binds an input buffer. After that a format codec either drives the
// finder interactively with TryFindMatch and AddEntry, or hands a whole
// buffer to FindMatches.
type Finder struct {
	// Constraints bound every search. They must be set before Reset.
	Constraints Constraints

	// Level is the effort knob. The zero value is LevelNone, which stores
	// everything literally.
	Level Level

	// LookAhead enables one-step lazy matching at levels that honor it:
	// when the position after a found match starts a strictly longer
	// match, the byte at the current position is left to be emitted as a
	// literal instead.
	LookAhead bool

	src    []byte
	keyLen int
	mask   int
	head   [finderTableSize]int32
	prev   []int32
}

// Reset binds the finder to a new input buffer and clears the dictionary.
// It panics if the constraints are malformed.
func (f *Finder) Reset(src []byte) {
	f.Constraints.validate()
	f.src = src
	f.keyLen = f.Constraints.MinLength
	if f.keyLen > 3 {
		f.keyLen = 3
	}

	// The prev ring must retain links for every position a candidate
	// within the distance bound can chain through, so it holds one more
	// than WindowSize entries, rounded up to a power of two.
	ringSize := 1
	for ringSize <= f.Constraints.WindowSize {
		ringSize <<= 1
	}
	f.mask = ringSize - 1
	if cap(f.prev) >= ringSize {
		f.prev = f.prev[:ringSize]
	} else {
		f.prev = make([]int32, ringSize)
	}
	for i := range f.head {
		f.head[i] = -1
	}
}

// keyAt hashes the short byte sequence that keys position pos. ok is false
// when pos is too close to the end of the input to form a whole key.
func (f *Finder) keyAt(pos int) (h uint32, ok bool) {
	if pos < 0 {
		panic(fmt.Sprintf("lzkit: negative finder position %d", pos))
	}
	if pos+f.keyLen > len(f.src) {
		return 0, false
	}
	var u uint32
	switch f.keyLen {
	case 1:
		u = uint32(f.src[pos])
	case 2:
		u = uint32(f.src[pos]) | uint32(f.src[pos+1])<<8
	default:
		u = uint32(f.src[pos]) | uint32(f.src[pos+1])<<8 | uint32(f.src[pos+2])<<16
	}
	return (u * finderHashMul) >> finderShift, true
}

func (f *Finder) insert(pos int) {
	h, ok := f.keyAt(pos)
	if !ok {
		return
	}
	f.prev[pos&f.mask] = f.head[h]
	f.head[h] = int32(pos)
}

// AddEntry indexes the sequence starting at pos without searching. Callers
// use it when the cursor moves past bytes that will not be probed, such as
// the interior of an accepted match, so that every position up to the
// cursor stays indexed.
func (f *Finder) AddEntry(pos int) {
	f.insert(pos)
}

// AddEntryRange indexes every position in [start, end).
func (f *Finder) AddEntryRange(start, end int) {
	for pos := start; pos < end; pos++ {
		f.insert(pos)
	}
}

// search returns the best match starting at pos whose end stays within
// limit, or the zero Match. Candidates are walked nearest first, so on
// equal length the smaller distance wins.
func (f *Finder) search(pos, limit int) Match {
	h, ok := f.keyAt(pos)
	if !ok {
		return Match{}
	}
	if pos+f.Constraints.MinLength > limit {
		return Match{}
	}
	if limit > pos+f.Constraints.MaxLength {
		limit = pos + f.Constraints.MaxLength
	}
	low := pos - f.Constraints.WindowSize
	if low < 0 {
		low = 0
	}

	depth := f.Level.chainDepth()
	var best Match
	c := int(f.head[h])
	for step := 0; c >= low && (depth < 0 || step < depth); step++ {
		if c < pos {
			// Candidates are verified byte-by-byte from the start;
			// a hash collision just fails to reach MinLength.
			n := 0
			for pos+n < limit && f.src[c+n] == f.src[pos+n] {
				n++
			}
			if n >= f.Constraints.MinLength && n > best.Length {
				best = Match{Offset: pos, Distance: pos - c, Length: n}
				if pos+n == limit {
					break
				}
			}
		}
		next := int(f.prev[c&f.mask])
		if next >= c {
			break
		}
		c = next
	}
	return best
}

// TryFindMatch looks for the best match starting at pos and then indexes
// pos. It reports false when nothing reaches MinLength, and also when
// look-ahead finds a strictly longer match one position further on; in that
// case the caller emits a literal and probes again at pos+1, where the
// deferred match is found identically because the probe did not touch the
// dictionary.
func (f *Finder) TryFindMatch(pos int) (Match, bool) {
	return f.tryFindMatch(pos, len(f.src))
}

func (f *Finder) tryFindMatch(pos, limit int) (Match, bool) {
	best := f.search(pos, limit)
	f.insert(pos)
	if best.Zero() {
		return Match{}, false
	}
	if f.LookAhead && f.Level.allowLookAhead() &&
		best.Length < f.Constraints.MaxLength && best.End() < limit {
		if probe := f.search(pos+1, limit); probe.Length > best.Length {
			return Match{}, false
		}
	}
	return best, true
}

// FindMatches finds matches across all of src, appends them to dst, and
// returns dst. The finder is reset first, so the result does not depend on
// earlier calls. Gaps between the returned matches are implicit literal
// runs.
func (f *Finder) FindMatches(dst []Match, src []byte) []Match {
	f.Reset(src)
	return f.findRange(dst, 0, len(src))
}

// findRange runs the sequential driver over [from, to). Every emitted match
// lies entirely inside the range; references may still reach data before
// from wherever earlier positions have been indexed.
func (f *Finder) findRange(dst []Match, from, to int) []Match {
	if f.Level == LevelNone {
		return dst
	}
	pos := from
	for pos < to {
		m, ok := f.tryFindMatch(pos, to)
		if !ok {
			pos++
			continue
		}
		dst = append(dst, m)
		f.AddEntryRange(pos+1, m.End())
		pos = m.End()
	}
	return dst
}
