package lzkit

// A Match is the basic unit of LZ77 compression: at input position Offset,
// copy Length bytes from Distance bytes back in the already-seen data.
type Match struct {
	// Offset is the input position where the match starts.
	Offset int

	// Distance is how far back the source of the copy lies. It is at
	// least 1 and never exceeds the window size the match was found under.
	Distance int

	// Length is the number of bytes covered by the match. The zero value
	// (Length 0) is the no-match sentinel.
	Length int
}

// End returns the input position just past the last matched byte.
func (m Match) End() int { return m.Offset + m.Length }

// Zero reports whether m is the no-match sentinel.
func (m Match) Zero() bool { return m.Length == 0 }
