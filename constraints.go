package lzkit

import "fmt"

// Constraints bound every match search for one format: how far back a
// reference may reach and which lengths the target bit encoding can
// represent. A Constraints value is fixed per format and never mutated.
type Constraints struct {
	// WindowSize is the maximum representable back-distance in bytes.
	WindowSize int

	// MinLength and MaxLength are the inclusive bounds on match length.
	MinLength int
	MaxLength int

	// WindowStart is the initial logical write position some formats use
	// to bias absolute in-window addressing (e.g. 0xFEE for classic ring
	// LZSS). Zero for formats with purely relative distances.
	WindowStart int
}

// validate panics on malformed constraints. Bad constraints are a bug in the
// calling format codec, not a data error, so there is no recoverable path.
func (c Constraints) validate() {
	if c.WindowSize < 1 {
		panic(fmt.Sprintf("lzkit: window size %d out of range", c.WindowSize))
	}
	if c.MinLength < 1 || c.MinLength > c.MaxLength {
		panic(fmt.Sprintf("lzkit: match length bounds [%d,%d] out of range", c.MinLength, c.MaxLength))
	}
	if c.WindowStart < 0 || c.WindowStart >= c.WindowSize {
		panic(fmt.Sprintf("lzkit: window start %d outside window of %d", c.WindowStart, c.WindowSize))
	}
}
