// Package prs codes the SEGA PRS scheme used across the Dreamcast-era
// network games: LSB-first control bytes interleaved with payload, three
// encoding arms, and an in-stream terminator instead of a declared size.
//
// Arms, selected by control bits:
//
//	1            literal byte
//	0 0 s1 s0    short copy: length s1*2+s0+2 (2..5), one payload byte b,
//	             distance 256-b (1..256)
//	0 1          long copy: 16-bit LE word a; a == 0 terminates the
//	             stream; distance 0x2000-(a>>3) (1..8192); length a&7+2
//	             (3..9), or, when a&7 == 0, one more payload byte e with
//	             length e+1 (up to 256)
//
// The encoder keeps its matches inside 0x1FF0 bytes of distance, as the
// original encoders do, which keeps every emitted long-copy word nonzero.
// Lengths start at 3; the 2-byte arms remain decodable for streams from
// encoders that use them.
package prs

import "github.com/gamearc/lzkit"

const (
	// DecodeWindow is the distance reach a stream may legally use.
	DecodeWindow = 0x2000

	// EncodeWindow is the distance bound the encoder searches under.
	EncodeWindow = 0x1FF0

	// MinMatch and MaxMatch bound the lengths the encoder emits.
	MinMatch = 3
	MaxMatch = 256

	shortCopyMaxDistance = 256
	shortCopyMaxLength   = 5
	longCopyMaxLength    = 9
)

var constraints = lzkit.Constraints{
	WindowSize: EncodeWindow,
	MinLength:  MinMatch,
	MaxLength:  MaxMatch,
}

// Options control the encoder's search. Decompress needs none.
type Options struct {
	// Level is the search effort.
	Level lzkit.Level

	// LookAhead enables one-step lazy matching at levels that honor it.
	LookAhead bool
}

// DefaultOptions matches the original encoders: optimal effort with lazy
// matching.
func DefaultOptions() *Options {
	return &Options{Level: lzkit.LevelOptimal, LookAhead: true}
}
