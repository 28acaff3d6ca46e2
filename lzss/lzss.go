// Package lzss codes the classic ring-buffer LZSS dozens of game containers
// embed: a 4096-byte window prefilled with a fixed byte, match lengths 3 to
// 18, and tokens addressing the window by absolute position.
//
// Wire format: one flag byte per 8 tokens, consumed least significant bit
// first; bit 1 is a literal byte, bit 0 a two-byte pointer. A pointer packs
// a 12-bit ring offset and a 4-bit length: the first byte holds the low 8
// offset bits, the second byte's high nibble the upper 4 offset bits and its
// low nibble the length minus 3. The window write cursor starts at 0xFEE, so
// pointers may legally reach into the prefilled region. No header, magic or
// size field is part of the stream; the surrounding container declares the
// decompressed length.
package lzss

import "github.com/gamearc/lzkit"

const (
	// WindowSize is the ring capacity shared by every variant.
	WindowSize = 4096

	// MinMatch and MaxMatch are the lengths the 4-bit nibble can express.
	MinMatch = 3
	MaxMatch = 18

	// WindowStart is the initial write cursor inside the ring.
	WindowStart = 0xFEE
)

var constraints = lzkit.Constraints{
	WindowSize:  WindowSize,
	MinLength:   MinMatch,
	MaxLength:   MaxMatch,
	WindowStart: WindowStart,
}

// Options select the per-container quirks. The zero value stores every byte
// literally with a zero-filled window; most callers want DefaultOptions.
type Options struct {
	// Fill is the window prefill byte: 0x00 in most containers, 0x20 in
	// the text-era variants.
	Fill byte

	// Level is the search effort for Compress. Decompress ignores it.
	Level lzkit.Level

	// LookAhead enables one-step lazy matching at levels that honor it.
	LookAhead bool
}

// DefaultOptions is the configuration matching the common legacy encoders:
// zero fill, optimal effort, lazy matching on.
func DefaultOptions() *Options {
	return &Options{Level: lzkit.LevelOptimal, LookAhead: true}
}
