// Package lzkit is the shared coding engine behind reverse-engineered game
// container formats: an LZ77-style match finder with per-format constraints,
// a circular output window for decompression, and a bit-level flag codec
// pairing decision bits with payload bytes.
//
// Format packages build on these three pieces. An encoder asks a Finder for
// matches (whole-buffer via FindMatches or FindMatchesParallel, or
// interactively via TryFindMatch) and serializes them through a FlagWriter;
// a decoder replays a FlagReader's decisions into a Window bound to the
// output sink. Constraints, effort Level and the look-ahead flag are chosen
// by each format to mirror the legacy encoder it has to stay bit-compatible
// with.
package lzkit
