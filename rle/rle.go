// Package rle codes the byte-oriented run-length scheme sprite and tilemap
// payloads use: one flag bit per token, most significant bit first, with the
// token payload interleaved. A set bit is a run token (count byte, value
// byte) expanding to 3..258 copies of the value; a clear bit is a literal
// run (count byte, then that many raw bytes) carrying 1..256 bytes. The
// stream has no size field; the surrounding container declares the
// decompressed length.
package rle

const (
	// MinRun is the shortest repeat worth a run token. Shorter repeats
	// ride along inside literal runs.
	MinRun = 3

	// MaxRun is the longest run one token can express.
	MaxRun = MinRun + 255

	// MaxLiteral is the longest literal run one token can carry.
	MaxLiteral = 256
)
