package lzkit

import "github.com/pkg/errors"

// Sentinel errors shared by the core codecs and the format packages.
// Decode-time failures are wrapped with position context at the call site;
// use errors.Is to test for the kind.
var (
	// ErrLookBehind is returned when a back-reference reaches further back
	// than the number of bytes produced so far. It always indicates a
	// corrupt or truncated stream, never a recoverable condition.
	ErrLookBehind = errors.New("lzkit: look-behind distance exceeds produced output")

	// ErrWindowRange is returned when a copy names a distance, offset or
	// length the window cannot represent.
	ErrWindowRange = errors.New("lzkit: copy outside window bounds")

	// ErrUnexpectedEOF is returned when the compressed source runs out
	// before the declared output length has been produced.
	ErrUnexpectedEOF = errors.New("lzkit: unexpected end of compressed input")

	// ErrSizeMismatch is returned when decoding completes but the number of
	// bytes produced differs from the declared decompressed size. Wrappers
	// attach both counts.
	ErrSizeMismatch = errors.New("lzkit: decompressed size mismatch")
)

// SizeMismatch wraps ErrSizeMismatch with the expected and actual byte
// counts, the first thing needed when a new format's size field turns out
// to be off.
func SizeMismatch(want, got int) error {
	return errors.Wrapf(ErrSizeMismatch, "expected %d bytes, produced %d", want, got)
}
