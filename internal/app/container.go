package app

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// The lzk container is a minimal envelope around one compressed payload.
// The legacy formats deliberately carry no framing of their own, so the
// tool records next to the payload what the surrounding game archives
// would have recorded in their own tables of contents: which coder, how
// long the original was, and a checksum of it.
//
//	offset 0  magic "LZKT"
//	offset 4  container version, currently 1
//	offset 5  format id
//	offset 6  original length, uint32 little-endian
//	offset 10 xxHash32 of the original bytes, uint32 little-endian
//	offset 14 payload
const (
	containerMagic   = "LZKT"
	containerVersion = 1
	headerSize       = 14
)

// ErrNotContainer reports input that does not start with the lzk magic.
var ErrNotContainer = errors.New("app: not an lzk container")

// ErrChecksum reports restored data whose checksum disagrees with the one
// recorded at compression time.
var ErrChecksum = errors.New("app: original data checksum mismatch")

type header struct {
	formatID byte
	origLen  int
	sum      uint32
}

func writeHeader(dst []byte, h header) []byte {
	dst = append(dst, containerMagic...)
	dst = append(dst, containerVersion, h.formatID)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(h.origLen))
	return binary.LittleEndian.AppendUint32(dst, h.sum)
}

func parseHeader(src []byte) (header, []byte, error) {
	if len(src) < headerSize {
		return header{}, nil, errors.Wrapf(ErrNotContainer, "%d bytes is shorter than the header", len(src))
	}
	if string(src[:4]) != containerMagic {
		return header{}, nil, errors.Wrapf(ErrNotContainer, "bad magic %q", src[:4])
	}
	if src[4] != containerVersion {
		return header{}, nil, errors.Errorf("app: container version %d not supported", src[4])
	}
	h := header{
		formatID: src[5],
		origLen:  int(binary.LittleEndian.Uint32(src[6:10])),
		sum:      binary.LittleEndian.Uint32(src[10:14]),
	}
	return h, src[headerSize:], nil
}
