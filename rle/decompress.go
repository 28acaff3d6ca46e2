package rle

import (
	"bytes"

	"github.com/gamearc/lzkit"
	"github.com/pkg/errors"
)

// Decompress decodes exactly outLen bytes from src. Token boundaries never
// split across the declared size, so a final token spilling past outLen is
// reported as a size mismatch, as is a stream whose tokens stop short.
// Trailing bytes after the last token are ignored.
func Decompress(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, errors.Errorf("rle: negative output length %d", outLen)
	}

	r := &lzkit.FlagReader{Src: bytes.NewReader(src), Order: lzkit.MSBFirst}
	out := bytes.NewBuffer(make([]byte, 0, outLen))

	for out.Len() < outLen {
		run, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		count, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if run {
			v, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			for i := 0; i < int(count)+MinRun; i++ {
				out.WriteByte(v)
			}
			continue
		}
		for i := 0; i <= int(count); i++ {
			b, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			out.WriteByte(b)
		}
	}

	if out.Len() != outLen {
		return nil, lzkit.SizeMismatch(outLen, out.Len())
	}
	return out.Bytes(), nil
}
