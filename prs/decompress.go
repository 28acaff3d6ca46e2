package prs

import (
	"bytes"
	"io"

	"github.com/gamearc/lzkit"
	"github.com/pkg/errors"
)

// Decompress decodes src up to its terminator and returns the output. The
// stream carries no size; callers holding a declared size compare it with
// the returned length themselves.
func Decompress(src []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := decode(src, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecompressSize runs a decode that discards the output and returns only
// the decompressed size. Containers that omit size fields use it to size
// their buffers.
func DecompressSize(src []byte) (int, error) {
	var n countingSink
	if err := decode(src, &n); err != nil {
		return 0, err
	}
	return int(n), nil
}

type countingSink int

func (n *countingSink) Write(p []byte) (int, error) {
	*n += countingSink(len(p))
	return len(p), nil
}

func decode(src []byte, sink io.Writer) error {
	win := &lzkit.Window{Size: DecodeWindow, Sink: sink}
	flags := &lzkit.FlagReader{Src: bytes.NewReader(src), Order: lzkit.LSBFirst}

	for {
		literal, err := flags.ReadBit()
		if err != nil {
			return err
		}
		if literal {
			b, err := flags.ReadByte()
			if err != nil {
				return err
			}
			if err := win.WriteByte(b); err != nil {
				return err
			}
			continue
		}

		long, err := flags.ReadBit()
		if err != nil {
			return err
		}

		var distance, length int
		if long {
			lo, err := flags.ReadByte()
			if err != nil {
				return err
			}
			hi, err := flags.ReadByte()
			if err != nil {
				return err
			}
			a := uint16(lo) | uint16(hi)<<8
			if a == 0 {
				break
			}
			distance = DecodeWindow - int(a>>3)
			length = int(a & 7)
			if length == 0 {
				ext, err := flags.ReadByte()
				if err != nil {
					return err
				}
				length = int(ext) + 1
			} else {
				length += 2
			}
		} else {
			bits, err := flags.ReadBits(2)
			if err != nil {
				return err
			}
			b, err := flags.ReadByte()
			if err != nil {
				return err
			}
			distance = shortCopyMaxDistance - int(b)
			length = int(bits) + 2
		}

		if err := win.CopyBack(distance, length); err != nil {
			return errors.Wrapf(err, "prs: copy at output %d", win.Produced())
		}
	}

	return win.Flush()
}
