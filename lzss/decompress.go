package lzss

import (
	"bytes"

	"github.com/gamearc/lzkit"
	"github.com/pkg/errors"
)

// Decompress decodes src into a new buffer of exactly outLen bytes, the
// length the surrounding container declared. Input that runs out early,
// or a stream whose tokens disagree with outLen, is reported as corrupt;
// trailing input bytes beyond the last needed token are ignored, since
// containers commonly pad.
func Decompress(src []byte, outLen int, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if outLen < 0 {
		return nil, errors.Errorf("lzss: negative output length %d", outLen)
	}

	var out bytes.Buffer
	out.Grow(outLen)
	win := &lzkit.Window{Size: WindowSize, Start: WindowStart, Fill: opts.Fill, Sink: &out}
	flags := &lzkit.FlagReader{Src: bytes.NewReader(src), Order: lzkit.LSBFirst}

	for win.Produced() < outLen {
		literal, err := flags.ReadBit()
		if err != nil {
			return nil, err
		}
		if literal {
			b, err := flags.ReadByte()
			if err != nil {
				return nil, err
			}
			if err := win.WriteByte(b); err != nil {
				return nil, err
			}
			continue
		}

		lo, err := flags.ReadByte()
		if err != nil {
			return nil, err
		}
		hi, err := flags.ReadByte()
		if err != nil {
			return nil, err
		}
		off := int(lo) | int(hi&0xF0)<<4
		length := int(hi&0x0F) + MinMatch
		if err := win.CopyOffset(off, length); err != nil {
			return nil, errors.Wrapf(err, "lzss: pointer at output %d", win.Produced())
		}
	}

	if err := win.Flush(); err != nil {
		return nil, err
	}
	if win.Produced() != outLen {
		return nil, lzkit.SizeMismatch(outLen, win.Produced())
	}
	return out.Bytes(), nil
}
