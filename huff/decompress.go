package huff

import (
	"bytes"
	"io"

	"github.com/gamearc/lzkit"
	"github.com/pkg/errors"
)

// Decompress decodes exactly outLen bytes from src. Zero outLen reads
// nothing, matching the empty Compress output. Pad bits after the last code
// are ignored.
func Decompress(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, errors.Errorf("huff: negative output length %d", outLen)
	}
	if outLen == 0 {
		return []byte{}, nil
	}

	br := bytes.NewReader(src)
	n, err := br.ReadByte()
	if err != nil {
		return nil, lzkit.ErrUnexpectedEOF
	}
	count := int(n) + 1
	syms := make([]byte, count)
	if _, err := io.ReadFull(br, syms); err != nil {
		return nil, lzkit.ErrUnexpectedEOF
	}
	lens := make([]byte, count)
	if _, err := io.ReadFull(br, lens); err != nil {
		return nil, lzkit.ErrUnexpectedEOF
	}

	table, err := newCodeTable(syms, lens)
	if err != nil {
		return nil, err
	}

	r := &lzkit.FlagReader{Src: br, Unit: 4, Order: lzkit.MSBFirst}
	out := make([]byte, outLen)
	for i := range out {
		sym, err := table.read(r)
		if err != nil {
			return nil, err
		}
		out[i] = sym
	}
	return out, nil
}

// codeTable is the canonical decode layout: per length, the first code value
// and where that length's symbols start in the (length, symbol)-ordered
// symbol slice.
type codeTable struct {
	maxLen    int
	blCount   [MaxCodeLen + 1]int
	firstCode [MaxCodeLen + 1]int
	offset    [MaxCodeLen + 1]int
	symbols   []byte
}

func newCodeTable(syms, lens []byte) (*codeTable, error) {
	for i := 1; i < len(syms); i++ {
		if syms[i] <= syms[i-1] {
			return nil, errors.Wrap(ErrBadTree, "symbol table not ascending")
		}
	}

	t := &codeTable{symbols: make([]byte, len(syms))}
	kraft := 0
	for _, l := range lens {
		if l < 1 || l > MaxCodeLen {
			return nil, errors.Wrapf(ErrBadTree, "code length %d", l)
		}
		t.blCount[l]++
		if int(l) > t.maxLen {
			t.maxLen = int(l)
		}
		kraft += 1 << (MaxCodeLen - l)
	}
	// The lengths must fill the code space exactly. The one exception is
	// a lone symbol, which sits alone under a single bit.
	if kraft > 1<<MaxCodeLen {
		return nil, errors.Wrap(ErrBadTree, "oversubscribed")
	}
	if kraft < 1<<MaxCodeLen && !(len(syms) == 1 && lens[0] == 1) {
		return nil, errors.Wrap(ErrBadTree, "incomplete")
	}

	code, run := 0, 0
	for l := 1; l <= t.maxLen; l++ {
		code = (code + t.blCount[l-1]) << 1
		t.firstCode[l] = code
		t.offset[l] = run
		run += t.blCount[l]
	}
	// The header carries symbols ascending, so one counting pass lands
	// each in its (length, symbol) slot.
	var next [MaxCodeLen + 1]int
	copy(next[:], t.offset[:])
	for i, s := range syms {
		t.symbols[next[lens[i]]] = s
		next[lens[i]]++
	}
	return t, nil
}

func (t *codeTable) read(r *lzkit.FlagReader) (byte, error) {
	code := 0
	for l := 1; l <= t.maxLen; l++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		code <<= 1
		if bit {
			code |= 1
		}
		if i := code - t.firstCode[l]; i < t.blCount[l] {
			return t.symbols[t.offset[l]+i], nil
		}
	}
	return 0, ErrBadCode
}
