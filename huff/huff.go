// Package huff codes the order-0 Huffman scheme some archive generations
// switched to for text tables: 8-bit symbols under canonical codes, with the
// code table serialized ahead of the payload.
//
// The stream opens with a header of plain bytes: a count byte holding the
// number of distinct symbols minus one, the symbols themselves in ascending
// order, then one code length per symbol. Codes are canonical, assigned in
// (length, symbol) order, so the lengths alone rebuild the table. The
// payload follows as a bitstream packed into 4-byte little-endian units,
// most significant bit first; the last unit is zero-padded. As with the LZ
// coders, the container declares the decompressed length.
package huff

import "github.com/pkg/errors"

// MaxCodeLen is the longest code length the header can carry. Compress
// flattens the symbol histogram until every code fits.
const MaxCodeLen = 15

// ErrBadTree reports a header whose symbol table or code lengths cannot
// form a canonical prefix code.
var ErrBadTree = errors.New("huff: malformed code table")

// ErrBadCode reports payload bits that decode to no assigned code.
var ErrBadCode = errors.New("huff: invalid code in stream")
