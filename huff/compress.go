package huff

import (
	"sort"

	"github.com/gamearc/lzkit"
)

// Compress encodes src and returns the stream, header included. Output for
// empty input is empty.
func Compress(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}

	var counts [256]int
	for _, b := range src {
		counts[b]++
	}
	lengths := buildLengths(&counts)
	codes := canonicalCodes(&lengths)

	w := &lzkit.FlagWriter{Unit: 4, Order: lzkit.MSBFirst}
	n := 0
	for _, l := range lengths {
		if l > 0 {
			n++
		}
	}
	w.WriteByte(byte(n - 1))
	for sym, l := range lengths {
		if l > 0 {
			w.WriteByte(byte(sym))
		}
	}
	for _, l := range lengths {
		if l > 0 {
			w.WriteByte(l)
		}
	}
	// The header must precede the first flag unit in the stream.
	w.FlushPending()

	for _, b := range src {
		w.WriteBits(codes[b], int(lengths[b]))
	}
	return w.Bytes()
}

type treeNode struct {
	count int
	// Children index into the node slice; left -1 marks a leaf.
	left, right int
	sym         byte
}

// buildLengths turns a symbol histogram into code lengths, halving the
// histogram and rebuilding whenever the tree outgrows the length field.
func buildLengths(counts *[256]int) (lengths [256]byte) {
	for {
		if assignDepths(counts, &lengths) <= MaxCodeLen {
			return lengths
		}
		for i, c := range counts {
			if c > 0 {
				counts[i] = (c + 1) / 2
			}
		}
	}
}

// assignDepths builds one Huffman tree and records each present symbol's
// depth, returning the deepest. The build merges the two classic queues:
// leaves sorted by count, and internal nodes, which are created in
// nondecreasing count order and so never need sorting.
func assignDepths(counts *[256]int, lengths *[256]byte) int {
	leaves := make([]treeNode, 0, 256)
	for sym, c := range counts {
		if c > 0 {
			leaves = append(leaves, treeNode{count: c, left: -1, sym: byte(sym)})
		}
	}
	switch len(leaves) {
	case 0:
		return 0
	case 1:
		// A lone symbol still needs one bit on the wire.
		lengths[leaves[0].sym] = 1
		return 1
	}
	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].count != leaves[j].count {
			return leaves[i].count < leaves[j].count
		}
		return leaves[i].sym < leaves[j].sym
	})

	nodes := make([]treeNode, len(leaves), 2*len(leaves)-1)
	copy(nodes, leaves)
	li, ii := 0, len(leaves)
	pick := func() int {
		if li < len(leaves) && (ii == len(nodes) || nodes[li].count <= nodes[ii].count) {
			li++
			return li - 1
		}
		ii++
		return ii - 1
	}
	for i := 1; i < len(leaves); i++ {
		a := pick()
		b := pick()
		nodes = append(nodes, treeNode{count: nodes[a].count + nodes[b].count, left: a, right: b})
	}
	return setDepths(nodes, len(nodes)-1, 0, lengths)
}

func setDepths(nodes []treeNode, at, depth int, lengths *[256]byte) int {
	n := nodes[at]
	if n.left < 0 {
		lengths[n.sym] = byte(depth)
		return depth
	}
	max := setDepths(nodes, n.left, depth+1, lengths)
	if r := setDepths(nodes, n.right, depth+1, lengths); r > max {
		max = r
	}
	return max
}

// canonicalCodes assigns code values from lengths alone, consecutive within
// each length in ascending symbol order. The decoder runs the same
// recurrence, so only lengths travel in the header.
func canonicalCodes(lengths *[256]byte) (codes [256]uint32) {
	var blCount [MaxCodeLen + 1]int
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}
	var nextCode [MaxCodeLen + 1]uint32
	code := uint32(0)
	for l := 1; l <= MaxCodeLen; l++ {
		code = (code + uint32(blCount[l-1])) << 1
		nextCode[l] = code
	}
	for sym, l := range lengths {
		if l > 0 {
			codes[sym] = nextCode[l]
			nextCode[l]++
		}
	}
	return codes
}
