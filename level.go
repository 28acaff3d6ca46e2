package lzkit

// Level is the coarse effort knob for match searching. It bounds how many
// dictionary candidates are inspected per position and whether one-step
// look-ahead is honored at all.
type Level int

const (
	// LevelNone skips searching entirely; every byte is stored literally.
	LevelNone Level = iota

	// LevelFastest inspects a short candidate chain and ignores the
	// look-ahead flag.
	LevelFastest

	// LevelOptimal inspects a deeper chain and honors look-ahead.
	LevelOptimal

	// LevelSmallestSize walks the full candidate chain regardless of cost.
	LevelSmallestSize
)

// Per-level bounds on the number of hash-chain candidates examined at one
// position. 0 disables searching, -1 removes the bound.
var levelChainDepth = [...]int{
	LevelNone:         0,
	LevelFastest:      16,
	LevelOptimal:      128,
	LevelSmallestSize: -1,
}

func (l Level) chainDepth() int {
	if l < LevelNone || l > LevelSmallestSize {
		return levelChainDepth[LevelOptimal]
	}
	return levelChainDepth[l]
}

// allowLookAhead reports whether this level honors a caller's look-ahead
// request. Cheap levels skip the extra probe to stay cheap.
func (l Level) allowLookAhead() bool {
	return l >= LevelOptimal
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelFastest:
		return "fastest"
	case LevelOptimal:
		return "optimal"
	case LevelSmallestSize:
		return "smallest"
	}
	return "unknown"
}
