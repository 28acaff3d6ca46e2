package lzkit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildCorpus produces a deterministic, compressible buffer: game-ish asset
// chatter with embedded zero runs, large enough to span several chunks.
func buildCorpus(size int) []byte {
	rng := rand.New(rand.NewSource(1))
	words := []string{
		"tilemap", "palette", "sprite sheet ", "bgm_intro.adx",
		"\x00\x00\x00\x00\x00\x00\x00\x00", "0123456789abcdef",
	}
	src := make([]byte, 0, size+16)
	for len(src) < size {
		src = append(src, words[rng.Intn(len(words))]...)
	}
	return src[:size]
}

func TestFindMatchesParallelDeterministic(t *testing.T) {
	src := buildCorpus(3*findChunkSize - 1234)
	c := Constraints{WindowSize: 0x1000, MinLength: 3, MaxLength: 18}

	base := findMatchesParallelN(src, c, true, LevelOptimal, 1)
	require.NotEmpty(t, base)
	for _, workers := range []int{2, 8} {
		got := findMatchesParallelN(src, c, true, LevelOptimal, workers)
		require.Equal(t, base, got, "worker count %d changed the match list", workers)
	}
}

func TestFindMatchesParallelInvariants(t *testing.T) {
	src := buildCorpus(2*findChunkSize + 4096)
	c := Constraints{WindowSize: 0x1000, MinLength: 3, MaxLength: 18}

	matches := FindMatchesParallel(src, c, true, LevelOptimal)
	require.NotEmpty(t, matches)
	checkMatchList(t, matches, c, len(src))

	// A chunk boundary clamps a match the same way the end of input does,
	// so no match may straddle one.
	for _, m := range matches {
		require.Equal(t, m.Offset/findChunkSize, (m.End()-1)/findChunkSize,
			"match %+v spans a chunk boundary", m)
	}
}

func TestFindMatchesParallelSmallInput(t *testing.T) {
	// A single-chunk input must come out exactly as the sequential
	// driver's, whatever worker count was requested.
	src := buildCorpus(10 * 1024)
	c := Constraints{WindowSize: 0x1000, MinLength: 3, MaxLength: 18}

	f := &Finder{Constraints: c, Level: LevelOptimal, LookAhead: true}
	sequential := f.FindMatches(nil, src)

	require.Equal(t, sequential, findMatchesParallelN(src, c, true, LevelOptimal, 8))
}

func TestFindMatchesParallelEmptyInput(t *testing.T) {
	c := Constraints{WindowSize: 0x1000, MinLength: 3, MaxLength: 18}
	require.Empty(t, FindMatchesParallel(nil, c, true, LevelOptimal))
}
