package lzkit

import (
	"runtime"
	"sync"
)

// findChunkSize is the partition width of the parallel driver. Chunk
// geometry depends only on the input length, never on the machine, so the
// produced match list is reproducible everywhere.
const findChunkSize = 1 << 18

// FindMatchesParallel searches a whole buffer with one worker goroutine per
// CPU, up to one per chunk. The input is split into fixed-size chunks; each
// chunk is searched independently with a private dictionary seeded with up
// to WindowSize bytes of preceding context, so matches just after a chunk
// boundary still reach back into the previous chunk. Matches never span a
// boundary; the boundary clamps the match like the end of input does.
//
// The per-chunk lists are concatenated in chunk order, which keeps offsets
// strictly increasing without a sort. The combined list is identical for
// every worker count and schedule.
func FindMatchesParallel(src []byte, c Constraints, lookAhead bool, level Level) []Match {
	return findMatchesParallelN(src, c, lookAhead, level, runtime.GOMAXPROCS(0))
}

func findMatchesParallelN(src []byte, c Constraints, lookAhead bool, level Level, workers int) []Match {
	c.validate()
	chunks := (len(src) + findChunkSize - 1) / findChunkSize
	if chunks == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > chunks {
		workers = chunks
	}

	// Workers claim chunks round-robin by index. Which goroutine runs a
	// chunk never changes the chunk's result, only who computes it.
	lists := make([][]Match, chunks)
	work := func(w int) {
		f := &Finder{Constraints: c, Level: level, LookAhead: lookAhead}
		for i := w; i < chunks; i += workers {
			from := i * findChunkSize
			to := from + findChunkSize
			if to > len(src) {
				to = len(src)
			}
			ctx := from - c.WindowSize
			if ctx < 0 {
				ctx = 0
			}
			f.Reset(src)
			f.AddEntryRange(ctx, from)
			lists[i] = f.findRange(nil, from, to)
		}
	}

	if workers == 1 {
		work(0)
	} else {
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				work(w)
			}(w)
		}
		wg.Wait()
	}

	total := 0
	for _, l := range lists {
		total += len(l)
	}
	out := make([]Match, 0, total)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
