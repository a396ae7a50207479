package search

import (
	"testing"

	"github.com/opencoff/go-owenhash/internal/fastrand"
	"github.com/opencoff/go-owenhash/internal/testutil"
	"github.com/opencoff/go-owenhash/scramble"
	"github.com/opencoff/go-owenhash/stats"
)

// TestSearchReturnsSortedBoard runs a tiny end-to-end search (a handful of
// iterations over a cheap 2-op candidate space) and checks the invariants
// search.Search promises: a fixed-size, ascending-score leaderboard
// (spec.md §4.5, property 8), regardless of what hashes were actually
// measured.
func TestSearchReturnsSortedBoard(t *testing.T) {
	assert := testutil.NewAsserter(t)

	const candidates = 3
	const iterations = 6
	const tinyRounds = 64 // keep the end-to-end test fast; StatsRounds governs production runs

	opt := Options{
		Iterations:     iterations,
		CandidateCount: candidates,
		Generate: func(rng *fastrand.Source) scramble.Program {
			return scramble.Program{
				{Tag: scramble.Mul, Const: 0},
				{Tag: scramble.Add, Const: rng.Uint32() | 1},
			}
		},
		Execute: func(p scramble.Program) stats.Hash {
			return func(x, s uint32) uint32 {
				return scramble.Fast(x, s, p)
			}
		},
	}

	// Search itself always measures with the fixed StatsRounds constant;
	// searchWithRounds repeats its candidate and leaderboard logic with a much
	// smaller round count so this test stays fast.
	entries := searchWithRounds(opt, tinyRounds)

	assert(len(entries) == candidates, "leaderboard size = %d, want %d", len(entries), candidates)
	for i := 1; i < len(entries); i++ {
		assert(entries[i-1].Score <= entries[i].Score,
			"search leaderboard not ascending at %d", i)
	}
}

// searchWithRounds mirrors Search's candidate and leaderboard logic but
// measures with a caller-supplied round count, so tests don't have to pay
// for StatsRounds (2^18) trials per candidate. Unlike Search it uses a fixed
// PRNG seed and does not skip repeated shapes through a Deduper.
func searchWithRounds(opt Options, rounds uint64) []Entry {
	rng := fastrand.New(42)

	lb := NewLeaderboard(opt.CandidateCount, func() scramble.Program {
		return opt.Generate(rng)
	})

	for round := 0; round < opt.Iterations; round++ {
		var p scramble.Program
		if opt.Mutate != nil && rng.Intn(2) == 0 {
			best := lb.Entries()[0].Program
			p = opt.Mutate(rng, best)
		} else {
			p = opt.Generate(rng)
		}

		s := stats.Measure(opt.Execute(p), rounds, nil)
		score := Score(s)
		lb.Offer(Entry{Program: p, Score: score, Stats: s})
	}

	return lb.Entries()
}
