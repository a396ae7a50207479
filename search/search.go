package search

import (
	"github.com/opencoff/go-owenhash/internal/assertpanic"
	"github.com/opencoff/go-owenhash/internal/fastrand"
	"github.com/opencoff/go-owenhash/internal/seed"
	"github.com/opencoff/go-owenhash/scramble"
	"github.com/opencoff/go-owenhash/stats"
)

// StatsRounds is the fixed trial count every candidate is measured with
// during search (spec.md §4.5 step 2.b: "Run the statistics engine with
// 2^18 rounds"). This is independent of the driver's own `iterations`
// parameter, which counts search rounds, not statistics trials.
const StatsRounds = 1 << 18

// Generate produces a fresh candidate program.
type Generate func(rng *fastrand.Source) scramble.Program

// MutateFn produces a new candidate by perturbing an existing program.
type MutateFn func(rng *fastrand.Source, best scramble.Program) scramble.Program

// Execute is the hash under test, built from a candidate program. Callers
// typically close over scramble.Fast: func(p) Execute { return
// func(x, s uint32) uint32 { return scramble.Fast(x, s, p) } }.
type Execute func(p scramble.Program) stats.Hash

// Options configures one Search run.
type Options struct {
	Iterations     int // number of search rounds (spec.md: "rounds")
	CandidateCount int // leaderboard size, <= 16 in practice
	Generate       Generate
	Mutate         MutateFn // optional; nil means generate-only (production default)
	Execute        Execute
	Progress       func(round, total int) // optional, called once per completed round
}

// Search runs the randomized search driver (spec.md §4.5) and returns up
// to CandidateCount best entries in ascending Score order.
func Search(opt Options) []Entry {
	rng := fastrand.New(seed.Uint32())

	dedup, err := NewDeduper(seed.Uint64(), seed.Uint64())
	assertpanic.Require(err == nil, "search: NewDeduper failed: %v", err)

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

		if !dedup.SeenRecently(p) {
			s := stats.Measure(opt.Execute(p), StatsRounds, nil)
			score := Score(s)
			lb.Offer(Entry{Program: p, Score: score, Stats: s})
		}

		if opt.Progress != nil {
			opt.Progress(round+1, opt.Iterations)
		}
	}

	return lb.Entries()
}
