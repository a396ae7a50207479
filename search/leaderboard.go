package search

import (
	"math"
	"sort"

	"github.com/opencoff/go-fasthash"

	"github.com/opencoff/go-owenhash/scramble"
	"github.com/opencoff/go-owenhash/stats"
)

// idSeed keys the fasthash digest ID gives each Entry. Arbitrary and fixed,
// same role as the teacher's test-only hseed: it only needs to disperse
// distinct programs into distinct IDs, not resist adversaries.
const idSeed = 0x6f77656e

// ID returns a short, stable, human-quotable identifier for e's program,
// for referring to a specific search result in logs or file names without
// printing the whole program. Grounded on the teacher's own test usage of
// go-fasthash (chd_test.go/db_test.go: fasthash.Hash64(seed, []byte(s))) to
// turn a string key into a dispersed 64-bit id.
func (e Entry) ID() uint64 {
	return fasthash.Hash64(idSeed, []byte(e.Program.String()))
}

// Entry is one leaderboard slot: a program, its score (lower is better),
// and the Stats that produced the score.
type Entry struct {
	Program scramble.Program
	Score   float64
	Stats   stats.Stats
}

// Leaderboard is a small sorted-by-ascending-Score vector. candidate_count
// is <= 16 in practice (spec.md §9), so an insertion sort after every
// update is fine — no concurrent access, single-threaded driver only.
type Leaderboard struct {
	entries []Entry
}

// NewLeaderboard creates a leaderboard of size candidates, all initialized
// to +Inf score (spec.md §4.5 step 1).
func NewLeaderboard(candidates int, seedProgram func() scramble.Program) *Leaderboard {
	lb := &Leaderboard{entries: make([]Entry, candidates)}
	for i := range lb.entries {
		lb.entries[i] = Entry{Program: seedProgram(), Score: math.Inf(1)}
	}
	return lb
}

// Worst returns the worst (highest) score currently on the board.
func (lb *Leaderboard) Worst() float64 {
	if len(lb.entries) == 0 {
		return math.Inf(1)
	}
	return lb.entries[len(lb.entries)-1].Score
}

// Offer replaces the worst entry with e if e scores better, then re-sorts
// ascending. Returns true if e was accepted.
func (lb *Leaderboard) Offer(e Entry) bool {
	if len(lb.entries) == 0 {
		return false
	}
	if e.Score >= lb.Worst() {
		return false
	}
	lb.entries[len(lb.entries)-1] = e
	sort.Sort(byScore(lb.entries))
	return true
}

// Entries returns the leaderboard's entries in ascending-score order.
func (lb *Leaderboard) Entries() []Entry {
	return lb.entries
}

type byScore []Entry

func (b byScore) Len() int           { return len(b) }
func (b byScore) Less(i, j int) bool { return b[i].Score < b[j].Score }
func (b byScore) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
