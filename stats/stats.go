// Package stats implements the avalanche/tree-bias statistics engine: a
// parallel map-reduce over millions of random trials that measures how
// closely a candidate hash approximates a true per-bit Owen scramble.
//
// The worker pool follows the sharding shape of the teacher pack's BBHash
// construction (opencoff-go-mph/bbhash.go: a fixed runtime.NumCPU()
// goroutines, sync.WaitGroup-synchronized, each given a contiguous shard
// of work), generalized here because loop_rounds (the number of 256-trial
// batches) routinely exceeds NumCPU() by several orders of magnitude,
// unlike bbhash's one-shard-per-CPU-per-level.
package stats

import (
	"fmt"
	"io"
	"math/bits"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/opencoff/go-owenhash/internal/fastrand"
	"github.com/opencoff/go-owenhash/internal/seed"
)

// globalSeed is drawn once from crypto/rand at process start and folded
// into every worker's fastrand seed (see seedForWorker).
var globalSeed = seed.Uint32()

// BatchSize is the number of trials per unit of parallel work (spec.md
// §4.4/§5: "one loop_round of 256 trials per task").
const BatchSize = 256

// workerStackCeiling is the process's maximum goroutine stack, set once at
// package init (spec.md §5: "worker stack size ≥16 MiB"). Go goroutines grow
// their stacks on demand rather than taking a fixed size up front, so there
// is no per-goroutine equivalent of a pthread stack-size argument; the
// shared ceiling is the closest available lever. 64 MiB is below Go's
// default ceiling on 64-bit platforms (1 GB), so this lowers it there, and
// it is more than sufficient headroom for this workload's flat trial loop.
const workerStackCeiling = 64 << 20 // 64 MiB

func init() {
	debug.SetMaxStack(workerStackCeiling)
}

// Hash is the function under measurement: Hash(x, seed) -> y.
type Hash func(x, seed uint32) uint32

// Stats holds the three 32x32 matrices spec.md §3 defines, keyed by
// [input_bit][output_bit] (avalanche, avalanche average bias) or
// [x_bucket][y_bucket] (tree bias).
type Stats struct {
	Avalanche        [32][32]float64
	AvalancheAvgBias [32][32]float64
	TreeBias         [32][32]float64
}

func (s *Stats) addInPlace(o *Stats) {
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			s.Avalanche[i][j] += o.Avalanche[i][j]
			s.AvalancheAvgBias[i][j] += o.AvalancheAvgBias[i][j]
			s.TreeBias[i][j] += o.TreeBias[i][j]
		}
	}
}

// Progress is called once per completed batch, already serialized (safe to
// write to shared output from it without additional locking).
type Progress func(batchesDone, totalBatches uint64)

// Measure runs rounds trials (rounded up to a multiple of BatchSize) of
// hash through the avalanche and tree-bias estimators and returns the
// normalized Stats. progress may be nil.
func Measure(hash Hash, rounds uint64, progress Progress) Stats {
	loopRounds := (rounds + BatchSize - 1) / BatchSize
	if loopRounds == 0 {
		loopRounds = 1
	}
	n := loopRounds * BatchSize

	numWorkers := runtime.NumCPU()
	if numWorkers < 1 {
		numWorkers = 1
	}
	if uint64(numWorkers) > loopRounds {
		numWorkers = int(loopRounds)
	}

	var progressMu sync.Mutex
	var done uint64

	results := make([]Stats, numWorkers)

	per := loopRounds / uint64(numWorkers)
	rem := loopRounds % uint64(numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	start := uint64(0)
	for w := 0; w < numWorkers; w++ {
		count := per
		if uint64(w) < rem {
			count++
		}
		lo, hi := start, start+count
		start = hi

		go func(w int, lo, hi uint64) {
			defer wg.Done()
			local := &results[w]
			src := fastrand.New(seedForWorker(w))

			for b := lo; b < hi; b++ {
				runBatch(hash, src, local)
				if progress != nil {
					progressMu.Lock()
					done++
					progress(done, loopRounds)
					progressMu.Unlock()
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	var total Stats
	for i := range results {
		total.addInPlace(&results[i])
	}

	normalize(&total, n)
	return total
}

// runBatch executes one 256-trial batch (avalanche + tree-bias) and folds
// the result into acc, following the per-trial algorithm in spec.md §4.4.
func runBatch(hash Hash, src *fastrand.Source, acc *Stats) {
	seed := src.Uint32()

	var batchAval [32][32]float64 // raw hit counts for this batch/seed

	for t := 0; t < BatchSize; t++ {
		x := src.Uint32()
		y := hash(x, seed)
		for i := 0; i < 32; i++ {
			yp := hash(x^(uint32(1)<<uint(i)), seed)
			diff := y ^ yp
			for j := 0; j < 32; j++ {
				if (diff>>uint(j))&1 == 1 {
					batchAval[i][j]++
				}
			}
		}
	}

	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			acc.Avalanche[i][j] += batchAval[i][j]
			acc.AvalancheAvgBias[i][j] += absFloat(batchAval[i][j] - 0.5*BatchSize)
		}
	}

	for t := 0; t < BatchSize; t++ {
		seed2 := src.Uint32()
		x3 := src.Uint32()
		x4 := src.Uint32()
		y3 := hash(x3, seed2)
		y4 := hash(x4, seed2)

		X := y3 ^ y4
		Y := x3 ^ x4

		for {
			if X&1 == 1 || Y&1 == 1 {
				break
			}
			if X == 0 && Y == 0 {
				break
			}
			X >>= 1
			Y >>= 1
		}

		x5 := bits.Reverse32(X) >> 27
		y5 := bits.Reverse32(Y) >> 27
		acc.TreeBias[x5][y5] += 0.5
	}
}

func normalize(s *Stats, n uint64) {
	fn := float64(n)
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			s.Avalanche[i][j] /= fn
			s.AvalancheAvgBias[i][j] *= 2.0 / fn
			s.TreeBias[i][j] *= (32.0 * 32.0) / fn
		}
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// seedForWorker derives a per-worker PRNG seed. Each worker is reseeded
// once from the process-wide crypto/rand draw at startup (spec.md §9's
// "process-wide RNG with per-thread reseed" design note), folded with the
// worker index so sibling workers never share a stream.
func seedForWorker(w int) uint32 {
	return globalSeed ^ (uint32(w)*0x9e3779b1 + 1)
}

// DumpSummary prints a human-readable digest of s to w: the mean diagonal
// avalanche value, the mean off-diagonal value, and the tree-bias mean and
// worst cell. Mirrors opencoff-go-chd's Chd.DumpMeta — a console summary
// alongside whatever richer artifact (there: the marshaled DB; here: the
// stats PNG) the mode under test also produces.
func (s *Stats) DumpSummary(w io.Writer) {
	var diagSum, offSum, treeSum, treeWorst float64
	var offCount int
	for i := 0; i < 32; i++ {
		diagSum += s.Avalanche[i][i]
		for j := 0; j < 32; j++ {
			if i != j {
				offSum += s.Avalanche[i][j]
				offCount++
			}
			d := absFloat(s.TreeBias[i][j] - 1.0)
			treeSum += d
			if d > treeWorst {
				treeWorst = d
			}
		}
	}
	fmt.Fprintf(w, "  avalanche: diagonal mean %.4f, off-diagonal mean %.4f\n",
		diagSum/32.0, offSum/float64(offCount))
	fmt.Fprintf(w, "  tree-bias: mean |density-1| %.4f, worst cell %.4f\n",
		treeSum/(32.0*32.0), treeWorst)
}
