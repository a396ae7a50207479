// owenhash is the CLI surface over the Sobol'/Owen-scramble research
// harness: it renders point-set images, measures the avalanche/tree-bias
// statistics of the built-in hash, and drives a randomized search for
// better-scrambling programs. Command-line parsing and PNG encoding are
// external collaborators (github.com/opencoff/pflag, image/png); every
// other component comes from this module's own packages.
package main

import (
	"fmt"
	"os"
	"strconv"

	flag "github.com/opencoff/pflag"

	"github.com/opencoff/go-owenhash/internal/seed"
	"github.com/opencoff/go-owenhash/owen"
	"github.com/opencoff/go-owenhash/render"
	"github.com/opencoff/go-owenhash/resultlog"
	"github.com/opencoff/go-owenhash/scramble"
	"github.com/opencoff/go-owenhash/search"
	"github.com/opencoff/go-owenhash/sobol"
	"github.com/opencoff/go-owenhash/stats"
)

const (
	defaultTestRounds      = 4_000_000
	defaultSearchRounds    = 10_000
	defaultRenderImages    = 4
	defaultLeaderboardSize = 8
)

func main() {
	var testMode, searchMode, refMode bool

	usage := fmt.Sprintf("%s [options] [N]", os.Args[0])

	flag.BoolVarP(&testMode, "test", "t", false, "Measure stats of the built-in hash and emit stats.png")
	flag.BoolVarP(&searchMode, "search", "s", false, "Search for a better-scrambling hash program")
	flag.BoolVarP(&refMode, "ref", "r", false, "In render mode, use the reference scrambler instead of the fast one")
	flag.Usage = func() {
		fmt.Printf("owenhash - Sobol'/Owen-scramble research harness\nUsage: %s\n", usage)
		flag.PrintDefaults()
	}

	flag.Parse()
	args := flag.Args()

	switch {
	case testMode:
		runTest(parseArg(args, defaultTestRounds))
	case searchMode:
		runSearch(int(parseArg(args, defaultSearchRounds)))
	default:
		runRender(int(parseArg(args, defaultRenderImages)), refMode)
	}
}

// parseArg parses the single optional positional numeric argument, or
// returns def if none was given. A malformed argument is a user I/O error
// (spec.md §7): report it and exit, rather than panicking.
func parseArg(args []string, def uint64) uint64 {
	if len(args) == 0 {
		return def
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		die("invalid numeric argument %q: %s", args[0], err)
	}
	return n
}

func runTest(rounds uint64) {
	hash := func(x, s uint32) uint32 { return scramble.Fast(x, s, scramble.DefaultProgram) }

	fmt.Printf("measuring %d rounds against the production hash\n", rounds)
	s := stats.Measure(hash, rounds, dotProgress)
	fmt.Println()
	s.DumpSummary(os.Stdout)

	writePNG("stats.png", func(f *os.File) error { return render.StatsImage(f, s) })
}

func runSearch(iterations int) {
	hashFor := func(p scramble.Program) stats.Hash {
		return func(x, s uint32) uint32 { return scramble.Fast(x, s, p) }
	}

	fmt.Printf("searching %d rounds for a better-scrambling hash program\n", iterations)
	entries := search.Search(search.Options{
		Iterations:     iterations,
		CandidateCount: defaultLeaderboardSize,
		Generate:       search.GenProgram,
		Execute:        hashFor,
		Progress: func(round, total int) {
			if round%(total/53+1) == 0 {
				fmt.Print(".")
			}
		},
	})
	fmt.Println()

	for i, e := range entries {
		fmt.Printf("#%d id=%016x score=%.6f program=%s\n", i, e.ID(), e.Score, e.Program)
		name := fmt.Sprintf("candidate_%02d.png", i)
		writePNG(name, func(f *os.File) error { return render.StatsImage(f, e.Stats) })
	}

	if err := resultlog.Write("search_results.owlg", entries); err != nil {
		die("can't persist search results: %s", err)
	}
}

func runRender(numImages int, ref bool) {
	for d := 0; d < numImages; d++ {
		imgSeed := seed.Uint64()
		dimA, dimB := (2*d)%sobol.MaxDimension, (2*d+1)%sobol.MaxDimension

		var scrambleFn render.Scramble2D
		if ref {
			scrambleFn = func(n uint32) uint32 { return owen.Scramble(n, imgSeed) }
		} else {
			s32 := uint32(imgSeed)
			scrambleFn = func(n uint32) uint32 { return scramble.Fast(n, s32, scramble.DefaultProgram) }
		}

		name := fmt.Sprintf("%02d.png", d)
		writePNG(name, func(f *os.File) error {
			return render.PointImage(f, render.DefaultPointCounts, dimA, dimB, scrambleFn)
		})
	}
}

// dotProgress prints a dot roughly every 1/53 of the total batches (spec.md
// §5), already called with serialized access from package stats.
func dotProgress(done, total uint64) {
	step := total/53 + 1
	if done%step == 0 {
		fmt.Print(".")
	}
}

// writePNG creates name and runs encode against it. Both file-creation
// failure and encoder failure are fatal: the former is a user I/O error,
// the latter a programming error (spec.md §7) — either way the mode cannot
// usefully continue.
func writePNG(name string, encode func(f *os.File) error) {
	f, err := os.Create(name)
	if err != nil {
		die("can't create %s: %s", name, err)
	}
	defer f.Close()

	if err := encode(f); err != nil {
		die("can't encode %s: %s", name, err)
	}
}

func die(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: "+format+"\n", append([]interface{}{os.Args[0]}, args...)...)
	os.Exit(1)
}
