package search

import (
	"testing"

	"github.com/opencoff/go-owenhash/internal/testutil"
	"github.com/opencoff/go-owenhash/stats"
)

func TestScorePerfectMatchIsZero(t *testing.T) {
	assert := testutil.NewAsserter(t)

	var s stats.Stats
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			s.TreeBias[x][y] = 0.5
		}
	}
	for bitIn := 0; bitIn < 32; bitIn++ {
		for bitOut := 0; bitOut < 32; bitOut++ {
			s.AvalancheAvgBias[bitIn][bitOut] = stats.TargetBias[bitOut]
		}
	}

	got := Score(s)
	assert(got == 0, "score of a perfectly-matching Stats = %v, want 0", got)
}

func TestScorePenalizesTreeBiasOutliers(t *testing.T) {
	assert := testutil.NewAsserter(t)

	var clean, biased stats.Stats
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			clean.TreeBias[x][y] = 0.5
			biased.TreeBias[x][y] = 0.5
		}
	}
	biased.TreeBias[0][1] = 0.99 // far outside treeBiasThreshold of 0.5

	cleanScore := Score(clean)
	biasedScore := Score(biased)
	assert(biasedScore > cleanScore, "tree-biased Stats scored %v, not worse than clean %v", biasedScore, cleanScore)
}

func TestScoreMonotonicInAvalancheError(t *testing.T) {
	assert := testutil.NewAsserter(t)

	var near, far stats.Stats
	for bitIn := 0; bitIn < 32; bitIn++ {
		for bitOut := 0; bitOut < 32; bitOut++ {
			near.AvalancheAvgBias[bitIn][bitOut] = stats.TargetBias[bitOut]
			far.AvalancheAvgBias[bitIn][bitOut] = stats.TargetBias[bitOut]
		}
	}
	far.AvalancheAvgBias[0][1] = stats.TargetBias[1] + 0.5

	assert(Score(far) > Score(near), "larger avalanche error did not increase score")
}
