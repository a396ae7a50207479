package search

import "github.com/opencoff/go-owenhash/stats"

// treeBiasThreshold is the tree-bias cutoff of spec.md §4.5's scorer (see
// Score): lower is better, summing a thresholded tree-bias penalty and a
// squared-error avalanche-bias match against stats.TargetBias. 0.45 is the final
// threshold value per spec.md §9 Open Question (ii).
const treeBiasThreshold = 0.45

// Score computes score_stats(s): lower is better. It sums:
//   - a thresholded count of egregiously tree-biased cells (x<y pairs whose
//     |tree_bias - 0.5| exceeds treeBiasThreshold), and
//   - the squared error between measured avalanche bias and TargetBias for
//     every (bit_in < bit_out) pair.
func Score(s stats.Stats) float64 {
	var score float64

	for x := 0; x < 32; x++ {
		for y := x + 1; y < 32; y++ {
			if absFloat(s.TreeBias[x][y]-0.5) > treeBiasThreshold {
				score += 1.0
			}
		}
	}

	for bitIn := 0; bitIn < 32; bitIn++ {
		for bitOut := bitIn + 1; bitOut < 32; bitOut++ {
			d := s.AvalancheAvgBias[bitIn][bitOut] - stats.TargetBias[bitOut]
			score += d * d
		}
	}

	return score
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
