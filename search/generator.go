// Package search implements the randomized search driver (spec.md §4.5):
// it repeatedly samples candidate HashPrograms, scores them against the
// statistics engine, and keeps the best-k in a sorted leaderboard.
package search

import (
	"github.com/opencoff/go-owenhash/internal/fastrand"
	"github.com/opencoff/go-owenhash/scramble"
)

// candidateOps is the canonical working set spec.md §4.5 samples from
// automatically; the wider HashOp vocabulary (Xor, ShlXor, ShlAdd) remains
// available for manual experimentation but is never generated here.
var candidateOps = []scramble.OpTag{scramble.Add, scramble.Mul, scramble.MulXor}

// ProgramLen is the fixed slot count the default generator fills.
const ProgramLen = 8

// GenRandom produces one random op per spec.md §4.5's gen_random policy:
// tag uniform over {Add, Mul, MulXor}; constant is the c=0 seed marker with
// probability 1/4, otherwise a uniformly random word masked to the tag's
// invariant.
func GenRandom(rng *fastrand.Source) scramble.HashOp {
	tag := candidateOps[rng.Intn(len(candidateOps))]

	if rng.Intn(4) == 0 {
		return scramble.HashOp{Tag: tag, Const: 0}
	}

	c := rng.Uint32()
	switch tag {
	case scramble.Mul:
		c |= 1
	case scramble.MulXor:
		c &= ^uint32(1)
	}
	// c could still legitimately be 0 after masking (e.g. MulXor with
	// c==0 after clearing bit 0) only if the raw draw was already 0 or 1;
	// reroll in that vanishingly rare case so this op doesn't silently
	// turn into an unintended seed marker.
	for c == 0 {
		c = rng.Uint32()
		if tag == scramble.Mul {
			c |= 1
		} else if tag == scramble.MulXor {
			c &= ^uint32(1)
		}
	}

	return scramble.HashOp{Tag: tag, Const: c}
}

// GenProgram fills ProgramLen slots with GenRandom, rejecting and retrying
// the whole program until at least one op "multiplies by the seed" (Mul(0)
// or MulXor(0)) — spec.md §4.5: "no decent scrambling hash exists without
// one such op."
func GenProgram(rng *fastrand.Source) scramble.Program {
	for {
		p := make(scramble.Program, ProgramLen)
		hasSeedMul := false
		for i := range p {
			op := GenRandom(rng)
			p[i] = op
			if op.Const == 0 && (op.Tag == scramble.Mul || op.Tag == scramble.MulXor) {
				hasSeedMul = true
			}
		}
		if hasSeedMul {
			return p
		}
	}
}

// NewConstant resamples only op's constant, preserving the c=0-vs-nonzero
// choice (spec.md §4.5's new_constant mutation).
func NewConstant(rng *fastrand.Source, op scramble.HashOp) scramble.HashOp {
	if op.Const == 0 {
		return op
	}

	c := rng.Uint32()
	switch op.Tag {
	case scramble.Mul:
		c |= 1
	case scramble.MulXor:
		c &= ^uint32(1)
	case scramble.ShlXor, scramble.ShlAdd:
		c = 1 + (c % 31) // keep in [1,31]
	}
	for c == 0 {
		c = rng.Uint32()
		switch op.Tag {
		case scramble.Mul:
			c |= 1
		case scramble.MulXor:
			c &= ^uint32(1)
		}
	}
	return scramble.HashOp{Tag: op.Tag, Const: c}
}

// Mutate returns a copy of p with one randomly chosen op's constant
// resampled via NewConstant. p is never modified in place (spec.md §3:
// "mutation produces a new program").
func Mutate(rng *fastrand.Source, p scramble.Program) scramble.Program {
	q := p.Clone()
	if len(q) == 0 {
		return q
	}
	i := rng.Intn(len(q))
	q[i] = NewConstant(rng, q[i])
	return q
}
