// Package scramble implements the fast scramble hash family: a short,
// pluggable sequence of bitwise ops (Program, see hashop.go) executed on
// the bit-reversed input so that every output bit depends only on
// equal-or-higher input bits, exactly the locality an Owen scramble
// requires.
package scramble

import "math/bits"

// seedFoldConstant is an arbitrary odd constant folded into the seed before
// deriving the per-call mix seed, so the same seed used elsewhere (e.g. to
// pick the trial's avalanche-flip bit) doesn't collide with the scramble's
// own internal seed material.
const seedFoldConstant = 0xa14a177d

// Fast executes program against n under seed, per spec.md §4.3:
//  1. reverse the bits of n
//  2. derive an internal mix seed s' = H_fast(seed, 0xa14a177d)
//  3. run program left-to-right, substituting s' at every Const==0 slot
//  4. reverse the bits again
//
// Bit-reversal bracketing turns the family's downward-only avalanche
// propagation into upward propagation in the original bit indexing — the
// Owen-scramble locality property that TestFastBitLocality checks.
func Fast(n, seed uint32, program Program) uint32 {
	x := bits.Reverse32(n)
	s := mixSeed(seed, seedFoldConstant)
	for _, op := range program {
		x = op.Apply(x, s)
	}
	return bits.Reverse32(x)
}

// UnitFloat32 converts a raw 32-bit word to a float32 in [0,1). Identical
// to sobol.UnitFloat; duplicated here (rather than imported) so package
// scramble has no dependency on package sobol, keeping the dependency
// order leaves-first per spec.md §2.
func UnitFloat32(n uint32) float32 {
	const inv2to32 = 1.0 / 4294967296.0
	v := float32(float64(n) * inv2to32)
	if v >= 1 {
		v = 0x1.fffffep-1 // largest float32 below 1.0; the top words round up to 1.0
	}
	return v
}

// The hot-path sampler sample_owen_fast(dim, idx, seed) is the composition
// UnitFloat32(Fast(sobol.Point(dim, idx), seed, program)). This package has
// no function for it; callers compose it themselves. cmd/owenhash and the
// render package work on the raw 32-bit words and do not call UnitFloat32.
