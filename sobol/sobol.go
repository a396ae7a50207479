// Package sobol implements the Sobol' low-discrepancy point generator: given
// a dimension and an index, it produces the dimension's Sobol' point packed
// into a 32-bit fixed-point word via Gray-code XOR of direction vectors.
package sobol

import (
	"math/bits"

	"github.com/opencoff/go-owenhash/internal/assertpanic"
)

// Point returns the Sobol' point for the given dimension and index, packed
// into the high bits of a uint32. dimension must be < MaxDimension.
//
// Algorithm: starting from result = 0, walk the set bits of index from low
// to high, XOR-ing in the direction vector for each set bit. The classic
// Gray-code formulation advances by trailing_zeros(index)+1 each step and
// stops once index is zero; this is equivalent to, and implemented as, a
// simple "for each set bit of index" walk, which is clearer in Go and
// produces bit-for-bit identical output.
func Point(dimension int, index uint32) uint32 {
	assertpanic.Require(dimension >= 0 && dimension < MaxDimension,
		"sobol: dimension %d out of range [0,%d)", dimension, MaxDimension)

	dir := directionVectors[dimension]
	var result uint32
	for index != 0 {
		k := bits.TrailingZeros32(index)
		result ^= dir[k]
		index &= index - 1 // clear the lowest set bit
	}
	return result
}

// UnitFloat converts a raw 32-bit word into a float32 in [0, 1), matching
// scramble.UnitFloat32 exactly. Sampling call sites compose Point with a
// scramble and then this conversion; it is re-exported here so callers who
// only need raw (unscrambled) Sobol' points don't need to import scramble.
func UnitFloat(n uint32) float32 {
	const inv2to32 = 1.0 / 4294967296.0 // 1 / 2^32, rounded once in double precision
	v := float32(float64(n) * inv2to32)
	if v >= 1 {
		v = 0x1.fffffep-1 // largest float32 below 1.0; the top words round up to 1.0
	}
	return v
}
