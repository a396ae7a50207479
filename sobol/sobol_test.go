package sobol

import (
	"math/bits"
	"testing"

	"github.com/opencoff/go-owenhash/internal/testutil"
)

// S1 — Sobol' starts at zero for every dimension.
func TestPointStartsAtZero(t *testing.T) {
	assert := testutil.NewAsserter(t)
	for d := 0; d < MaxDimension; d++ {
		assert(Point(d, 0) == 0, "dimension %d: Point(d,0) != 0", d)
	}
}

// S1 (named) — dimension 0 is the van der Corput sequence.
func TestDimensionZeroIsVanDerCorput(t *testing.T) {
	assert := testutil.NewAsserter(t)
	for i := uint32(0); i < 100000; i++ {
		got := Point(0, i)
		want := bits.Reverse32(i)
		assert(got == want, "Point(0,%d) = %#x, want reverse_bits = %#x", i, got, want)
	}
}

// S2 — dimension 1 is the identity.
func TestDimensionOneIsIdentity(t *testing.T) {
	assert := testutil.NewAsserter(t)
	for i := uint32(0); i < 100000; i++ {
		got := Point(1, i)
		assert(got == i, "Point(1,%d) = %#x, want %#x", i, got, i)
	}
}

func TestPointOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range dimension")
		}
	}()
	Point(MaxDimension, 0)
}

func TestUnitFloatRangeAndMonotone(t *testing.T) {
	assert := testutil.NewAsserter(t)

	assert(UnitFloat(0) == 0.0, "UnitFloat(0) != 0")

	max := UnitFloat(0xFFFFFFFF)
	assert(max < 1.0, "UnitFloat(max) >= 1.0: %v", max)
	assert(max >= 1.0-1.0/8388608.0, "UnitFloat(max) too small: %v", max)

	prev := UnitFloat(0)
	for _, n := range []uint32{1, 2, 1000, 1 << 16, 1 << 24, 0xFFFFFFFE, 0xFFFFFFFF} {
		v := UnitFloat(n)
		assert(v >= 0 && v < 1.0, "UnitFloat(%d) out of range: %v", n, v)
		assert(v >= prev, "UnitFloat not monotone at %d: %v < %v", n, v, prev)
		prev = v
	}
}
