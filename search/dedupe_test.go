package search

import (
	"testing"

	"github.com/opencoff/go-owenhash/internal/testutil"
	"github.com/opencoff/go-owenhash/scramble"
)

func TestDeduperFlagsRepeatedShape(t *testing.T) {
	assert := testutil.NewAsserter(t)

	d, err := NewDeduper(1, 2)
	assert(err == nil, "NewDeduper failed: %v", err)

	p := scramble.Program{
		{Tag: scramble.Mul, Const: 0},
		{Tag: scramble.Add, Const: 7},
	}

	seen := d.SeenRecently(p)
	assert(!seen, "fresh program shape reported as seen")

	seenAgain := d.SeenRecently(p)
	assert(seenAgain, "repeated program shape not flagged as seen")
}

func TestDeduperIgnoresConstantValue(t *testing.T) {
	assert := testutil.NewAsserter(t)

	d, err := NewDeduper(1, 2)
	assert(err == nil, "NewDeduper failed: %v", err)

	a := scramble.Program{{Tag: scramble.Add, Const: 7}}
	b := scramble.Program{{Tag: scramble.Add, Const: 99}}

	d.SeenRecently(a)
	seen := d.SeenRecently(b)
	assert(seen, "same-shape program with a different constant was not treated as a repeat")
}

func TestDeduperDistinguishesShapes(t *testing.T) {
	assert := testutil.NewAsserter(t)

	d, err := NewDeduper(1, 2)
	assert(err == nil, "NewDeduper failed: %v", err)

	a := scramble.Program{{Tag: scramble.Add, Const: 7}}
	b := scramble.Program{{Tag: scramble.MulXor, Const: 8}}

	d.SeenRecently(a)
	seen := d.SeenRecently(b)
	assert(!seen, "distinct program shapes collided in the deduper")
}
