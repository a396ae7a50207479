// Package encode implements the 4-bit-per-op program-shape encoding from
// spec.md §4.7, used to deduplicate candidate hash-program *shapes* during
// search without needing to compare full Program values (constants and
// all) against each other.
package encode

import (
	"fmt"

	"github.com/opencoff/go-owenhash/scramble"
)

// tag codes: low 3 bits of each 4-bit nibble. Nop is elided entirely (it
// contributes no nibble), so 0 is never emitted as a tag code.
const (
	tagXor    = 1
	tagAdd    = 2
	tagMul    = 3
	tagShlXor = 4
	tagShlAdd = 5
	tagMulXor = 6
)

var tagToCode = map[scramble.OpTag]uint64{
	scramble.Xor:    tagXor,
	scramble.Add:    tagAdd,
	scramble.Mul:    tagMul,
	scramble.ShlXor: tagShlXor,
	scramble.ShlAdd: tagShlAdd,
	scramble.MulXor: tagMulXor,
}

var codeToTag = map[uint64]scramble.OpTag{
	tagXor:    scramble.Xor,
	tagAdd:    scramble.Add,
	tagMul:    scramble.Mul,
	tagShlXor: scramble.ShlXor,
	tagShlAdd: scramble.ShlAdd,
	tagMulXor: scramble.MulXor,
}

// MaxEncodableOps is how many 4-bit nibbles fit in a 128-bit word.
const MaxEncodableOps = 32

// Shape is the decoded structural summary of a program: its ordered
// sequence of (tag, seedFlag) pairs with Nops removed. Two programs that
// differ only in their non-zero constants decode to the same Shape.
type Shape struct {
	Tag      scramble.OpTag
	SeedFlag bool // true if the op's constant was non-zero (i.e. NOT a c=0 seed marker)
}

// Pack encodes p into a 128-bit word, represented as (hi, lo uint64) since
// Go has no native uint128. Nop ops are elided. Panics if p has more ops
// than MaxEncodableOps — this is a programming error (the search driver
// never generates programs that long; see scramble.MaxProgramLen).
func Pack(p scramble.Program) (hi, lo uint64) {
	i := 0
	for _, op := range p {
		if op.Tag == scramble.Nop {
			continue
		}
		if i >= MaxEncodableOps {
			panic(fmt.Sprintf("encode: program has more than %d encodable ops", MaxEncodableOps))
		}
		code, ok := tagToCode[op.Tag]
		if !ok {
			panic(fmt.Sprintf("encode: unknown op tag %s", op.Tag))
		}
		if op.Const != 0 {
			code |= 0x8 // bit 3: constant is not the c=0 seed marker
		}
		shift := uint((i % 16) * 4)
		if i < 16 {
			lo |= code << shift
		} else {
			hi |= code << shift
		}
		i++
	}
	return hi, lo
}

// Unpack decodes the (hi, lo) word back into the ordered Shape sequence
// produced by Pack. It cannot recover the original random constants — the
// encoding is structural only (spec.md §4.7).
func Unpack(hi, lo uint64) []Shape {
	var shapes []Shape
	words := [2]uint64{lo, hi}
	for w := 0; w < 2; w++ {
		v := words[w]
		for nib := 0; nib < 16; nib++ {
			code := (v >> uint(nib*4)) & 0xF
			if code == 0 {
				continue
			}
			tag, ok := codeToTag[code&0x7]
			if !ok {
				continue
			}
			shapes = append(shapes, Shape{Tag: tag, SeedFlag: code&0x8 != 0})
		}
	}
	return shapes
}
