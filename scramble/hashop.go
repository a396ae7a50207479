package scramble

import "fmt"

// OpTag identifies the bitwise operation a HashOp performs.
type OpTag uint8

const (
	Nop OpTag = iota
	Xor
	Add
	Mul
	ShlXor
	ShlAdd
	MulXor
)

func (t OpTag) String() string {
	switch t {
	case Nop:
		return "Nop"
	case Xor:
		return "Xor"
	case Add:
		return "Add"
	case Mul:
		return "Mul"
	case ShlXor:
		return "ShlXor"
	case ShlAdd:
		return "ShlAdd"
	case MulXor:
		return "MulXor"
	default:
		return fmt.Sprintf("OpTag(%d)", uint8(t))
	}
}

// HashOp is one step of a HashProgram: a tagged operation plus its constant.
// Const == 0 is the "use the run-time seed instead" marker (spec.md §3):
// the op is applied with a value derived from the seed rather than from
// Const: seed|1 for Mul, seed with bit 0 cleared for MulXor, seed&31 (which
// may be 0) as the shift amount for the shift ops, and the seed as-is for
// Xor and Add.
type HashOp struct {
	Tag   OpTag
	Const uint32
}

// Valid reports whether the op's constant (when non-zero) satisfies its
// tag's invariant. A seed-marker (Const == 0) is always valid.
func (op HashOp) Valid() bool {
	if op.Const == 0 {
		return true
	}
	switch op.Tag {
	case Mul:
		return op.Const&1 == 1
	case MulXor:
		return op.Const&1 == 0
	case ShlXor, ShlAdd:
		return op.Const >= 1 && op.Const <= 31
	case Nop, Xor, Add:
		return true
	default:
		return false
	}
}

// Apply executes the op against x, substituting seed-derived material at
// Const == 0 slots per spec.md §3's table.
func (op HashOp) Apply(x, seed uint32) uint32 {
	switch op.Tag {
	case Nop:
		return x

	case Xor:
		c := op.Const
		if c == 0 {
			c = seed
		}
		return x ^ c

	case Add:
		c := op.Const
		if c == 0 {
			c = seed
		}
		return x + c

	case Mul:
		c := op.Const
		if c == 0 {
			c = seed | 1
		}
		return x * c

	case ShlXor:
		c := op.Const
		if c == 0 {
			c = seed & 31
		}
		return x ^ (x << (c & 31))

	case ShlAdd:
		c := op.Const
		if c == 0 {
			c = seed & 31
		}
		return x + (x << (c & 31))

	case MulXor:
		c := op.Const
		if c == 0 {
			c = seed & ^uint32(1)
		}
		return x ^ (x * c)

	default:
		panic(fmt.Sprintf("scramble: unknown op tag %d", op.Tag))
	}
}

// Program is an ordered, immutable sequence of HashOps. MaxProgramLen bounds
// its length in practice (spec.md §3: "length bounded (≤16 in practice)");
// the type itself does not enforce the bound so manual experimentation with
// longer programs remains possible.
type Program []HashOp

const MaxProgramLen = 16

// Clone returns an independent copy of p. Programs are immutable after
// construction (spec.md §3); mutators (see search/generator.go) always
// build a fresh Program via Clone rather than editing p in place.
func (p Program) Clone() Program {
	q := make(Program, len(p))
	copy(q, p)
	return q
}

// Valid reports whether every op in the program satisfies its invariant.
func (p Program) Valid() bool {
	for _, op := range p {
		if !op.Valid() {
			return false
		}
	}
	return true
}

func (p Program) String() string {
	s := "["
	for i, op := range p {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s(%#x)", op.Tag, op.Const)
	}
	return s + "]"
}
