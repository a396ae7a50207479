package scramble

// DefaultProgram is the production scrambling program referenced by
// spec.md §8 scenario S3 and used by cmd/owenhash's default --test/render
// hash. It was discovered by an earlier run of the search driver (see
// package search) and hand-pinned here once it proved stable.
var DefaultProgram = Program{
	{Tag: Add, Const: 0},
	{Tag: MulXor, Const: 0x046e2f26},
	{Tag: Mul, Const: 0},
	{Tag: MulXor, Const: 0x75d5ab5c},
	{Tag: Mul, Const: 0xdc4d0c55},
}
