package owen

import "math/bits"

// SipHash-1-3 (1 compression round, 3 finalization rounds), specialized to
// the single use this package has for it: hashing one 4-byte word under a
// 128-bit key. github.com/dchest/siphash (a teacher dependency, reused
// elsewhere in this repo — see search/dedupe.go) hard-codes the canonical
// SipHash-2-4 round schedule and offers no way to dial it down to 1-3, so
// this file hand-rolls the reduced-round variant spec.md §4.2 requires,
// following the same ARX structure dchest/siphash exposes.
const (
	sipInit0 = 0x736f6d6570736575
	sipInit1 = 0x646f72616e646f6d
	sipInit2 = 0x6c7967656e657261
	sipInit3 = 0x7465646279746573
)

func sipRound(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v1 = bits.RotateLeft64(v1, 13)
	v1 ^= v0
	v0 = bits.RotateLeft64(v0, 32)

	v2 += v3
	v3 = bits.RotateLeft64(v3, 16)
	v3 ^= v2

	v0 += v3
	v3 = bits.RotateLeft64(v3, 21)
	v3 ^= v0

	v2 += v1
	v1 = bits.RotateLeft64(v1, 17)
	v1 ^= v2
	v2 = bits.RotateLeft64(v2, 32)

	return v0, v1, v2, v3
}

// hashWord32 computes SipHash-1-3 of the 4-byte little-endian encoding of
// word, keyed by (k0, k1). This is H() from spec.md §4.2: a single 32-bit
// write is the entire message, so the whole computation reduces to one
// "last block" (length-tagged) compression.
func hashWord32(word uint32, k0, k1 uint64) uint64 {
	v0 := sipInit0 ^ k0
	v1 := sipInit1 ^ k1
	v2 := sipInit2 ^ k0
	v3 := sipInit3 ^ k1

	// Last (and only) block: 4 message bytes, little-endian, with the
	// message length (4) tagged into the top byte per the SipHash spec.
	m := uint64(word) | (uint64(4) << 56)

	v3 ^= m
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3) // c = 1 compression round
	v0 ^= m

	v2 ^= 0xff
	for i := 0; i < 3; i++ { // d = 3 finalization rounds
		v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	}

	return v0 ^ v1 ^ v2 ^ v3
}
