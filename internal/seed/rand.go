// Package seed provides the process-wide entropy source used to reseed
// per-worker fast PRNGs and to mint construction salts. Adapted verbatim
// in spirit from opencoff-go-chd's rand.go: crypto/rand is the right tool
// for seed material (drawn rarely, must be unpredictable), while the bulk
// of the statistics engine's draws go through internal/fastrand instead
// (drawn millions of times, must be cheap).
package seed

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Uint32 returns a cryptographically random 32-bit word.
func Uint32() uint32 {
	var b [4]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		panic("seed: can't read crypto/rand: " + err.Error())
	}
	return binary.BigEndian.Uint32(b[:])
}

// Uint64 returns a cryptographically random 64-bit word.
func Uint64() uint64 {
	var b [8]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		panic("seed: can't read crypto/rand: " + err.Error())
	}
	return binary.BigEndian.Uint64(b[:])
}
