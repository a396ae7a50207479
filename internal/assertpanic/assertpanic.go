// Package assertpanic centralizes the "this is a programming error, not a
// recoverable condition" panics used across the engine: the out-of-range
// dimension check in sobol.Point and the deduper construction check in
// search.Search. Centralizing the message shape keeps panics
// from the different components recognizable as the same class of failure.
package assertpanic

import "fmt"

// Require panics with a formatted message if cond is false. Callers use it
// at the boundary of a contract that must never be violated by correct
// calling code (e.g. dimension < MaxDimension).
func Require(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
