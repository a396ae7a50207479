// Package testutil supplies the small assertion helper every test in the
// teacher pack's own test suite calls but never defines locally in the
// retrieved files. We reconstruct the obvious shape: a closure bound to
// *testing.T that fails the test with a formatted message when a condition
// is false.
package testutil

import "testing"

// Asserter is the function type returned by NewAsserter.
type Asserter func(cond bool, format string, args ...interface{})

// NewAsserter returns a closure that calls t.Fatalf(format, args...) when
// cond is false. Mirrors the "assert := newAsserter(t)" idiom used
// throughout the teacher's _test.go files.
func NewAsserter(t *testing.T) Asserter {
	return func(cond bool, format string, args ...interface{}) {
		t.Helper()
		if !cond {
			t.Fatalf(format, args...)
		}
	}
}
