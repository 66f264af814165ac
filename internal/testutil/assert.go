// Package testutil holds small test helpers shared across this module's
// packages -- a hand-rolled assertion closure rather than a third-party
// assertion library.
package testutil

import "testing"

// Asserter is the closure type returned by NewAsserter.
type Asserter func(cond bool, format string, args ...interface{})

// NewAsserter returns a closure that fails the test (via t.Fatalf) with the
// given formatted message when cond is false.
func NewAsserter(t *testing.T) Asserter {
	return func(cond bool, format string, args ...interface{}) {
		t.Helper()
		if !cond {
			t.Fatalf(format, args...)
		}
	}
}
