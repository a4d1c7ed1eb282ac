// Package must contains helpers that panic on error instead of returning the
// error. They are meant for tests, examples and values known to be valid.
package must

import (
	"hop.computer/dlist/pkg"
)

// Do takes any value and error pair, and panics if the error is non-nil. Use it
// wrapping another function call that returns two values, to get a single
// statement that only returns one value.
//
// Example:
//
//	sc := must.Do(config.LoadScenarioFromFile("hello.toml"))
func Do[T any](v T, err error) T {
	if err != nil {
		pkg.Panicf("expected nil-error, got %s", err)
	}
	return v
}

// NilError panics if err is non-nil.
func NilError(err error) {
	if err != nil {
		pkg.Panicf("expected nil-error, got %s", err)
	}
}
