// Package testutils provides general purpose utility functions for unit/integration testing.
package testutils

import (
	"testing"
)

// Func wraps a regular testing function so it can be repeated
type Func func(t *testing.T)

// Repeat executes the testing function n times
func (f Func) Repeat(n int) Func {
	return func(t *testing.T) {
		for i := 0; i < n; i++ {
			f(t)
		}
	}
}
