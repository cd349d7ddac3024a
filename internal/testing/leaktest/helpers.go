// Package leaktest checks that background goroutines started by a test
// (retry workers, pools, schedulers) are gone once it shuts them down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleDelay gives exiting goroutines a chance to be reaped
const settleDelay = 10 * time.Millisecond

// GoroutineChecker records the goroutine count at construction
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// after waiting up to timeout for them to exit
func (g *GoroutineChecker) Check(tolerance int, timeout time.Duration) {
	g.t.Helper()

	after := WaitForGoroutines(g.before+tolerance, timeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to
// have exited within a second
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0, time.Second)
}

// WaitForGoroutines polls until at most target goroutines run or the
// timeout passes, returning the last count seen
func WaitForGoroutines(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(settleDelay)
	}
}
