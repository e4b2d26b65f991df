// Package clock provides the wall-time source and timer factory used by the
// synchronisation engine, together with a deterministic fake for tests.
package clock

import "time"

// Clock is a source of wall time and one-shot timers.
type Clock interface {
	// Now returns the current wall time.
	Now() time.Time
	// AfterFunc calls f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to a pending AfterFunc call.
type Timer interface {
	// Stop prevents the timer from firing. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

type systemClock struct{}

// System returns the Clock backed by the time package.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
