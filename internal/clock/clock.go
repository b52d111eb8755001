// Package clock provides the repeating-timer abstraction that drives game ticks.
// Games ask a Scheduler for a timer and hold the returned handle; stopping the
// handle guarantees the callback never runs again. The platform decides where
// the callback actually executes (a Bubble Tea loop, a test clock, ...).
package clock

import "time"

// Timer is a handle to a scheduled repeating callback.
type Timer interface {
	// Stop cancels the timer. Stopping an already stopped timer is a no-op.
	Stop()
}

// Scheduler creates repeating timers.
type Scheduler interface {
	// Every calls fn once per interval until the returned Timer is stopped.
	// The first call happens one full interval after scheduling.
	Every(interval time.Duration, fn func()) Timer
}
