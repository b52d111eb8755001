package clock

import "time"

// Manual is a deterministic Scheduler driven by explicit calls to Advance or
// Step. Callbacks run synchronously on the caller's goroutine, which makes it
// suitable for tests and headless simulation. It is not safe for concurrent use.
type Manual struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	interval time.Duration
	next     time.Duration
	fn       func()
	seq      int
	stopped  bool
}

func (t *manualTimer) Stop() {
	t.stopped = true
}

// NewManual creates a manual clock positioned at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every schedules fn to run every interval of manual time.
// It panics if interval is not positive, as time.NewTicker does.
func (m *Manual) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		panic("clock: non-positive interval for Manual.Every")
	}
	m.seq++
	t := &manualTimer{
		interval: interval,
		next:     m.now + interval,
		fn:       fn,
		seq:      m.seq,
	}
	m.timers = append(m.timers, t)
	return t
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Active returns the number of timers that have not been stopped.
func (m *Manual) Active() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// NextInterval returns the interval of the earliest due active timer.
func (m *Manual) NextInterval() (time.Duration, bool) {
	t := m.nextDue(-1)
	if t == nil {
		return 0, false
	}
	return t.interval, true
}

// Advance moves time forward by d, firing every callback that falls due in
// chronological order. Callbacks may stop or schedule timers; a timer
// scheduled during Advance fires within the same call if it falls due.
// Returns the number of callbacks fired.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	fired := 0
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.fire(t)
		fired++
	}
	m.now = target
	m.prune()
	return fired
}

// Step jumps to the earliest due timer and fires it once.
// Returns false if no timer is active.
func (m *Manual) Step() bool {
	t := m.nextDue(-1)
	if t == nil {
		return false
	}
	m.fire(t)
	m.prune()
	return true
}

func (m *Manual) fire(t *manualTimer) {
	m.now = t.next
	t.next += t.interval
	t.fn()
}

// nextDue returns the active timer with the earliest deadline not after
// limit. A negative limit means no limit. Ties go to the older timer.
func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.stopped {
			continue
		}
		if limit >= 0 && t.next > limit {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) prune() {
	kept := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = kept
}
