// Package schedule provides the cooperative task loop behind deferred
// materialization.
//
// Host elements must not read their own children until the synchronous pass
// that attached them has finished populating those children. Defer schedules
// work for the end of the current pass; AfterPaint schedules work one pass
// later, for code that must observe a committed visual change. Both queues
// are drained explicitly with Flush, which keeps ordering deterministic in
// tests instead of depending on wall-clock waits.
package schedule

import "sync"

// Loop is a single-threaded cooperative task queue. It never spawns
// goroutines; tasks run only when the owner calls Flush or FlushAll.
type Loop struct {
	mu       sync.Mutex
	micro    []func()
	paint    []func()
	flushing bool
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Defer schedules fn to run at the end of the current pass. Tasks deferred
// while a flush is draining run within that same flush.
func (l *Loop) Defer(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.micro = append(l.micro, fn)
	l.mu.Unlock()
}

// AfterPaint schedules fn for the pass after the current one. Use it for
// work that must see the effects of the current pass already applied.
func (l *Loop) AfterPaint(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.paint = append(l.paint, fn)
	l.mu.Unlock()
}

// Flush drains the deferred queue, including tasks scheduled during the
// drain, then promotes AfterPaint tasks so the next Flush runs them.
// A Flush triggered from inside a running task is a no-op; the outer drain
// picks up anything it scheduled.
func (l *Loop) Flush() {
	l.mu.Lock()
	if l.flushing {
		l.mu.Unlock()
		return
	}
	l.flushing = true
	l.mu.Unlock()

	for {
		l.mu.Lock()
		if len(l.micro) == 0 {
			break
		}
		fn := l.micro[0]
		l.micro = l.micro[1:]
		l.mu.Unlock()
		fn()
	}
	// still holding l.mu
	l.micro = append(l.micro, l.paint...)
	l.paint = nil
	l.flushing = false
	l.mu.Unlock()
}

// FlushAll flushes until both queues are empty. Bounded polling tasks give
// up after their attempt budget, so this terminates.
func (l *Loop) FlushAll() {
	for l.Pending() > 0 {
		l.Flush()
	}
}

// Pending returns the number of queued tasks across both queues.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.micro) + len(l.paint)
}

// Poll runs check once per pass until it reports true or the attempt budget
// is spent, then calls done with the outcome. The budget is mandatory: a
// poll can never outlive attempts passes, even if the awaited resource
// never arrives. done may be nil.
func (l *Loop) Poll(check func() bool, attempts int, done func(ok bool)) {
	if check == nil {
		return
	}
	if attempts < 1 {
		attempts = 1
	}
	var step func()
	remaining := attempts
	step = func() {
		if check() {
			if done != nil {
				done(true)
			}
			return
		}
		remaining--
		if remaining <= 0 {
			if done != nil {
				done(false)
			}
			return
		}
		l.AfterPaint(step)
	}
	l.Defer(step)
}
