// Package debounce collapses bursts of calls into the last one.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recently triggered function once no trigger has
// arrived for the quiet period. A new trigger cancels the pending call rather
// than queueing behind it. A Debouncer is safe for concurrent use.
type Debouncer struct {
	quiet time.Duration

	lock sync.Mutex
	// generation token of the pending call, bumped on every Trigger and Stop
	generation uint64
	timer      *time.Timer
	pending    func()
}

// New returns a Debouncer with the given quiet period
func New(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn, replacing any call that has not fired yet
func (d *Debouncer) Trigger(fn func()) {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.cancelLocked()
	d.generation++
	token := d.generation
	d.pending = fn
	d.timer = time.AfterFunc(d.quiet, func() {
		d.fire(token)
	})
}

// Stop cancels the pending call, reporting whether there was one
func (d *Debouncer) Stop() bool {
	d.lock.Lock()
	defer d.lock.Unlock()

	had := d.pending != nil
	d.cancelLocked()
	d.generation++
	return had
}

// Flush runs the pending call now instead of waiting for the quiet period,
// reporting whether there was one
func (d *Debouncer) Flush() bool {
	d.lock.Lock()
	fn := d.pending
	d.cancelLocked()
	d.generation++
	d.lock.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// fire runs the pending call if token is still current. A timer that was
// superseded after it had already started finds a newer token and does nothing.
func (d *Debouncer) fire(token uint64) {
	d.lock.Lock()
	if token != d.generation || d.pending == nil {
		d.lock.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.lock.Unlock()

	fn()
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
