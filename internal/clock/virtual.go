package clock

import (
	"sync"
	"time"
)

// Virtual is a manually advanced scheduler. Due callbacks fire in (offset, insertion) order
// on the goroutine calling Advance.
type Virtual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*virtualTimer
}

type virtualTimer struct {
	v   *Virtual
	at  time.Duration
	seq uint64
	fn  func()
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) After(d time.Duration, fn func()) Timer {
	v.mu.Lock()
	defer v.mu.Unlock()

	if d < 0 {
		d = 0
	}
	v.seq++
	t := &virtualTimer{v: v, at: v.now + d, seq: v.seq, fn: fn}
	v.timers = append(v.timers, t)
	return t
}

func (t *virtualTimer) Stop() bool {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()
	return t.v.remove(t)
}

// Advance moves the clock forward by d, firing everything that becomes due.
// Callbacks scheduled by fired callbacks fire too if they fall inside the window.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	deadline := v.now + d
	v.mu.Unlock()

	for {
		v.mu.Lock()
		next := v.earliest()
		if next == nil || next.at > deadline {
			v.now = deadline
			v.mu.Unlock()
			return
		}
		v.remove(next)
		v.now = next.at
		v.mu.Unlock()

		next.fn()
	}
}

// Now returns the elapsed virtual time.
func (v *Virtual) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Pending returns the number of armed timers.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

func (v *Virtual) earliest() *virtualTimer {
	var best *virtualTimer
	for _, t := range v.timers {
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// caller holds v.mu
func (v *Virtual) remove(t *virtualTimer) bool {
	for i, cur := range v.timers {
		if cur == t {
			v.timers = append(v.timers[:i], v.timers[i+1:]...)
			return true
		}
	}
	return false
}
