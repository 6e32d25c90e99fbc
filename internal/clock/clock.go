package clock

import "time"

// Timer is a pending callback. Stop reports whether the call prevented the callback from firing.
type Timer interface {
	Stop() bool
}

type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

// Real schedules callbacks on wall-clock timers. Callbacks run on their own goroutine,
// wrap it with Posted to hand them to an owning loop.
type Real struct{}

func (Real) After(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

type posted struct {
	s    Scheduler
	post func(fn func())
}

// Posted keeps the timing of s but hands every due callback to post instead of running it.
func Posted(s Scheduler, post func(fn func())) Scheduler {
	return posted{s: s, post: post}
}

func (p posted) After(d time.Duration, fn func()) Timer {
	return p.s.After(d, func() { p.post(fn) })
}
