package anim

import (
	"sort"
	"sync"
	"time"
)

type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The real clock wraps time.AfterFunc; tests use
// ManualClock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock is the wall-clock scheduler.
var RealClock Clock = realClock{}

// ManualClock fires callbacks only when Advance moves time past their
// deadline. Callbacks run synchronously inside Advance in deadline order.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	clock   *ManualClock
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, at: c.now + d, seq: c.seq, f: f}
	c.pending = append(c.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d, firing due timers. Timers scheduled
// by a callback fire in the same call if they fall inside the window.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.SliceStable(c.pending, func(i, j int) bool {
			if c.pending[i].at != c.pending[j].at {
				return c.pending[i].at < c.pending[j].at
			}
			return c.pending[i].seq < c.pending[j].seq
		})
		var next *manualTimer
		for len(c.pending) > 0 {
			head := c.pending[0]
			if head.stopped {
				c.pending = c.pending[1:]
				continue
			}
			if head.at <= target {
				next = head
				c.pending = c.pending[1:]
			}
			break
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		next.fired = true
		c.mu.Unlock()
		next.f()
	}
}

// Pending reports timers that are neither stopped nor fired.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}
