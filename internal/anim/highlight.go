// Package anim drives the traversal highlight animation.
//
// A run lights nodes one after another: node i turns on at i*Stagger and off
// Duration later. Each run is owned by a Token; starting a new run cancels
// the previous token, so overlapping traversals never interleave.
package anim

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultStagger  = 500 * time.Millisecond
	DefaultDuration = 1000 * time.Millisecond
)

// Target receives highlight changes. Implementations must not call back into
// the Highlighter.
type Target interface {
	Highlight(id string, on bool)
}

type Highlighter struct {
	mu       sync.Mutex
	clock    Clock
	target   Target
	stagger  time.Duration
	duration time.Duration
	gen      uint64
	current  *Token
}

func NewHighlighter(target Target, clock Clock, stagger, duration time.Duration) *Highlighter {
	if clock == nil {
		clock = RealClock
	}
	if stagger <= 0 {
		stagger = DefaultStagger
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Highlighter{
		clock:    clock,
		target:   target,
		stagger:  stagger,
		duration: duration,
	}
}

// Token identifies one animation run.
type Token struct {
	h         *Highlighter
	gen       uint64
	timers    []Timer
	lit       map[string]bool
	remaining int
	done      chan struct{}
	closed    bool
}

// Start cancels any active run and schedules a new one over ids.
func (h *Highlighter) Start(ids []string) *Token {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current != nil {
		h.cancelLocked(h.current)
	}
	h.gen++
	tok := &Token{
		h:         h,
		gen:       h.gen,
		lit:       make(map[string]bool),
		remaining: len(ids),
		done:      make(chan struct{}),
	}
	h.current = tok
	if len(ids) == 0 {
		tok.finishLocked()
		return tok
	}

	for i, id := range ids {
		id := id
		on := h.clock.AfterFunc(time.Duration(i)*h.stagger, func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if tok.closed {
				return
			}
			tok.lit[id] = true
			h.target.Highlight(id, true)
			off := h.clock.AfterFunc(h.duration, func() {
				h.mu.Lock()
				defer h.mu.Unlock()
				if tok.closed {
					return
				}
				delete(tok.lit, id)
				h.target.Highlight(id, false)
				tok.remaining--
				if tok.remaining == 0 {
					tok.finishLocked()
				}
			})
			tok.timers = append(tok.timers, off)
		})
		tok.timers = append(tok.timers, on)
	}
	return tok
}

// Active reports whether a run is in progress.
func (h *Highlighter) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current != nil && !h.current.closed
}

// Stop cancels the active run, if any.
func (h *Highlighter) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current != nil {
		h.cancelLocked(h.current)
	}
}

func (h *Highlighter) cancelLocked(t *Token) {
	if t.closed {
		return
	}
	for _, tm := range t.timers {
		tm.Stop()
	}
	for id := range t.lit {
		h.target.Highlight(id, false)
	}
	t.lit = map[string]bool{}
	t.finishLocked()
}

func (t *Token) finishLocked() {
	if t.closed {
		return
	}
	t.closed = true
	close(t.done)
}

// Cancel stops the run. Lit nodes are switched off before Cancel returns and
// no further callbacks reach the target.
func (t *Token) Cancel() {
	t.h.mu.Lock()
	defer t.h.mu.Unlock()
	t.h.cancelLocked(t)
}

func (t *Token) Done() <-chan struct{} {
	return t.done
}

func (t *Token) Generation() uint64 {
	return t.gen
}

// Wait blocks until the run finishes or ctx ends.
func (t *Token) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
