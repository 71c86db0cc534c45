package anim

import (
	"context"
	"sync"
	"testing"
	"time"
)

type event struct {
	at time.Duration
	id string
	on bool
}

type recorder struct {
	mu     sync.Mutex
	clock  *ManualClock
	start  time.Duration
	events []event
}

func (r *recorder) Highlight(id string, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{at: r.clock.now, id: id, on: on})
}

func newRig() (*ManualClock, *recorder, *Highlighter) {
	clock := NewManualClock()
	rec := &recorder{clock: clock}
	return clock, rec, NewHighlighter(rec, clock, 0, 0)
}

func TestHighlightSchedule(t *testing.T) {
	clock, rec, h := newRig()
	tok := h.Start([]string{"node-0", "node-1", "node-2"})

	clock.Advance(5 * time.Second)

	want := []event{
		{0, "node-0", true},
		{500 * time.Millisecond, "node-1", true},
		{1000 * time.Millisecond, "node-2", true},
		{1000 * time.Millisecond, "node-0", false},
		{1500 * time.Millisecond, "node-1", false},
		{2000 * time.Millisecond, "node-2", false},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(rec.events), rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], rec.events[i])
		}
	}

	select {
	case <-tok.Done():
	default:
		t.Error("token should be done after all nodes unlit")
	}
	if h.Active() {
		t.Error("highlighter should be idle")
	}
}

func TestHighlightSupersede(t *testing.T) {
	clock, rec, h := newRig()
	first := h.Start([]string{"node-0", "node-1", "node-2"})
	clock.Advance(600 * time.Millisecond)

	second := h.Start([]string{"node-0"})
	if second.Generation() <= first.Generation() {
		t.Error("generation should increase")
	}

	select {
	case <-first.Done():
	default:
		t.Fatal("superseded token should be done")
	}

	// node-0 and node-1 were lit and must be switched off by the cancel.
	offs := 0
	for _, e := range rec.events {
		if !e.on {
			offs++
		}
	}
	if offs != 2 {
		t.Errorf("expected 2 unlit events on cancel, got %d", offs)
	}

	before := len(rec.events)
	clock.Advance(10 * time.Second)
	for _, e := range rec.events[before:] {
		if e.id != "node-0" {
			t.Errorf("superseded run fired for %s", e.id)
		}
	}
	if got := len(rec.events) - before; got != 2 {
		t.Errorf("expected 2 events from second run, got %d", got)
	}
	if clock.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", clock.Pending())
	}
}

func TestHighlightCancel(t *testing.T) {
	clock, rec, h := newRig()
	tok := h.Start([]string{"node-0", "node-1"})
	tok.Cancel()
	clock.Advance(time.Minute)

	if len(rec.events) != 0 {
		t.Errorf("cancelled run should not fire, got %v", rec.events)
	}
	if err := tok.Wait(context.Background()); err != nil {
		t.Errorf("wait: %v", err)
	}
}

func TestHighlightEmpty(t *testing.T) {
	_, _, h := newRig()
	tok := h.Start(nil)
	select {
	case <-tok.Done():
	default:
		t.Error("empty run should finish immediately")
	}
}

func TestWaitContext(t *testing.T) {
	_, _, h := newRig()
	tok := h.Start([]string{"node-0"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tok.Wait(ctx); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	h.Stop()
}
