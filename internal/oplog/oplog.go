// Package oplog is the append-only operation log shown next to the visualizer.
package oplog

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timeLayout = "15:04:05"

// Entry is one logged operation. Length is the sequence length after the
// operation ran.
type Entry struct {
	Time    time.Time
	Message string
	Length  int
}

// String renders the entry as "[HH:MM:SS] message".
func (e Entry) String() string {
	return Format(e.Time, e.Message)
}

func Format(t time.Time, msg string) string {
	return "[" + t.Format(timeLayout) + "] " + msg
}

type Sink interface {
	Append(e Entry)
}

// Log keeps every entry for the lifetime of a session. Entries are never
// removed.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	subs    []chan Entry
}

func New() *Log {
	return &Log{entries: make([]Entry, 0, 64)}
}

func (l *Log) Append(e Entry) {
	l.mu.Lock()
	l.entries = append(l.entries, e)
	subs := l.subs
	l.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- e:
		default:
		}
	}
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.String()
	}
	return out
}

// Tail returns the last n lines, the view an auto-scrolling pane shows.
func (l *Log) Tail(n int) []string {
	lines := l.Lines()
	if n <= 0 {
		return nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// Subscribe returns a channel receiving new entries. Slow readers miss
// entries rather than block Append.
func (l *Log) Subscribe(buffer int) <-chan Entry {
	ch := make(chan Entry, buffer)
	l.mu.Lock()
	l.subs = append(l.subs, ch)
	l.mu.Unlock()
	return ch
}

// WriterSink prints each entry on its own line.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Append(e Entry) {
	fmt.Fprintln(s.w, e.String())
}

// Multi fans entries out to several sinks in order.
type Multi []Sink

func (m Multi) Append(e Entry) {
	for _, s := range m {
		s.Append(e)
	}
}
