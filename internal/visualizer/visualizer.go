package visualizer

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/dsaviz/internal/anim"
	"github.com/san-kum/dsaviz/internal/dsa"
	"github.com/san-kum/dsaviz/internal/oplog"
	"github.com/san-kum/dsaviz/internal/render"
)

// NoPosition marks an absent insert position, which appends. It is also -1,
// so a linked-list Delete(NoPosition) removes the tail.
const NoPosition = -1

// Surface redraws from a full render model. Highlight is called from timer
// goroutines while a traversal animation runs.
type Surface interface {
	Draw(m render.Model)
	Highlight(id string, on bool)
}

type Visualizer struct {
	mu       sync.Mutex
	mode     dsa.Mode
	seq      dsa.Sequence
	layout   render.Layout
	model    render.Model
	sink     oplog.Sink
	surfaces []Surface
	lit      map[string]bool
	now      func() time.Time
	log      logrus.FieldLogger

	animClock    anim.Clock
	animStagger  time.Duration
	animDuration time.Duration
	hl           *anim.Highlighter
}

type Option func(*Visualizer)

func WithMode(m dsa.Mode) Option {
	return func(v *Visualizer) { v.mode = m }
}

func WithLayout(l render.Layout) Option {
	return func(v *Visualizer) { v.layout = l }
}

func WithClock(now func() time.Time) Option {
	return func(v *Visualizer) { v.now = now }
}

func WithAnimation(clock anim.Clock, stagger, duration time.Duration) Option {
	return func(v *Visualizer) {
		v.animClock = clock
		v.animStagger = stagger
		v.animDuration = duration
	}
}

func WithSurface(s Surface) Option {
	return func(v *Visualizer) { v.surfaces = append(v.surfaces, s) }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(v *Visualizer) { v.log = l }
}

func New(sink oplog.Sink, opts ...Option) *Visualizer {
	v := &Visualizer{
		mode:   dsa.LinkedList,
		seq:    dsa.Sequence{},
		layout: render.DefaultLayout(),
		sink:   sink,
		lit:    make(map[string]bool),
		now:    time.Now,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.hl = anim.NewHighlighter(v, v.animClock, v.animStagger, v.animDuration)
	v.model = render.Build(v.seq, v.mode, v.layout)
	return v
}

// AddSurface attaches s and draws the current model on it.
func (v *Visualizer) AddSurface(s Surface) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.surfaces = append(v.surfaces, s)
	s.Draw(v.model)
}

func (v *Visualizer) Mode() dsa.Mode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

func (v *Visualizer) Sequence() dsa.Sequence {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.seq.Clone()
}

func (v *Visualizer) Model() render.Model {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.model
}

// Highlighted returns the ids currently lit by a traversal, sorted.
func (v *Visualizer) Highlighted() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := make([]string, 0, len(v.lit))
	for id := range v.lit {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Highlight implements anim.Target.
func (v *Visualizer) Highlight(id string, on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if on {
		v.lit[id] = true
	} else {
		delete(v.lit, id)
	}
	for _, s := range v.surfaces {
		s.Highlight(id, on)
	}
}

// SetMode switches the structure type. The sequence is discarded, not
// converted.
func (v *Visualizer) SetMode(m dsa.Mode) {
	v.hl.Stop()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = m
	v.clearLocked()
}

func (v *Visualizer) Clear() {
	v.hl.Stop()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clearLocked()
}

func (v *Visualizer) clearLocked() {
	v.seq = dsa.Sequence{}
	v.redrawLocked()
	v.logf("%s cleared", v.mode)
}

// Insert adds value. In linked-list mode position selects the index: NoPosition
// or a past-the-end position appends, and any other negative position counts
// back from the tail. Stack and queue ignore position.
func (v *Visualizer) Insert(value, position int) {
	v.hl.Stop()
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.mode {
	case dsa.Stack:
		v.seq = append(v.seq, value)
		v.redrawLocked()
		v.logf("Pushed %d onto stack", value)
	case dsa.Queue:
		v.seq = append(v.seq, value)
		v.redrawLocked()
		v.logf("Enqueued %d", value)
	default:
		if position == NoPosition || position >= len(v.seq) {
			v.seq = append(v.seq, value)
			v.redrawLocked()
			v.logf("Inserted %d at end", value)
			return
		}
		at := fromTail(position, len(v.seq))
		v.seq = append(v.seq, 0)
		copy(v.seq[at+1:], v.seq[at:])
		v.seq[at] = value
		v.redrawLocked()
		v.logf("Inserted %d at position %d", value, position)
	}
}

// Delete removes one element and returns it. In linked-list mode a negative
// position counts back from the tail (-1 is the last node) and a past-the-end
// position removes the tail. Empty structures log a message and return
// dsa.ErrEmpty.
func (v *Visualizer) Delete(position int) (int, error) {
	v.hl.Stop()
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.seq) == 0 {
		v.logf("%s", v.mode.EmptyMessage())
		return 0, &dsa.OpError{Op: "delete", Mode: v.mode, Wrapped: dsa.ErrEmpty}
	}

	var removed int
	switch v.mode {
	case dsa.Stack:
		last := len(v.seq) - 1
		removed = v.seq[last]
		v.seq = v.seq[:last]
		v.redrawLocked()
		v.logf("Popped %d from stack", removed)
	case dsa.Queue:
		removed = v.seq[0]
		v.seq = append(dsa.Sequence{}, v.seq[1:]...)
		v.redrawLocked()
		v.logf("Dequeued %d", removed)
	default:
		if position >= len(v.seq) {
			position = len(v.seq) - 1
		}
		at := fromTail(position, len(v.seq))
		removed = v.seq[at]
		v.seq = append(v.seq[:at], v.seq[at+1:]...)
		v.redrawLocked()
		v.logf("Deleted %d from position %d", removed, position)
	}
	return removed, nil
}

// Traverse logs the contents in reading order. In linked-list mode it also
// starts a highlight run and returns its token; other modes return nil.
func (v *Visualizer) Traverse() (*anim.Token, error) {
	v.mu.Lock()
	if len(v.seq) == 0 {
		v.logf("%s", v.mode.EmptyMessage())
		mode := v.mode
		v.mu.Unlock()
		return nil, &dsa.OpError{Op: "traverse", Mode: mode, Wrapped: dsa.ErrEmpty}
	}

	var ids []string
	switch v.mode {
	case dsa.Stack:
		v.logf("Stack (top to bottom): %s", v.seq.Reversed().Join(" | "))
	case dsa.Queue:
		v.logf("Queue (front to rear): %s", v.seq.Join(" | "))
	default:
		v.logf("Traversing: %s", v.seq.Join(" -> "))
		ids = make([]string, len(v.seq))
		for i := range v.seq {
			ids[i] = render.NodeID(i)
		}
	}
	v.mu.Unlock()

	if ids == nil {
		return nil, nil
	}
	return v.hl.Start(ids), nil
}

// StopAnimation cancels a running traversal highlight.
func (v *Visualizer) StopAnimation() {
	v.hl.Stop()
}

// Animating reports whether a traversal highlight is running.
func (v *Visualizer) Animating() bool {
	return v.hl.Active()
}

// Note appends a free-form line to the operation log.
func (v *Visualizer) Note(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.logf(format, args...)
}

// fromTail resolves a negative index against n, clamping at the head.
func fromTail(position, n int) int {
	if position >= 0 {
		return position
	}
	if position += n; position < 0 {
		return 0
	}
	return position
}

func (v *Visualizer) redrawLocked() {
	v.model = render.Build(v.seq, v.mode, v.layout)
	v.lit = make(map[string]bool)
	for _, s := range v.surfaces {
		s.Draw(v.model)
	}
}

func (v *Visualizer) logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	v.log.WithFields(logrus.Fields{
		"mode":   v.mode.String(),
		"length": len(v.seq),
	}).Debug(strings.ToLower(msg))
	if v.sink == nil {
		return
	}
	v.sink.Append(oplog.Entry{Time: v.now(), Message: msg, Length: len(v.seq)})
}
