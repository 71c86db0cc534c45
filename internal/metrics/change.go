package metrics

import "github.com/san-kum/dsaviz/internal/oplog"

// delta tracks the length change between consecutive entries. A session
// starts from an empty sequence.
type delta struct {
	prev int
}

func (d *delta) next(e oplog.Entry) int {
	diff := e.Length - d.prev
	d.prev = e.Length
	return diff
}

// Growth counts entries after which the sequence got longer.
type Growth struct {
	name  string
	d     delta
	count int
}

func NewGrowth() *Growth {
	return &Growth{name: "inserts"}
}

func (g *Growth) Name() string { return g.name }

func (g *Growth) Observe(e oplog.Entry) {
	if g.d.next(e) > 0 {
		g.count++
	}
}

func (g *Growth) Value() float64 { return float64(g.count) }

func (g *Growth) Reset() {
	g.d = delta{}
	g.count = 0
}

// Shrink counts entries after which the sequence got shorter, clears included.
type Shrink struct {
	name  string
	d     delta
	count int
}

func NewShrink() *Shrink {
	return &Shrink{name: "removals"}
}

func (s *Shrink) Name() string { return s.name }

func (s *Shrink) Observe(e oplog.Entry) {
	if s.d.next(e) < 0 {
		s.count++
	}
}

func (s *Shrink) Value() float64 { return float64(s.count) }

func (s *Shrink) Reset() {
	s.d = delta{}
	s.count = 0
}

// Churn is the fraction of entries that changed the sequence length.
// Traversals, notes and rejected input count as non-changing.
type Churn struct {
	name    string
	d       delta
	changes int
	samples int
}

func NewChurn() *Churn {
	return &Churn{name: "churn"}
}

func (c *Churn) Name() string { return c.name }

func (c *Churn) Observe(e oplog.Entry) {
	c.samples++
	if c.d.next(e) != 0 {
		c.changes++
	}
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.changes) / float64(c.samples)
}

func (c *Churn) Reset() {
	c.d = delta{}
	c.changes = 0
	c.samples = 0
}
