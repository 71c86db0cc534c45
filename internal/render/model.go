package render

import (
	"fmt"
	"math"

	"github.com/san-kum/dsaviz/internal/dsa"
)

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

func (k ShapeKind) String() string {
	if k == ShapeRect {
		return "rect"
	}
	return "circle"
}

// Marker is an arrow-head definition referenced by links.
type Marker struct {
	ID     string
	Width  float64
	Height float64
	RefX   float64
	RefY   float64
	Points string
	Fill   string
}

// Arrowhead is the marker used by linked-list links.
var Arrowhead = Marker{
	ID:     "arrowhead",
	Width:  10,
	Height: 7,
	RefX:   9,
	RefY:   3.5,
	Points: "0 0, 10 3.5, 0 7",
	Fill:   "#ffffff",
}

// Node is one element of the sequence. CX, CY is always the centre; for
// rectangles W and H give the size, for circles R the radius.
type Node struct {
	ID          string
	Index       int
	Value       int
	Shape       ShapeKind
	CX, CY      float64
	R           float64
	W, H        float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Class       string
}

type Link struct {
	From, To       int
	X1, Y1, X2, Y2 float64
	MarkerEnd      string
	Class          string
}

type Label struct {
	X, Y     float64
	Text     string
	Fill     string
	FontSize float64
	Anchor   string
}

type Model struct {
	Mode    dsa.Mode
	Markers []Marker
	Nodes   []Node
	Links   []Link
	Labels  []Label
}

func NodeID(index int) string {
	return fmt.Sprintf("node-%d", index)
}

// Empty reports whether the model draws nothing beyond marker definitions.
func (m Model) Empty() bool {
	return len(m.Nodes) == 0 && len(m.Links) == 0 && len(m.Labels) == 0
}

func (m Model) Node(id string) (Node, bool) {
	for _, n := range m.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Bounds returns the extent of every drawn shape. An empty model has a zero
// rectangle.
func (m Model) Bounds() (minX, minY, maxX, maxY float64) {
	if m.Empty() {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x0, y0, x1, y1 float64) {
		minX = math.Min(minX, x0)
		minY = math.Min(minY, y0)
		maxX = math.Max(maxX, x1)
		maxY = math.Max(maxY, y1)
	}
	for _, n := range m.Nodes {
		if n.Shape == ShapeCircle {
			grow(n.CX-n.R, n.CY-n.R, n.CX+n.R, n.CY+n.R)
		} else {
			grow(n.CX-n.W/2, n.CY-n.H/2, n.CX+n.W/2, n.CY+n.H/2)
		}
	}
	for _, l := range m.Links {
		grow(math.Min(l.X1, l.X2), math.Min(l.Y1, l.Y2), math.Max(l.X1, l.X2), math.Max(l.Y1, l.Y2))
	}
	for _, lb := range m.Labels {
		// approximate text box
		w := float64(len([]rune(lb.Text))) * lb.FontSize * 0.6
		x0 := lb.X
		if lb.Anchor == "middle" {
			x0 -= w / 2
		}
		grow(x0, lb.Y-lb.FontSize, x0+w, lb.Y)
	}
	return minX, minY, maxX, maxY
}
