package viz

import (
	"math"
	"sync"

	"github.com/san-kum/dsaviz/internal/render"
)

// Rasterize scales m to fit the canvas and draws its shapes. Highlighted
// nodes are filled solid. Text is not drawn; Braille cells cannot carry it.
func Rasterize(c *Canvas, m render.Model, highlighted map[string]bool) {
	c.Clear()
	if m.Empty() {
		return
	}
	minX, minY, maxX, maxY := m.Bounds()
	pw, ph := float64(c.PixelWidth()-1), float64(c.PixelHeight()-1)
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	scale := math.Min(pw/spanX, ph/spanY)
	px := func(x float64) int { return int(math.Round((x - minX) * scale)) }
	py := func(y float64) int { return int(math.Round((y - minY) * scale)) }

	for _, n := range m.Nodes {
		switch n.Shape {
		case render.ShapeRect:
			x, y := px(n.CX-n.W/2), py(n.CY-n.H/2)
			w, h := int(math.Round(n.W*scale)), int(math.Round(n.H*scale))
			if highlighted[n.ID] {
				c.FillRect(x, y, w, h)
			} else {
				c.DrawRect(x, y, w, h)
			}
		default:
			r := int(math.Round(n.R * scale))
			c.DrawCircle(px(n.CX), py(n.CY), r)
			if highlighted[n.ID] {
				for rr := r - 1; rr > 0; rr-- {
					c.DrawCircle(px(n.CX), py(n.CY), rr)
				}
			}
		}
	}
	for _, l := range m.Links {
		c.DrawLine(px(l.X1), py(l.Y1), px(l.X2), py(l.Y2))
		// arrow head
		x2, y2 := px(l.X2), py(l.Y2)
		c.DrawLine(x2, y2, x2-2, y2-2)
		c.DrawLine(x2, y2, x2-2, y2+2)
	}
}

// CanvasSurface keeps a Braille canvas in sync with the visualizer.
type CanvasSurface struct {
	mu     sync.Mutex
	canvas *Canvas
	model  render.Model
	lit    map[string]bool
}

func NewCanvasSurface(w, h int) *CanvasSurface {
	return &CanvasSurface{canvas: NewCanvas(w, h), lit: make(map[string]bool)}
}

func (s *CanvasSurface) Draw(m render.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = m
	s.lit = make(map[string]bool)
	Rasterize(s.canvas, m, s.lit)
}

func (s *CanvasSurface) Highlight(id string, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.lit[id] = true
	} else {
		delete(s.lit, id)
	}
	Rasterize(s.canvas, s.model, s.lit)
}

func (s *CanvasSurface) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.String()
}

// Canvas returns a copy of the current canvas.
func (s *CanvasSurface) Canvas() *Canvas {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := NewCanvas(s.canvas.Width, s.canvas.Height)
	for i := range s.canvas.Grid {
		copy(cp.Grid[i], s.canvas.Grid[i])
	}
	return cp
}
