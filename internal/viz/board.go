package viz

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dsaviz/internal/dsa"
	"github.com/san-kum/dsaviz/internal/render"
)

// RenderBoard draws m as character cells. With a nil styles pointer the
// output is plain text, which keeps it testable.
func RenderBoard(m render.Model, lit map[string]bool, st *Styles) string {
	if m.Empty() {
		return paint(st, kindSubtle, "(empty)")
	}
	width := cellWidth(m)
	switch m.Mode {
	case dsa.Stack:
		return boardStack(m, lit, st, width)
	case dsa.Queue:
		return boardQueue(m, lit, st, width)
	default:
		return boardList(m, lit, st, width)
	}
}

type kind int

const (
	kindNode kind = iota
	kindLit
	kindLink
	kindMarker
	kindSubtle
)

func paint(st *Styles, k kind, s string) string {
	if st == nil {
		return s
	}
	var style lipgloss.Style
	switch k {
	case kindLit:
		style = st.Highlight
	case kindLink:
		style = st.Link
	case kindMarker:
		style = st.Marker
	case kindSubtle:
		style = st.Subtle
	default:
		style = st.Node
	}
	return style.Render(s)
}

func cellWidth(m render.Model) int {
	w := 1
	for _, n := range m.Nodes {
		if l := len(strconv.Itoa(n.Value)); l > w {
			w = l
		}
	}
	return w + 2
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}

func nodeKind(n render.Node, lit map[string]bool) kind {
	if lit[n.ID] {
		return kindLit
	}
	return kindNode
}

func boardList(m render.Model, lit map[string]bool, st *Styles, w int) string {
	const arrow = " ──▶ "
	var row, marks strings.Builder
	for i, n := range m.Nodes {
		cell := "(" + center(strconv.Itoa(n.Value), w) + ")"
		row.WriteString(paint(st, nodeKind(n, lit), cell))
		label := ""
		switch {
		case len(m.Nodes) == 1:
			label = "head/tail"
		case i == 0:
			label = "head"
		case i == len(m.Nodes)-1:
			label = "tail"
		}
		marks.WriteString(paint(st, kindMarker, center(label, w+2)))
		if i < len(m.Nodes)-1 {
			row.WriteString(paint(st, kindLink, arrow))
			marks.WriteString(strings.Repeat(" ", len([]rune(arrow))))
		}
	}
	return row.String() + "\n" + strings.TrimRight(marks.String(), " ")
}

func boardStack(m render.Model, lit map[string]bool, st *Styles, w int) string {
	lines := make([]string, 0, len(m.Nodes)+1)
	for i := len(m.Nodes) - 1; i >= 0; i-- {
		n := m.Nodes[i]
		line := paint(st, kindLink, "│") + paint(st, nodeKind(n, lit), center(strconv.Itoa(n.Value), w)) + paint(st, kindLink, "│")
		if i == len(m.Nodes)-1 {
			line += " " + paint(st, kindMarker, "← TOP")
		}
		lines = append(lines, line)
	}
	lines = append(lines, paint(st, kindLink, "└"+strings.Repeat("─", w)+"┘"))
	return strings.Join(lines, "\n")
}

func boardQueue(m render.Model, lit map[string]bool, st *Styles, w int) string {
	var top, row, bottom strings.Builder
	step := w + 1
	for i, n := range m.Nodes {
		row.WriteString(paint(st, kindLink, "│"))
		row.WriteString(paint(st, nodeKind(n, lit), center(strconv.Itoa(n.Value), w)))
		topLabel, bottomLabel := "", ""
		if i == 0 {
			topLabel = "FRONT"
		}
		if i == len(m.Nodes)-1 {
			bottomLabel = "REAR"
		}
		top.WriteString(paint(st, kindMarker, center(topLabel, step)))
		bottom.WriteString(paint(st, kindMarker, center(bottomLabel, step)))
	}
	row.WriteString(paint(st, kindLink, "│"))
	return strings.TrimRight(top.String(), " ") + "\n" + row.String() + "\n" + strings.TrimRight(bottom.String(), " ")
}

// BoardSurface keeps the latest model and highlight set for the TUI.
type BoardSurface struct {
	mu    sync.Mutex
	model render.Model
	lit   map[string]bool
}

func NewBoardSurface() *BoardSurface {
	return &BoardSurface{lit: make(map[string]bool)}
}

func (b *BoardSurface) Draw(m render.Model) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.model = m
	b.lit = make(map[string]bool)
}

func (b *BoardSurface) Highlight(id string, on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if on {
		b.lit[id] = true
	} else {
		delete(b.lit, id)
	}
}

func (b *BoardSurface) Render(st *Styles) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return RenderBoard(b.model, b.lit, st)
}
