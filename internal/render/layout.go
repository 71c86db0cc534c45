package render

import "github.com/san-kum/dsaviz/internal/dsa"

type ListLayout struct {
	Radius  float64 `yaml:"radius"`
	Spacing float64 `yaml:"spacing"`
	StartX  float64 `yaml:"start_x"`
	StartY  float64 `yaml:"start_y"`
}

// BoxLayout places rectangles along one axis with Gap between them.
type BoxLayout struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Gap    float64 `yaml:"gap"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

type Palette struct {
	NodeFill   string `yaml:"node_fill"`
	NodeStroke string `yaml:"node_stroke"`
	LabelFill  string `yaml:"label_fill"`
}

type Layout struct {
	List    ListLayout `yaml:"list"`
	Stack   BoxLayout  `yaml:"stack"`
	Queue   BoxLayout  `yaml:"queue"`
	Palette Palette    `yaml:"palette"`
}

func DefaultLayout() Layout {
	return Layout{
		List:  ListLayout{Radius: 25, Spacing: 100, StartX: 50, StartY: 200},
		Stack: BoxLayout{Width: 80, Height: 40, Gap: 5, StartX: 200, StartY: 350},
		Queue: BoxLayout{Width: 60, Height: 40, Gap: 10, StartX: 50, StartY: 200},
		Palette: Palette{
			NodeFill:   "#ffd700",
			NodeStroke: "#ffffff",
			LabelFill:  "#ffd700",
		},
	}
}

// Build computes the full render model for seq in the given mode.
func Build(seq dsa.Sequence, mode dsa.Mode, layout Layout) Model {
	m := Model{
		Mode:    mode,
		Markers: []Marker{Arrowhead},
	}
	if len(seq) == 0 {
		return m
	}
	switch mode {
	case dsa.Stack:
		buildStack(&m, seq, layout.Stack, layout.Palette)
	case dsa.Queue:
		buildQueue(&m, seq, layout.Queue, layout.Palette)
	default:
		buildList(&m, seq, layout.List)
	}
	return m
}

func buildList(m *Model, seq dsa.Sequence, l ListLayout) {
	m.Nodes = make([]Node, 0, len(seq))
	m.Links = make([]Link, 0, len(seq)-1)
	for i, v := range seq {
		x := l.StartX + float64(i)*l.Spacing
		m.Nodes = append(m.Nodes, Node{
			ID:    NodeID(i),
			Index: i,
			Value: v,
			Shape: ShapeCircle,
			CX:    x,
			CY:    l.StartY,
			R:     l.Radius,
			Class: "node",
		})
		if i < len(seq)-1 {
			m.Links = append(m.Links, Link{
				From:      i,
				To:        i + 1,
				X1:        x + l.Radius,
				Y1:        l.StartY,
				X2:        l.StartX + float64(i+1)*l.Spacing - l.Radius,
				Y2:        l.StartY,
				MarkerEnd: Arrowhead.ID,
				Class:     "link",
			})
		}
	}
}

func buildStack(m *Model, seq dsa.Sequence, l BoxLayout, p Palette) {
	m.Nodes = make([]Node, 0, len(seq))
	for i, v := range seq {
		y := l.StartY - float64(i)*(l.Height+l.Gap)
		m.Nodes = append(m.Nodes, box(i, v, l.StartX, y, l, p))
	}
	top := len(seq) - 1
	m.Labels = []Label{{
		X:        l.StartX + l.Width/2 + 20,
		Y:        l.StartY - float64(top)*(l.Height+l.Gap),
		Text:     "← TOP",
		Fill:     p.LabelFill,
		FontSize: 14,
	}}
}

func buildQueue(m *Model, seq dsa.Sequence, l BoxLayout, p Palette) {
	m.Nodes = make([]Node, 0, len(seq))
	for i, v := range seq {
		left := l.StartX + float64(i)*(l.Width+l.Gap)
		m.Nodes = append(m.Nodes, box(i, v, left+l.Width/2, l.StartY, l, p))
	}
	rear := len(seq) - 1
	m.Labels = []Label{
		{
			X:        l.StartX + l.Width/2,
			Y:        l.StartY - 35,
			Text:     "FRONT",
			Fill:     p.LabelFill,
			FontSize: 12,
			Anchor:   "middle",
		},
		{
			X:        l.StartX + float64(rear)*(l.Width+l.Gap) + l.Width/2,
			Y:        l.StartY + 35,
			Text:     "REAR",
			Fill:     p.LabelFill,
			FontSize: 12,
			Anchor:   "middle",
		},
	}
}

func box(i, v int, cx, cy float64, l BoxLayout, p Palette) Node {
	return Node{
		ID:          NodeID(i),
		Index:       i,
		Value:       v,
		Shape:       ShapeRect,
		CX:          cx,
		CY:          cy,
		W:           l.Width,
		H:           l.Height,
		Fill:        p.NodeFill,
		Stroke:      p.NodeStroke,
		StrokeWidth: 2,
	}
}
