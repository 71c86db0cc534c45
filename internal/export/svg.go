package export

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	"github.com/san-kum/dsaviz/internal/render"
	"github.com/san-kum/dsaviz/internal/viz"
)

// SVGOptions controls the standalone document produced by ModelToSVG.
type SVGOptions struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Background    string `yaml:"background"`
	NodeFill      string `yaml:"node_fill"`
	NodeStroke    string `yaml:"node_stroke"`
	HighlightFill string `yaml:"highlight_fill"`
	TextFill      string `yaml:"text_fill"`
	LinkStroke    string `yaml:"link_stroke"`
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:         800,
		Height:        400,
		Background:    "#1a1a2e",
		NodeFill:      "#4ecca3",
		NodeStroke:    "#ffffff",
		HighlightFill: "#ff6b6b",
		TextFill:      "#ffffff",
		LinkStroke:    "#ffffff",
	}
}

const svgMargin = 20

// ModelToSVG renders a model as a standalone SVG document. Nodes whose id is
// in highlighted are filled with the highlight colour.
func ModelToSVG(m render.Model, opts SVGOptions, highlighted []string) string {
	lit := make(map[string]bool, len(highlighted))
	for _, id := range highlighted {
		lit[id] = true
	}

	width, height := float64(opts.Width), float64(opts.Height)
	if !m.Empty() {
		_, _, maxX, maxY := m.Bounds()
		width = math.Max(width, math.Ceil(maxX)+svgMargin)
		height = math.Max(height, math.Ceil(maxY)+svgMargin)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, opts.Background))

	sb.WriteString("<defs>\n")
	for _, mk := range m.Markers {
		sb.WriteString(fmt.Sprintf(`<marker id="%s" markerWidth="%g" markerHeight="%g" refX="%g" refY="%g" orient="auto"><polygon points="%s" fill="%s"/></marker>
`, mk.ID, mk.Width, mk.Height, mk.RefX, mk.RefY, mk.Points, mk.Fill))
	}
	sb.WriteString("</defs>\n")

	for _, n := range m.Nodes {
		fill := n.Fill
		if fill == "" {
			fill = opts.NodeFill
		}
		stroke := n.Stroke
		if stroke == "" {
			stroke = opts.NodeStroke
		}
		strokeWidth := n.StrokeWidth
		if strokeWidth == 0 {
			strokeWidth = 2
		}
		if lit[n.ID] {
			fill = opts.HighlightFill
		}

		switch n.Shape {
		case render.ShapeRect:
			sb.WriteString(fmt.Sprintf(`<rect id="%s" x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="%s" stroke-width="%g"/>
`, n.ID, n.CX-n.W/2, n.CY-n.H/2, n.W, n.H, fill, stroke, strokeWidth))
		default:
			sb.WriteString(fmt.Sprintf(`<circle id="%s" cx="%g" cy="%g" r="%g" fill="%s" stroke="%s" stroke-width="%g"/>
`, n.ID, n.CX, n.CY, n.R, fill, stroke, strokeWidth))
		}
		textFill := opts.TextFill
		if n.Shape == render.ShapeRect {
			textFill = "#000000"
		}
		sb.WriteString(fmt.Sprintf(`<text x="%g" y="%g" fill="%s" font-size="16" font-weight="bold" text-anchor="middle" dominant-baseline="middle">%d</text>
`, n.CX, n.CY, textFill, n.Value))
	}

	for _, l := range m.Links {
		marker := ""
		if l.MarkerEnd != "" {
			marker = fmt.Sprintf(` marker-end="url(#%s)"`, l.MarkerEnd)
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="2"%s/>
`, l.X1, l.Y1, l.X2, l.Y2, opts.LinkStroke, marker))
	}

	for _, lb := range m.Labels {
		anchor := ""
		if lb.Anchor != "" {
			anchor = fmt.Sprintf(` text-anchor="%s"`, lb.Anchor)
		}
		sb.WriteString(fmt.Sprintf(`<text x="%g" y="%g" fill="%s" font-size="%g"%s>%s</text>
`, lb.X, lb.Y, lb.Fill, lb.FontSize, anchor, html.EscapeString(lb.Text)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes ModelToSVG output to w.
func WriteSVG(w io.Writer, m render.Model, opts SVGOptions, highlighted []string) error {
	_, err := io.WriteString(w, ModelToSVG(m, opts, highlighted))
	return err
}

// CanvasToSVG converts a Braille canvas preview to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#ffd700">
`, width, height, width, height))

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if canvas.IsSet(col*2+dx, row*4+dy) {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
