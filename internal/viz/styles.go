package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are built per theme; nothing here is package-global mutable state.
type Styles struct {
	Title     lipgloss.Style
	Panel     lipgloss.Style
	Node      lipgloss.Style
	Highlight lipgloss.Style
	Marker    lipgloss.Style
	Link      lipgloss.Style
	Subtle    lipgloss.Style
	KeyHint   lipgloss.Style
	Selected  lipgloss.Style
	Warning   lipgloss.Style
	LogLine   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Node: lipgloss.NewStyle().
			Foreground(t.Node),
		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Highlight),
		Marker: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Marker),
		Link: lipgloss.NewStyle().
			Foreground(t.Text),
		Subtle: lipgloss.NewStyle().
			Foreground(t.Muted),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),
		Warning: lipgloss.NewStyle().
			Foreground(t.Warning),
		LogLine: lipgloss.NewStyle().
			Foreground(t.Text),
	}
}

// BoxWithTitle renders a titled box
func BoxWithTitle(st Styles, title, content string, width int) string {
	box := st.Panel.Width(width)
	fill := width - lipgloss.Width(title) - 4
	if fill < 0 {
		fill = 0
	}
	header := "╭─ " + st.Title.Render(title) + " " + strings.Repeat("─", fill) + "╮"
	return header + "\n" + box.Render(content)
}

// Separator draws a decorative rule.
func Separator(st Styles, width int) string {
	if width < 8 {
		return st.Subtle.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return st.Subtle.Render(left + " ◆ " + right)
}
