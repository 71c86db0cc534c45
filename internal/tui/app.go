// Package tui is the interactive terminal front-end for the visualizer.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/dsaviz/internal/anim"
	"github.com/san-kum/dsaviz/internal/config"
	"github.com/san-kum/dsaviz/internal/dsa"
	"github.com/san-kum/dsaviz/internal/export"
	"github.com/san-kum/dsaviz/internal/oplog"
	"github.com/san-kum/dsaviz/internal/storage"
	"github.com/san-kum/dsaviz/internal/visualizer"
	"github.com/san-kum/dsaviz/internal/viz"
)

type state int

const (
	stateMenu state = iota
	stateWork
)

type focus int

const (
	focusNone focus = iota
	focusValue
	focusPosition
)

const logRows = 8

var modeInfo = map[dsa.Mode]string{
	dsa.LinkedList: "insert and delete anywhere, traverse with highlight",
	dsa.Stack:      "push and pop at the top",
	dsa.Queue:      "enqueue at the rear, dequeue at the front",
}

// Options wires the app to its collaborators. Store may be nil, which
// disables saving.
type Options struct {
	Config  *config.Config
	Store   *storage.Store
	SVGPath string
	Clock   anim.Clock
}

type App struct {
	state  state
	cursor int

	vis    *visualizer.Visualizer
	log    *oplog.Log
	sub    <-chan oplog.Entry
	scroll int
	board  *viz.BoardSurface

	value    textinput.Model
	position textinput.Model
	focus    focus

	theme  viz.Theme
	styles viz.Styles

	store   *storage.Store
	svgOpts export.SVGOptions
	svgPath string
	status  string

	width, height int
}

func NewApp(opts Options) App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	svgPath := opts.SVGPath
	if svgPath == "" {
		svgPath = "dsaviz.svg"
	}

	log := oplog.New()
	board := viz.NewBoardSurface()
	vis := visualizer.New(log,
		visualizer.WithMode(cfg.StartMode()),
		visualizer.WithLayout(cfg.Layout),
		visualizer.WithAnimation(opts.Clock, cfg.Stagger(), cfg.HighlightDuration()),
		visualizer.WithSurface(board),
	)

	value := textinput.New()
	value.Placeholder = "value"
	value.CharLimit = 12
	value.Width = 12
	value.Prompt = "value › "

	position := textinput.New()
	position.Placeholder = "position"
	position.CharLimit = 6
	position.Width = 8
	position.Prompt = "pos › "

	theme := viz.GetTheme(cfg.Theme)
	return App{
		state:    stateMenu,
		cursor:   int(cfg.StartMode()),
		vis:      vis,
		log:      log,
		sub:      log.Subscribe(16),
		board:    board,
		value:    value,
		position: position,
		theme:    theme,
		styles:   viz.NewStyles(theme),
		store:    opts.Store,
		svgOpts:  cfg.SVG,
		svgPath:  svgPath,
		width:    80,
		height:   24,
	}
}

// Visualizer exposes the session's visualizer.
func (a App) Visualizer() *visualizer.Visualizer { return a.vis }

func (a App) Init() tea.Cmd { return tea.Batch(textinput.Blink, waitEntry(a.sub)) }

type tickMsg time.Time

type entryMsg oplog.Entry

// waitEntry delivers the next log entry so the log pane can snap back to
// the newest line.
func waitEntry(sub <-chan oplog.Entry) tea.Cmd {
	return func() tea.Msg { return entryMsg(<-sub) }
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case entryMsg:
		a.scroll = 0
		return a, waitEntry(a.sub)
	case tickMsg:
		if a.vis.Animating() {
			return a, tick()
		}
		return a, nil
	}
	return a.updateInputs(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.vis.StopAnimation()
		return a, tea.Quit
	}
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	default:
		if a.focus != focusNone {
			return a.inputKey(msg)
		}
		return a.workKey(msg)
	}
}

func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(dsa.Modes)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.vis.SetMode(dsa.Modes[a.cursor])
		a.state = stateWork
		a.status = ""
	}
	return a, nil
}

func (a App) workKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q":
		a.vis.StopAnimation()
		return a, tea.Quit
	case "esc":
		a.state = stateMenu
		a.cursor = int(a.vis.Mode())
	case "i", "tab":
		return a.setFocus(focusValue)
	case "p":
		return a.setFocus(focusPosition)
	case "enter":
		return a.insert()
	case "d":
		return a.delete()
	case "t":
		return a.traverse()
	case "c":
		a.vis.Clear()
	case "m":
		next := a.vis.Mode().Next()
		a.vis.SetMode(next)
		a.cursor = int(next)
	case "T":
		a.theme = viz.NextTheme(a.theme)
		a.styles = viz.NewStyles(a.theme)
		a.status = "theme: " + a.theme.Name
	case "pgup", "K":
		if a.scroll < a.log.Len()-logRows {
			a.scroll++
		}
	case "pgdown", "J":
		if a.scroll > 0 {
			a.scroll--
		}
	case "s":
		a.status = a.save()
	case "e":
		a.status = a.exportSVG()
	}
	return a, nil
}

func (a App) inputKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a.setFocus(focusNone)
	case "tab":
		if a.focus == focusValue {
			return a.setFocus(focusPosition)
		}
		return a.setFocus(focusValue)
	case "enter":
		next, cmd := a.insert()
		next, _ = next.setFocus(focusNone)
		return next, cmd
	}
	next, cmd := a.updateInputs(msg)
	return next.(App), cmd
}

func (a App) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.value, cmd = a.value.Update(msg)
	cmds = append(cmds, cmd)
	a.position, cmd = a.position.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a App) setFocus(f focus) (App, tea.Cmd) {
	a.focus = f
	a.value.Blur()
	a.position.Blur()
	switch f {
	case focusValue:
		return a, a.value.Focus()
	case focusPosition:
		return a, a.position.Focus()
	}
	return a, nil
}

func (a App) insert() (App, tea.Cmd) {
	if err := a.vis.InsertInput(a.value.Value(), a.position.Value()); err == nil {
		a.value.SetValue("")
	}
	a.position.SetValue("")
	return a, nil
}

func (a App) delete() (App, tea.Cmd) {
	_, _ = a.vis.DeleteInput(a.position.Value())
	a.position.SetValue("")
	return a, nil
}

func (a App) traverse() (App, tea.Cmd) {
	tok, _ := a.vis.Traverse()
	if tok == nil {
		return a, nil
	}
	return a, tick()
}

func (a App) save() string {
	if a.store == nil {
		return "saving disabled"
	}
	if err := a.store.Init(); err != nil {
		logrus.WithError(err).Error("init session store")
		return "save failed: " + err.Error()
	}
	id, err := a.store.Save(a.vis.Mode(), a.vis.Sequence(), a.log.Entries(), "tui")
	if err != nil {
		logrus.WithError(err).Error("save session")
		return "save failed: " + err.Error()
	}
	return "saved session " + id
}

func (a App) exportSVG() string {
	f, err := os.Create(a.svgPath)
	if err != nil {
		return "export failed: " + err.Error()
	}
	defer f.Close()
	if err := export.WriteSVG(f, a.vis.Model(), a.svgOpts, a.vis.Highlighted()); err != nil {
		return "export failed: " + err.Error()
	}
	return "wrote " + a.svgPath
}

func (a App) View() string {
	if a.state == stateMenu {
		return a.viewMenu()
	}
	return a.viewWork()
}

func (a App) viewMenu() string {
	st := a.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(st.Subtle.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + st.Title.Render("d s a v i z") + "\n")
	b.WriteString(st.Subtle.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, mode := range dsa.Modes {
		if i == a.cursor {
			b.WriteString("      " + st.Title.Render("▸ ") + st.Selected.Render(fmt.Sprintf("%-13s", mode.Title())) + st.Subtle.Render(modeInfo[mode]) + "\n")
		} else {
			b.WriteString("        " + st.Subtle.Render(fmt.Sprintf("%-13s", mode.Title())) + st.Subtle.Render(modeInfo[mode]) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(st.KeyHint.Render("      ↑↓ select   enter start   q quit") + "\n")
	return b.String()
}

func (a App) viewWork() string {
	st := a.styles
	width := a.width - 4
	if width < 40 {
		width = 40
	}

	var b strings.Builder
	mode := a.vis.Mode()
	b.WriteString(st.Title.Render(" "+mode.Title()) + "  " + st.Subtle.Render(fmt.Sprintf("%d nodes", len(a.vis.Sequence()))) + "\n")
	b.WriteString(viz.Separator(st, width) + "\n\n")

	b.WriteString(a.board.Render(&st) + "\n\n")

	b.WriteString(a.value.View() + "   " + a.position.View() + "\n\n")

	lines := a.logWindow()
	logBody := st.Subtle.Render("no operations yet")
	if len(lines) > 0 {
		styled := make([]string, len(lines))
		for i, l := range lines {
			styled[i] = st.LogLine.Render(l)
		}
		logBody = strings.Join(styled, "\n")
	}
	b.WriteString(viz.BoxWithTitle(st, "Log", logBody, width) + "\n")

	if a.status != "" {
		b.WriteString(st.Warning.Render(" "+a.status) + "\n")
	}
	b.WriteString(st.KeyHint.Render(" i value  p position  enter insert  d delete  t traverse  c clear  m mode  T theme  s save  e svg  pgup/pgdn log  esc menu  q quit") + "\n")
	return b.String()
}

// logWindow returns the visible log lines, scroll lines up from the tail.
func (a App) logWindow() []string {
	if a.scroll == 0 {
		return a.log.Tail(logRows)
	}
	all := a.log.Lines()
	end := len(all) - a.scroll
	if end < 0 {
		end = 0
	}
	start := end - logRows
	if start < 0 {
		start = 0
	}
	return all[start:end]
}

// Run starts the interactive program on the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
