package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/dsaviz/internal/config"
	"github.com/san-kum/dsaviz/internal/dsa"
	"github.com/san-kum/dsaviz/internal/export"
	"github.com/san-kum/dsaviz/internal/metrics"
	"github.com/san-kum/dsaviz/internal/oplog"
	"github.com/san-kum/dsaviz/internal/script"
	"github.com/san-kum/dsaviz/internal/storage"
	"github.com/san-kum/dsaviz/internal/tui"
	"github.com/san-kum/dsaviz/internal/visualizer"
	"github.com/san-kum/dsaviz/internal/viz"
)

var (
	configFile string
	dataDir    string
	logLevel   string

	// run / render
	modeName string
	preset   string
	ops      []string
	svgOut   string
	save     bool
	preview  bool
	wait     bool
	braille  string

	// tui
	theme string
)

// main registers the dsaviz commands and runs the interactive TUI when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "dsaviz",
		Short:         "linked list, stack and queue visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "session data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [script]",
		Short: "apply an operation script and print the log",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}
	addScriptFlags(runCmd)
	runCmd.Flags().BoolVar(&save, "save", false, "save the session")
	runCmd.Flags().BoolVar(&preview, "preview", false, "print a braille preview of the final state")
	runCmd.Flags().BoolVar(&wait, "wait", false, "wait for a traversal highlight to finish")

	renderCmd := &cobra.Command{
		Use:   "render [script]",
		Short: "apply an operation script and write only the SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderScript,
	}
	addScriptFlags(renderCmd)
	renderCmd.Flags().StringVar(&braille, "braille", "", "also write the braille preview as SVG")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sessions",
		RunE:  listSessions,
	}

	showCmd := &cobra.Command{
		Use:   "show [session_id]",
		Short: "print a session's operation log",
		Args:  cobra.ExactArgs(1),
		RunE:  showSession,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session_id]",
		Short: "plot sequence length across a session",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSession,
	}

	exportCmd := &cobra.Command{
		Use:   "export [session_id]",
		Short: "export session metadata and log as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSession,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list available presets for a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := dsa.ParseMode(args[0])
			if err != nil {
				return err
			}
			names := config.ListPresets(mode.String())
			if len(names) == 0 {
				fmt.Printf("no presets for mode: %s\n", mode)
				return nil
			}
			fmt.Printf("presets for %s:\n", mode)
			for _, name := range names {
				fmt.Printf("  %-8s %s\n", name, config.GetPreset(mode.String(), name).Description)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	tuiCmd.Flags().StringVar(&svgOut, "svg", "", "path for SVG export (e key)")

	rootCmd.AddCommand(runCmd, renderCmd, listCmd, showCmd, plotCmd, exportCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addScriptFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modeName, "mode", "", "starting mode (linkedlist, stack, queue)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset script for the mode")
	cmd.Flags().StringArrayVar(&ops, "op", nil, "operation to apply, repeatable (e.g. --op 'insert 5')")
	cmd.Flags().StringVar(&svgOut, "svg", "", "write the final state as SVG")
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if modeName != "" {
		if _, err := dsa.ParseMode(modeName); err != nil {
			return nil, err
		}
		cfg.Mode = modeName
	}
	if theme != "" {
		cfg.Theme = theme
	}
	return cfg, nil
}

func setupLogging() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

// session is one CLI visualizer run: the visualizer, its log and the
// commands that were applied.
type session struct {
	cfg    *config.Config
	vis    *visualizer.Visualizer
	log    *oplog.Log
	source string
}

func newSession(cfg *config.Config, out io.Writer, surfaces ...visualizer.Surface) *session {
	log := oplog.New()
	var sink oplog.Sink = log
	if out != nil {
		sink = oplog.Multi{log, oplog.NewWriterSink(out)}
	}
	opts := []visualizer.Option{
		visualizer.WithMode(cfg.StartMode()),
		visualizer.WithLayout(cfg.Layout),
		visualizer.WithAnimation(nil, cfg.Stagger(), cfg.HighlightDuration()),
	}
	for _, s := range surfaces {
		opts = append(opts, visualizer.WithSurface(s))
	}
	return &session{cfg: cfg, vis: visualizer.New(sink, opts...), log: log}
}

// commands gathers the preset, the script file and --op flags in that order.
func (s *session) commands(args []string) ([]script.Command, error) {
	var cmds []script.Command
	var sources []string

	if preset != "" {
		mode := s.cfg.StartMode().String()
		p := config.GetPreset(mode, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mode))
		}
		parsed, err := script.ParseString(p.Script)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", preset, err)
		}
		cmds = append(cmds, parsed...)
		sources = append(sources, mode+"/"+preset)
	}

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		parsed, err := script.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", args[0], err)
		}
		cmds = append(cmds, parsed...)
		sources = append(sources, args[0])
	}

	for i, op := range ops {
		cmd, err := script.ParseLine(op)
		if err != nil {
			return nil, fmt.Errorf("--op %q: %w", op, err)
		}
		cmd.Line = i + 1
		cmds = append(cmds, cmd)
	}
	if len(ops) > 0 {
		sources = append(sources, "flags")
	}

	s.source = strings.Join(sources, "+")
	return cmds, nil
}

func writeSVG(path string, vis *visualizer.Visualizer, opts export.SVGOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteSVG(f, vis.Model(), opts, vis.Highlighted()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	canvas := viz.NewCanvasSurface(60, 12)
	s := newSession(cfg, os.Stdout, canvas)
	cmds, err := s.commands(args)
	if err != nil {
		return err
	}
	if len(cmds) == 0 {
		return fmt.Errorf("nothing to run: pass a script, --preset or --op")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := script.Run(ctx, s.vis, cmds); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.RenderBoard(s.vis.Model(), nil, nil))

	if preview {
		fmt.Println()
		fmt.Print(canvas.String())
	}

	if svgOut != "" {
		if err := writeSVG(svgOut, s.vis, cfg.SVG); err != nil {
			return err
		}
		fmt.Printf("\nsvg: %s\n", svgOut)
	}

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(s.vis.Mode(), s.vis.Sequence(), s.log.Entries(), s.source)
		if err != nil {
			return err
		}
		fmt.Printf("saved session: %s\n", id)
	}

	if wait && s.vis.Animating() {
		logrus.Debug("waiting for traversal highlight")
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for s.vis.Animating() {
			select {
			case <-ctx.Done():
				s.vis.StopAnimation()
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}
	s.vis.StopAnimation()
	return nil
}

func renderScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if svgOut == "" {
		return fmt.Errorf("render needs --svg")
	}

	canvas := viz.NewCanvasSurface(60, 12)
	s := newSession(cfg, nil, canvas)
	cmds, err := s.commands(args)
	if err != nil {
		return err
	}
	if err := script.Run(context.Background(), s.vis, cmds); err != nil {
		return err
	}
	s.vis.StopAnimation()
	if err := writeSVG(svgOut, s.vis, cfg.SVG); err != nil {
		return err
	}

	if braille != "" {
		doc := export.CanvasToSVG(canvas.Canvas(), 4)
		if err := os.WriteFile(braille, []byte(doc), 0644); err != nil {
			return err
		}
	}
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTIME\tOPS\tSEQUENCE\tSOURCE")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			s.ID,
			s.Mode,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Operations,
			dsa.Sequence(s.Sequence).Join(","),
			s.Source,
		)
	}
	return w.Flush()
}

func showSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	entries, err := st.LoadLog(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("mode: %s\n", meta.Mode)
	fmt.Printf("final: [%s]\n\n", dsa.Sequence(meta.Sequence).Join(", "))
	for _, e := range entries {
		fmt.Println(e.String())
	}

	fmt.Println()
	for _, r := range metrics.Summarize(entries) {
		fmt.Printf("  %-12s %.3f\n", r.Name, r.Value)
	}
	return nil
}

func plotSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	entries, err := st.LoadLog(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no operations to plot")
	}

	lengths := storage.Lengths(entries)
	data := make([]float64, len(lengths))
	for i, n := range lengths {
		data[i] = float64(n)
	}

	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("mode: %s\n", meta.Mode)
	fmt.Printf("operations: %d\n\n", len(entries))

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(meta.Mode.String()+" length per operation"),
	)
	fmt.Println(graph)
	return nil
}

func exportSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return storage.New(cfg.DataDir).ExportJSON(os.Stdout, args[0])
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Config:  cfg,
		Store:   storage.New(cfg.DataDir),
		SVGPath: svgOut,
	})
}
