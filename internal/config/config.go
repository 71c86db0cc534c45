package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dsaviz/internal/dsa"
	"github.com/san-kum/dsaviz/internal/export"
	"github.com/san-kum/dsaviz/internal/render"
)

const (
	DefaultMode       = "linkedlist"
	DefaultTheme      = "gold"
	DefaultDataDir    = ".dsaviz"
	DefaultLogLevel   = "warn"
	DefaultStaggerMs  = 500
	DefaultDurationMs = 1000
)

type Config struct {
	Mode      string            `yaml:"mode"`
	Theme     string            `yaml:"theme"`
	DataDir   string            `yaml:"data_dir"`
	LogLevel  string            `yaml:"log_level"`
	Animation AnimationConfig   `yaml:"animation"`
	Layout    render.Layout     `yaml:"layout"`
	SVG       export.SVGOptions `yaml:"svg"`
}

type AnimationConfig struct {
	StaggerMs  int `yaml:"stagger_ms"`
	DurationMs int `yaml:"duration_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:     DefaultMode,
		Theme:    DefaultTheme,
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
		Animation: AnimationConfig{
			StaggerMs:  DefaultStaggerMs,
			DurationMs: DefaultDurationMs,
		},
		Layout: render.DefaultLayout(),
		SVG:    export.DefaultSVGOptions(),
	}
}

// Load reads a YAML file over the defaults, so partial files are fine.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := dsa.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Animation.StaggerMs <= 0 {
		return fmt.Errorf("animation.stagger_ms must be positive, got %d", c.Animation.StaggerMs)
	}
	if c.Animation.DurationMs <= 0 {
		return fmt.Errorf("animation.duration_ms must be positive, got %d", c.Animation.DurationMs)
	}
	if c.Layout.List.Radius <= 0 || c.Layout.List.Spacing <= 0 {
		return fmt.Errorf("layout.list radius and spacing must be positive")
	}
	if c.Layout.Stack.Width <= 0 || c.Layout.Stack.Height <= 0 {
		return fmt.Errorf("layout.stack width and height must be positive")
	}
	if c.Layout.Queue.Width <= 0 || c.Layout.Queue.Height <= 0 {
		return fmt.Errorf("layout.queue width and height must be positive")
	}
	return nil
}

func (c *Config) StartMode() dsa.Mode {
	m, err := dsa.ParseMode(c.Mode)
	if err != nil {
		return dsa.LinkedList
	}
	return m
}

func (c *Config) Stagger() time.Duration {
	return time.Duration(c.Animation.StaggerMs) * time.Millisecond
}

func (c *Config) HighlightDuration() time.Duration {
	return time.Duration(c.Animation.DurationMs) * time.Millisecond
}
