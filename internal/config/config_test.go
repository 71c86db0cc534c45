package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/dsaviz/internal/dsa"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StartMode() != dsa.LinkedList {
		t.Errorf("expected linkedlist, got %s", cfg.StartMode())
	}
	if cfg.Stagger() != 500*time.Millisecond {
		t.Errorf("unexpected stagger %v", cfg.Stagger())
	}
	if cfg.HighlightDuration() != time.Second {
		t.Errorf("unexpected duration %v", cfg.HighlightDuration())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsaviz.yaml")
	data := "mode: stack\nanimation:\n  stagger_ms: 250\nlayout:\n  list:\n    radius: 30\n    spacing: 120\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.StartMode() != dsa.Stack {
		t.Errorf("expected stack, got %s", cfg.StartMode())
	}
	if cfg.Animation.StaggerMs != 250 || cfg.Animation.DurationMs != DefaultDurationMs {
		t.Errorf("unexpected animation %+v", cfg.Animation)
	}
	if cfg.Layout.List.Radius != 30 || cfg.Layout.List.StartX != 50 {
		t.Errorf("unexpected list layout %+v", cfg.Layout.List)
	}
	if cfg.Layout.Stack.Width != 80 {
		t.Errorf("stack layout should keep defaults, got %+v", cfg.Layout.Stack)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"mode.yaml":    "mode: heap\n",
		"anim.yaml":    "animation:\n  duration_ms: 0\n",
		"layout.yaml":  "layout:\n  queue:\n    width: -1\n",
		"garbage.yaml": "mode: [\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "ocean"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Theme != "ocean" {
		t.Errorf("expected ocean, got %s", loaded.Theme)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("stack", "lifo")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Mode != "stack" || p.Script == "" {
		t.Errorf("unexpected preset %+v", p)
	}

	if GetPreset("stack", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("heap", "lifo") != nil {
		t.Error("expected nil for nonexistent mode")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("linkedlist")
	if len(names) != 2 || names[0] != "basic" || names[1] != "splice" {
		t.Errorf("unexpected presets %v", names)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent mode")
	}
}
