package config

import (
	"testing"

	"github.com/atomicstack/scripthost/internal/modal"
	"github.com/atomicstack/scripthost/internal/popup"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PopupMode != popup.Faithful {
		t.Fatalf("expected faithful default, got %s", cfg.App.PopupMode)
	}
	if cfg.App.EscapeKey != modal.DefaultEscapeKey {
		t.Fatalf("expected default escape key, got %q", cfg.App.EscapeKey)
	}
	if cfg.App.FPS != 30 || cfg.App.Script != "demo" {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsEnvironmentAndFlagPrecedence(t *testing.T) {
	env := []string{
		"SCRIPTHOST_POPUP_MODE=bounded",
		"SCRIPTHOST_WIDTH=100",
		"SCRIPTHOST_STATUS=true",
		"SCRIPTHOST_FPS=not-a-number",
		"SCRIPTHOST_LOG_FILE=/tmp/host.log",
		"garbage",
	}
	cfg, err := LoadArgs([]string{"--width", "120", "--escape-key", "f12", "--trace"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PopupMode != popup.Bounded {
		t.Fatalf("expected bounded from env")
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected flag to override env width, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowStatus || !cfg.Logging.Trace {
		t.Fatalf("expected status and trace enabled")
	}
	if cfg.App.FPS != 30 {
		t.Fatalf("expected invalid env fps to fall back, got %d", cfg.App.FPS)
	}
	if cfg.App.EscapeKey != "f12" || cfg.Flags["escapeKey"] != "f12" {
		t.Fatalf("unexpected escape key %q", cfg.App.EscapeKey)
	}
	if cfg.Logging.FilePath != "/tmp/host.log" {
		t.Fatalf("unexpected log file %q", cfg.Logging.FilePath)
	}
	if len(cfg.Args) != 5 {
		t.Fatalf("expected args preserved, got %v", cfg.Args)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := [][]string{
		{"--width", "-1"},
		{"--height", "-4"},
		{"--width", "100000", "--height", "100000"},
		{"--height", "4097"},
		{"--popup-mode", "clamp"},
		{"--unknown"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := base
	bad.App.FPS = 0
	if Validate(bad) == nil {
		t.Fatalf("expected fps error")
	}

	bad = base
	bad.App.EscapeKey = ""
	if Validate(bad) == nil {
		t.Fatalf("expected escape key error")
	}

	bad = base
	bad.App.Width = MaxDimension + 1
	if Validate(bad) == nil {
		t.Fatalf("expected width bound error")
	}

	bad = base
	bad.App.Height = -1
	if Validate(bad) == nil {
		t.Fatalf("expected height bound error")
	}

	edge := base
	edge.App.Width, edge.App.Height = MaxDimension, MaxDimension
	if err := Validate(edge); err != nil {
		t.Fatalf("expected maximum size to validate: %v", err)
	}

	bad = base
	bad.App.Script = "missing"
	if Validate(bad) == nil {
		t.Fatalf("expected unknown script error")
	}
}
