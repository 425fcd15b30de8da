package app

import (
	"testing"

	"github.com/atomicstack/scripthost/internal/popup"
)

func TestScriptsIncludesDemo(t *testing.T) {
	names := Scripts().Names()
	if len(names) == 0 || names[0] != DefaultScript {
		t.Fatalf("expected demo script registered first, got %v", names)
	}
}

func TestNewRuntimeDefaults(t *testing.T) {
	rt, err := NewRuntime(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.Script().Name() != DefaultScript {
		t.Fatalf("expected default script, got %s", rt.Script().Name())
	}
	size := rt.Screen().Size()
	if size.Width != 1280 || size.Height != 720 {
		t.Fatalf("expected default screen size, got %v", size)
	}
	if rt.Bridge().PopupMode() != popup.Faithful {
		t.Fatalf("expected faithful popup mode by default")
	}
}

func TestNewRuntimeHonoursConfig(t *testing.T) {
	rt, err := NewRuntime(Config{Width: 80, Height: 24, PopupMode: popup.Bounded, EscapeKey: "f9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size := rt.Screen().Size(); size.Width != 80 || size.Height != 24 {
		t.Fatalf("expected 80x24, got %v", size)
	}
	if rt.Modals().EscapeKey() != "f9" {
		t.Fatalf("expected escape key f9, got %s", rt.Modals().EscapeKey())
	}
	if rt.Bridge().PopupMode() != popup.Bounded {
		t.Fatalf("expected bounded popup mode")
	}
}

func TestNewRuntimeUnknownScript(t *testing.T) {
	if _, err := NewRuntime(Config{Script: "nope"}); err == nil {
		t.Fatalf("expected error for unknown script")
	}
}
