package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/scripthost/internal/host"
	"github.com/atomicstack/scripthost/internal/logging/events"
	"github.com/atomicstack/scripthost/internal/markup"
	"github.com/atomicstack/scripthost/internal/popup"
	"github.com/atomicstack/scripthost/internal/screen"
	"github.com/atomicstack/scripthost/internal/script"
	"github.com/atomicstack/scripthost/internal/script/demo"
	"github.com/atomicstack/scripthost/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	PopupMode  popup.Mode
	EscapeKey  string
	FPS        int
	ShowStatus bool
	Script     string
}

// DefaultScript runs when no script is named.
const DefaultScript = demo.Name

var background = markup.RGB(0x12, 0x12, 0x12)

// Scripts returns the registry of built-in scripts.
func Scripts() *script.Registry {
	r := script.NewRegistry()
	r.Register(demo.Name, func() script.Script { return demo.New() })
	return r
}

// NewRuntime builds the host runtime described by cfg.
func NewRuntime(cfg Config) (*host.Runtime, error) {
	name := cfg.Script
	if name == "" {
		name = DefaultScript
	}
	s, ok := Scripts().New(name)
	if !ok {
		return nil, fmt.Errorf("unknown script %q", name)
	}
	rt := host.NewRuntime(s, host.Options{
		InitialSize: screen.Size{Width: cfg.Width, Height: cfg.Height},
		PopupMode:   cfg.PopupMode,
		EscapeKey:   cfg.EscapeKey,
		Background:  background,
	})
	return rt, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	rt, err := NewRuntime(cfg)
	if err != nil {
		return fmt.Errorf("build runtime: %w", err)
	}
	model := ui.NewModel(rt, cfg.FPS, cfg.ShowStatus)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	events.App.Exit(rt.Script().Name(), rt.LastStats().Frame)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
