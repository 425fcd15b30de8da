package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/scripthost/internal/host"
	"github.com/atomicstack/scripthost/internal/input"
	"github.com/atomicstack/scripthost/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultFPS = 30
	quitKey    = "ctrl+c"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type frameMsg time.Time

// Model implements the Bubble Tea model around a host runtime.
type Model struct {
	runtime    *host.Runtime
	interval   time.Duration
	showStatus bool
	width      int
	height     int
	stats      host.Stats
	quitting   bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps rt. fps <= 0 selects the default frame rate.
func NewModel(rt *host.Runtime, fps int, showStatus bool) *Model {
	if fps <= 0 {
		fps = defaultFPS
	}
	m := &Model{
		runtime:    rt,
		interval:   time.Second / time.Duration(fps),
		showStatus: showStatus,
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return frameTick(m.interval)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	code := key.String()
	if code == quitKey {
		m.quitting = true
		return tea.Quit
	}
	q := m.runtime.Queue()
	q.Append(input.KeyDown(code))
	q.Append(input.KeyUp(code))
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Action != tea.MouseActionMotion {
		return nil
	}
	m.runtime.Queue().Append(input.MouseMove(ev.X, ev.Y))
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	m.runtime.Resize(size.Width, size.Height-m.statusRows())
	return nil
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	m.stats = m.runtime.Frame()
	if m.runtime.Done() {
		m.quitting = true
		return tea.Quit
	}
	return frameTick(m.interval)
}

func (m *Model) statusRows() int {
	if m.showStatus {
		return 1
	}
	return 0
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Runtime exposes the wrapped runtime.
func (m *Model) Runtime() *host.Runtime {
	return m.runtime
}

func frameTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
