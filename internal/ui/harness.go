package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for tests. Frames advance only
// when Frame is called, so tests never wait on the tick.
type Harness struct {
	model *Model
	last  tea.Cmd
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model. The returned command is kept but
// not executed.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.last = cmd
}

// Key sends a key press by name, e.g. "p", "esc" or "ctrl+g".
func (h *Harness) Key(code string) {
	h.Send(keyMsg(code))
}

// Frame advances the runtime by one tick.
func (h *Harness) Frame() {
	h.Send(frameMsg{})
}

// LastCmd returns the command produced by the most recent message.
func (h *Harness) LastCmd() tea.Cmd {
	return h.last
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

func keyMsg(code string) tea.KeyMsg {
	switch code {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(code)}
	}
}
