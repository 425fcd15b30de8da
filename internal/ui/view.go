package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.width <= 0 {
		return ""
	}
	body := m.runtime.Canvas().Render()
	if !m.showStatus {
		return body
	}
	return body + "\n" + m.statusLine()
}

// statusText summarises routing for the last frame.
func (m *Model) statusText() (string, statusKind) {
	s := m.stats
	kind := statusNormal
	parts := []string{
		fmt.Sprintf("frame %d", s.Frame),
		"input → " + s.Target.String(),
	}
	if s.Layers > 0 {
		kind = statusModal
		parts = append(parts, fmt.Sprintf("popups %d (top %s)", s.Layers, s.TopLayer))
	}
	for _, g := range s.OffScreen {
		kind = statusWarn
		if g.Clamped {
			parts = append(parts, fmt.Sprintf("popup clamped to %dx%d", g.Width, g.Height))
			continue
		}
		parts = append(parts, fmt.Sprintf("popup off-screen at %d,%d", g.X, g.Y))
	}
	if kind != statusNormal {
		parts = append(parts, m.runtime.Modals().EscapeKey()+" closes all popups")
	}
	return strings.Join(parts, " │ "), kind
}

type statusKind int

const (
	statusNormal statusKind = iota
	statusModal
	statusWarn
)

func (m *Model) statusLine() string {
	text, kind := m.statusText()
	style := styles.Status
	switch kind {
	case statusModal:
		style = styles.StatusModal
	case statusWarn:
		style = styles.StatusWarn
	}
	text = truncate.StringWithTail(" "+text, uint(max(m.width, 0)), "…")
	if style == nil {
		return text
	}
	return style.Width(m.width).MaxHeight(1).Render(text)
}
