package ui

import (
	"github.com/atomicstack/chatroom/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg queues raw key presses on the source; they come back as
// eventMsg in arrival order.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.quitting {
		return nil
	}
	if m.source != nil {
		m.source.Input(keyMsg)
		return nil
	}
	return m.applyKey(keyMsg)
}

func (m *Model) applyKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		events.UI.Quit()
		return tea.Quit
	case "left":
		if m.app.ClearSelection() {
			events.UI.Selection(m.app.Selected)
		}
		return nil
	case "down":
		if m.app.MoveDown() {
			events.UI.Selection(m.app.Selected)
		}
		return nil
	case "up":
		if m.app.MoveUp() {
			events.UI.Selection(m.app.Selected)
		}
		return nil
	case "enter":
		submitted := m.app.Submit()
		events.UI.Submit(submitted, len(m.app.Messages))
		return nil
	case "backspace", "ctrl+h":
		if m.app.Backspace() {
			events.UI.Input(m.app.Input)
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		if m.app.AppendRunes(msg.Runes...) {
			events.UI.Input(m.app.Input)
		}
	case tea.KeySpace:
		if m.app.AppendRunes(' ') {
			events.UI.Input(m.app.Input)
		}
	}
	return nil
}
