package ui

import (
	"github.com/atomicstack/chatroom/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Deliver feeds an event to the model as if the source had produced it.
func (h *Harness) Deliver(evt source.Event) {
	h.Send(eventMsg{event: evt})
}

// Type delivers one input event per rune.
func (h *Harness) Type(text string) {
	for _, r := range text {
		key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			key = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}}
		}
		h.Deliver(source.Event{Kind: source.KindInput, Key: key})
	}
}

// Press delivers a single named key such as tea.KeyDown.
func (h *Harness) Press(t tea.KeyType) {
	h.Deliver(source.Event{Kind: source.KindInput, Key: tea.KeyMsg{Type: t}})
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
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
