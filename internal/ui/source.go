package ui

import (
	"fmt"

	"github.com/atomicstack/chatroom/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForEvent(s *source.Source) tea.Cmd {
	return func() tea.Msg {
		evt, err := s.Next()
		if err != nil {
			return sourceDoneMsg{err: err}
		}
		return eventMsg{event: evt}
	}
}

type eventMsg struct {
	event source.Event
}

type sourceDoneMsg struct {
	err error
}

func (m *Model) handleEventMsg(msg tea.Msg) tea.Cmd {
	evt, ok := msg.(eventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyEvent(evt.event)
	if m.quitting || m.source == nil {
		return cmd
	}
	waitCmd := waitForEvent(m.source)
	if cmd != nil {
		return tea.Batch(cmd, waitCmd)
	}
	return waitCmd
}

func (m *Model) handleSourceDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(sourceDoneMsg)
	if !ok {
		return nil
	}
	m.source = nil
	if m.quitting {
		return nil
	}
	m.quitting = true
	m.err = fmt.Errorf("wait for event: %w", done.err)
	return tea.Quit
}

func (m *Model) applyEvent(evt source.Event) tea.Cmd {
	switch evt.Kind {
	case source.KindInput:
		return m.applyKey(evt.Key)
	case source.KindTick:
		// Nothing animates yet; the redraw that follows is the point.
		return nil
	}
	return nil
}
