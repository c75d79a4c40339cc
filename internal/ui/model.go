package ui

import (
	"reflect"

	"github.com/atomicstack/chatroom/internal/source"
	"github.com/atomicstack/chatroom/internal/theme"
	"github.com/atomicstack/chatroom/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the chatroom screen.
type Model struct {
	app         *state.App
	source      *source.Source
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	caret       cursor.Model
	quitting    bool
	err         error

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with the given list items. A width or height
// above zero pins that dimension regardless of the terminal size. A nil
// source makes the model apply key presses directly.
func NewModel(items []string, width, height int, src *source.Source) *Model {
	m := &Model{
		app:    state.NewApp(items),
		source: src,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		c.TextStyle = styles.Input.Copy()
	}
	c.SetChar(" ")
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	m.caret = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return waitForEvent(m.source)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// App exposes the chatroom state.
func (m *Model) App() *state.App {
	return m.app
}

// Err returns the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(eventMsg{}):          m.handleEventMsg,
		reflect.TypeOf(sourceDoneMsg{}):     m.handleSourceDoneMsg,
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

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}
