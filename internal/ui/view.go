package ui

import (
	"strings"

	"github.com/atomicstack/chatroom/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	listPanePercent     = 20
	messagesPanePercent = 90
	inputPaneMinRows    = 3
	highlightSymbol     = ">"

	// Used until the terminal reports its size.
	defaultWidth  = 80
	defaultHeight = 24
)

const (
	listTitle     = "List"
	messagesTitle = "Messages"
	inputTitle    = "Input"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries ANSI styling
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.viewSize()
	listW := width * listPanePercent / 100
	chatW := width - listW
	return joinBlocks(lipgloss.JoinHorizontal, lipgloss.Top,
		m.renderList(listW, height),
		m.renderChatroom(chatW, height),
	)
}

func (m *Model) viewSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// chatroomSplit divides the right column between the message log and the
// input box. The input box never drops below inputPaneMinRows unless the
// whole column is shorter than that.
func chatroomSplit(height int) (messages, input int) {
	if height <= 0 {
		return 0, 0
	}
	input = height - height*messagesPanePercent/100
	if input < inputPaneMinRows {
		input = inputPaneMinRows
	}
	if input > height {
		input = height
	}
	return height - input, input
}

func (m *Model) renderList(width, height int) string {
	return renderPanel(listTitle, m.listLines(height-2), width, height)
}

func (m *Model) renderChatroom(width, height int) string {
	messagesH, inputH := chatroomSplit(height)
	return joinBlocks(lipgloss.JoinVertical, lipgloss.Left,
		renderPanel(messagesTitle, messageLines(m.app.History(), messagesH-2), width, messagesH),
		renderPanel(inputTitle, m.inputLines(width-2, inputH-2), width, inputH),
	)
}

// listLines renders the visible slice of items. Once something is selected
// every row gets a prefix column so labels stay aligned.
func (m *Model) listLines(visible int) []styledLine {
	if visible <= 0 {
		return nil
	}
	items := m.app.Items
	start, end := state.ListWindow(m.app.Selected, len(items), visible)
	selected := m.app.HasSelection()
	blank := strings.Repeat(" ", lipgloss.Width(highlightSymbol))
	lines := make([]styledLine, 0, visible)
	for i := start; i < end; i++ {
		label := items[i]
		style := styles.ListItem
		if selected {
			if i == m.app.Selected {
				label = highlightSymbol + " " + label
				style = styles.SelectedItem
			} else {
				label = blank + " " + label
			}
		}
		lines = append(lines, styledLine{text: label, style: style})
	}
	for len(lines) < visible {
		lines = append(lines, styledLine{style: styles.ListItem})
	}
	return lines
}

// messageLines anchors history at the bottom: entry 0 sits on the last row
// and older entries stack upwards until the pane is full.
func messageLines(history []string, visible int) []styledLine {
	if visible <= 0 {
		return nil
	}
	if len(history) > visible {
		history = history[:visible]
	}
	lines := make([]styledLine, visible)
	for i, text := range history {
		lines[visible-1-i] = styledLine{text: text, style: styles.Message}
	}
	return lines
}

// inputLines wraps the input buffer to width and keeps the last rows that
// fit, with the caret after the final character.
func (m *Model) inputLines(width, visible int) []styledLine {
	if width <= 0 || visible <= 0 {
		return nil
	}
	text := m.app.Input
	if lipgloss.Width(text) >= width {
		text = wrap.String(wordwrap.String(text, width), width)
	}
	rows := strings.Split(text, "\n")
	caret := m.caret.View()
	if lipgloss.Width(rows[len(rows)-1])+lipgloss.Width(caret) > width {
		rows = append(rows, "")
	}
	if len(rows) > visible {
		rows = rows[len(rows)-visible:]
	}
	lines := make([]styledLine, len(rows))
	for i, row := range rows {
		rendered := row
		if styles.Input != nil && row != "" {
			rendered = styles.Input.Render(row)
		}
		if i == len(rows)-1 {
			rendered += caret
		}
		lines[i] = styledLine{text: rendered, raw: true}
	}
	return lines
}

// renderPanel draws a box of exactly width x height cells with the title in
// the top edge and lines filling the interior from the top.
func renderPanel(title string, lines []styledLine, width, height int) string {
	const (
		tlc = "┌"
		trc = "┐"
		blc = "└"
		brc = "┘"
		hz  = "─"
		vt  = "│"
	)

	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 2 || height < 2 {
		row := strings.Repeat(" ", width)
		rows := make([]string, height)
		for i := range rows {
			rows[i] = row
		}
		return strings.Join(rows, "\n")
	}

	innerW := width - 2
	innerH := height - 2

	titleSeg := truncate.String(title, uint(innerW))
	dashes := innerW - lipgloss.Width(titleSeg)
	topLine := renderBorder(tlc) +
		renderTitle(titleSeg) +
		renderBorder(strings.Repeat(hz, dashes)+trc)
	bottomLine := renderBorder(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var line styledLine
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, renderBorder(vt)+fitLine(line, innerW)+renderBorder(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// fitLine truncates or pads a line to exactly width visible columns. Padding
// is styled with the line so highlighted rows span the whole pane.
func fitLine(line styledLine, width int) string {
	text := line.text
	w := lipgloss.Width(text)
	if w > width {
		text = truncate.String(text, uint(width))
		w = lipgloss.Width(text)
	}
	if w < width {
		text += strings.Repeat(" ", width-w)
	}
	if line.raw || line.style == nil {
		return text
	}
	return line.style.Render(text)
}

func renderBorder(s string) string {
	if styles.Border == nil {
		return s
	}
	return styles.Border.Render(s)
}

func renderTitle(s string) string {
	if styles.PanelTitle == nil || s == "" {
		return s
	}
	return styles.PanelTitle.Render(s)
}

func joinBlocks(join func(lipgloss.Position, ...string) string, pos lipgloss.Position, blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	switch len(kept) {
	case 0:
		return ""
	case 1:
		return kept[0]
	}
	return join(pos, kept...)
}
