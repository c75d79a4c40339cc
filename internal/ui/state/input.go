package state

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// AppendRunes appends printable runes to the input buffer. Control runes are
// skipped.
func (a *App) AppendRunes(runes ...rune) bool {
	changed := false
	for _, r := range runes {
		if unicode.IsControl(r) {
			continue
		}
		a.Input += string(r)
		changed = true
	}
	return changed
}

// Backspace removes the last rune of the input buffer. It is a no-op on an
// empty buffer.
func (a *App) Backspace() bool {
	if a.Input == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(a.Input)
	a.Input = a.Input[:len(a.Input)-size]
	return true
}

// Submit moves the input buffer, possibly empty, onto the message history
// and returns the submitted text.
func (a *App) Submit() string {
	msg := a.Input
	a.Messages = append(a.Messages, msg)
	a.Input = ""
	return msg
}

// History returns the messages newest-first, each prefixed with its display
// index, so entry 0 is the most recent submission.
func (a *App) History() []string {
	lines := make([]string, len(a.Messages))
	for i := range a.Messages {
		lines[i] = fmt.Sprintf("%d: %s", i, a.Messages[len(a.Messages)-1-i])
	}
	return lines
}
