package state

import "fmt"

// NoSelection is the Selected value when no list item is selected.
const NoSelection = -1

const defaultItemCount = 24

// App holds the chatroom state: a fixed list with an optional selection, the
// pending input and the submitted message history.
type App struct {
	Items    []string
	Selected int
	Input    string
	Messages []string
}

// DefaultItems returns the placeholder labels Item1 through Item24.
func DefaultItems() []string {
	items := make([]string, defaultItemCount)
	for i := range items {
		items[i] = fmt.Sprintf("Item%d", i+1)
	}
	return items
}

// NewApp constructs an App with no selection, empty input and no messages.
// The item slice is copied.
func NewApp(items []string) *App {
	owned := make([]string, len(items))
	copy(owned, items)
	return &App{
		Items:    owned,
		Selected: NoSelection,
	}
}

// HasSelection reports whether an item is selected.
func (a *App) HasSelection() bool {
	return a.Selected >= 0 && a.Selected < len(a.Items)
}

// SelectedItem returns the label of the selected item.
func (a *App) SelectedItem() (string, bool) {
	if !a.HasSelection() {
		return "", false
	}
	return a.Items[a.Selected], true
}
