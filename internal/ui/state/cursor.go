package state

// ClearSelection drops the selection.
func (a *App) ClearSelection() bool {
	old := a.Selected
	a.Selected = NoSelection
	return old != a.Selected
}

// MoveDown selects the first item when nothing is selected, otherwise the
// next item, wrapping past the last one.
func (a *App) MoveDown() bool {
	n := len(a.Items)
	if n == 0 {
		return false
	}
	old := a.Selected
	if !a.HasSelection() || a.Selected >= n-1 {
		a.Selected = 0
	} else {
		a.Selected++
	}
	return old != a.Selected
}

// MoveUp selects the last item when nothing is selected, otherwise the
// previous item, wrapping past the first one.
func (a *App) MoveUp() bool {
	n := len(a.Items)
	if n == 0 {
		return false
	}
	old := a.Selected
	if !a.HasSelection() || a.Selected == 0 {
		a.Selected = n - 1
	} else {
		a.Selected--
	}
	return old != a.Selected
}

// ListWindow returns the half-open range [start, end) of rows to draw for a
// list of total rows shown in visible rows. The window starts at the top and
// only scrolls once the selection would fall below the last visible row, at
// which point the selection becomes the last visible row.
func ListWindow(selected, total, visible int) (start, end int) {
	if total <= 0 || visible <= 0 {
		return 0, 0
	}
	if visible > total {
		visible = total
	}
	if selected >= visible && selected < total {
		start = selected - visible + 1
	}
	return start, start + visible
}
