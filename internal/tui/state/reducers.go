package state

// ToggleMode switches between CMD and INSERT modes and sets a brief notice.
func ToggleMode(s UIState) UIState {
	if s.Mode == CMD {
		s.Mode = INSERT
		s.Notice = "[INSERT]"
	} else {
		s.Mode = CMD
		s.Notice = "[CMD]"
	}
	return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
	if s.View == Unified {
		s.View = SideBySide
	} else {
		s.View = Unified
	}
	return s
}

// ToggleDiff shows or hides the changes panel.
func ToggleDiff(s UIState) UIState {
	s.ShowDiff = !s.ShowDiff
	return s
}

// ToggleHelp shows or hides the key help overlay.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// Resize updates the terminal size and sets a fallback notice if too narrow
// for side-by-side. Threshold heuristic: need at least 2*MinCol plus 3
// chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	threshold := 2*s.MinCol + 3
	if s.View == SideBySide && s.Width < threshold {
		s.View = Unified
		s.Notice = "Narrow width: using unified view"
	}
	return s
}

// FocusNext moves focus to the next interactive widget, wrapping around.
// Leaving a widget always drops back to CMD mode.
func FocusNext(s UIState) UIState {
	if s.Focusables == 0 {
		s.Focus = 0
		return s
	}
	s.Focus = (s.Focus + 1) % s.Focusables
	s.Mode = CMD
	return s
}

// FocusPrev moves focus to the previous interactive widget, wrapping around.
func FocusPrev(s UIState) UIState {
	if s.Focusables == 0 {
		s.Focus = 0
		return s
	}
	s.Focus = (s.Focus - 1 + s.Focusables) % s.Focusables
	s.Mode = CMD
	return s
}

// SetFocusables records how many interactive widgets the last pass drew
// and clamps focus into range.
func SetFocusables(s UIState, n int) UIState {
	s.Focusables = n
	if n == 0 {
		s.Focus = 0
	} else if s.Focus >= n {
		s.Focus = n - 1
	}
	return s
}

// KeepVisible scrolls vertically so that row lies inside the view.
func KeepVisible(s UIState, row int) UIState {
	if s.ViewRows <= 0 || row < 0 {
		return s
	}
	if row < s.ScrollV {
		s.ScrollV = row
	} else if row >= s.ScrollV+s.ViewRows {
		s.ScrollV = row - s.ViewRows + 1
	}
	return s
}

// SetNotice replaces the ephemeral notice.
func SetNotice(s UIState, notice string) UIState {
	s.Notice = notice
	return s
}
