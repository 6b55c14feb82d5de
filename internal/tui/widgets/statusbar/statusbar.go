package statusbar

import (
	"fmt"
	"strings"

	"propedit/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState, title string) string {
	mode := "[CMD]"
	if s.Mode == state.INSERT {
		mode = "[INSERT]"
	}
	parts := []string{mode}
	if title != "" {
		parts = append(parts, title)
	}
	if s.ShowDiff {
		view := "Unified"
		if s.View == state.SideBySide {
			view = "Side-by-side"
		}
		parts = append(parts, view)
	}
	parts = append(parts, fmt.Sprintf("V:%d", s.ScrollV), fmt.Sprintf("W:%d", s.Width))
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
