package inputline

import (
	"fmt"
	"strings"

	"propedit/internal/tui/state"
)

type InputLine struct{}

func NewInputLine() InputLine { return InputLine{} }

// View renders the focused widget's buffer along with the mode and the
// focus position.
func (InputLine) View(s state.UIState, label, buf string) string {
	header := "[CMD]"
	if s.Mode == state.INSERT {
		header = "[INSERT]"
	}
	focus := "Focus: -"
	if s.Focusables > 0 {
		focus = fmt.Sprintf("Focus: %d/%d", s.Focus+1, s.Focusables)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s", header, focus)
	if label != "" {
		fmt.Fprintf(&b, "  %s", label)
	}
	if s.Mode == state.INSERT {
		fmt.Fprintf(&b, "\n> %s", buf)
	}
	b.WriteString("\n")
	return b.String()
}
