package members

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"propedit/internal/editor"
)

var headStyle = lipgloss.NewStyle().Bold(true)

// List renders the members of a target as a table of name, kind and
// sub-editor, in discovery order.
func List(ms []editor.Member, noColor bool) string {
	nameW := len("MEMBER")
	for _, m := range ms {
		nameW = max(nameW, lipgloss.Width(m.Name))
	}
	head := fmt.Sprintf("%-*s  %-10s  %s", nameW, "MEMBER", "KIND", "EDITOR")
	if !noColor {
		head = headStyle.Render(head)
	}
	var b strings.Builder
	b.WriteString(head + "\n")
	for _, m := range ms {
		ed := m.Editor
		if ed == "" {
			ed = "-"
		}
		fmt.Fprintf(&b, "%-*s  %-10s  %s\n", nameW, m.Name, m.Kind, ed)
	}
	return b.String()
}
