package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"propedit/internal/tui/state"
)

var (
	delLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint    = lipgloss.NewStyle().Faint(true)
	tagStyle = lipgloss.NewStyle().Bold(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the saved snapshot against the current one. Changed line
// pairs get character-level highlights.
func (DiffView) View(s state.UIState, saved, current string) string {
	if saved == current {
		return "No changes\n"
	}
	if s.View == state.SideBySide {
		return sideBySide(saved, current, s)
	}
	return unified(saved, current)
}

// row is one aligned line of the two texts. A side is missing when the
// line was only added or only removed.
type row struct {
	a, b       string
	hasA, hasB bool
}

func (r row) same() bool { return r.hasA && r.hasB && r.a == r.b }

// lineDiffs aligns the two texts with a line-mode diff. Within a changed
// hunk removed and added lines are paired in order so each pair can get
// character highlights.
func lineDiffs(a, b string) []row {
	d := dmp.New()
	ca, cb, lines := d.DiffLinesToChars(normalize(a), normalize(b))
	diffs := d.DiffCharsToLines(d.DiffMain(ca, cb, false), lines)

	var rows []row
	var dels, ins []string
	flush := func() {
		for i := 0; i < max(len(dels), len(ins)); i++ {
			var r row
			if i < len(dels) {
				r.a, r.hasA = dels[i], true
			}
			if i < len(ins) {
				r.b, r.hasB = ins[i], true
			}
			rows = append(rows, r)
		}
		dels, ins = dels[:0], ins[:0]
	}
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffEqual:
			flush()
			for _, l := range splitLines(df.Text) {
				rows = append(rows, row{a: l, b: l, hasA: true, hasB: true})
			}
		case dmp.DiffDelete:
			dels = append(dels, splitLines(df.Text)...)
		case dmp.DiffInsert:
			ins = append(ins, splitLines(df.Text)...)
		}
	}
	flush()
	return rows
}

func normalize(s string) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	return s + "\n"
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func charDiff(a, b string) []dmp.Diff {
	d := dmp.New()
	diffs := d.DiffMain(a, b, false)
	return d.DiffCleanupSemantic(diffs)
}

func unified(saved, current string) string {
	var sb strings.Builder
	sb.WriteString(tagStyle.Render("SAVED vs CURRENT (Unified)") + "\n")
	for _, r := range lineDiffs(saved, current) {
		if r.same() {
			if strings.TrimSpace(r.a) == "" {
				continue
			}
			sb.WriteString("  " + faint.Render(r.a) + "\n")
			continue
		}
		diffs := charDiff(r.a, r.b)
		if r.hasA {
			sb.WriteString(delLine.Render("- "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffDelete:
					sb.WriteString(delChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(delLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
		}
		if r.hasB {
			sb.WriteString(addLine.Render("+ "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffInsert:
					sb.WriteString(addChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(addLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func sideBySide(saved, current string, s state.UIState) string {
	const sep = " │ "
	colWidth := 40
	if s.Width > 0 {
		colWidth = (s.Width - lipgloss.Width(sep)) / 2
		if colWidth < 10 {
			colWidth = 10
		}
	}
	var sb strings.Builder
	sb.WriteString(pad(tagStyle.Render("SAVED"), colWidth) + sep + tagStyle.Render("CURRENT") + "\n")
	clipStyle := lipgloss.NewStyle().MaxWidth(colWidth)
	for _, r := range lineDiffs(saved, current) {
		if r.same() {
			left := clipStyle.Render(faint.Render(r.a))
			sb.WriteString(pad(left, colWidth) + sep + clipStyle.Render(faint.Render(r.b)) + "\n")
			continue
		}
		var lbuf, rbuf strings.Builder
		for _, df := range charDiff(r.a, r.b) {
			switch df.Type {
			case dmp.DiffDelete:
				lbuf.WriteString(delChar.Render(df.Text))
			case dmp.DiffInsert:
				rbuf.WriteString(addChar.Render(df.Text))
			case dmp.DiffEqual:
				lbuf.WriteString(delLine.Render(df.Text))
				rbuf.WriteString(addLine.Render(df.Text))
			}
		}
		var left, right string
		if r.hasA {
			left = clipStyle.Render(delLine.Render("- ") + lbuf.String())
		}
		if r.hasB {
			right = clipStyle.Render(addLine.Render("+ ") + rbuf.String())
		}
		sb.WriteString(pad(left, colWidth) + sep + right + "\n")
	}
	return sb.String()
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
