package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"propedit/internal/editor"
	"propedit/internal/tui/util"
)

// Input is the interaction delivered to one pass. Only the focused widget
// sees it.
type Input struct {
	Focus    int
	Insert   bool
	Activate bool
	Key      *tea.KeyMsg
}

type cell struct {
	col, width int
	text       string
	// clip limits the text to the widget width; other cells only stop
	// short of the next cell on the row
	clip bool
}

type styles struct {
	label, disabled, alert, confirm lipgloss.Style
	button, focused, field, rule    lipgloss.Style
}

func newStyles(noColor bool) styles {
	p := util.DefaultPalette()
	s := styles{
		label:    lipgloss.NewStyle(),
		disabled: lipgloss.NewStyle().Faint(true),
		alert:    lipgloss.NewStyle().Bold(true).Foreground(p.Danger),
		confirm:  lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		button:   lipgloss.NewStyle().Foreground(p.Primary),
		focused:  lipgloss.NewStyle().Reverse(true).Bold(true),
		field:    lipgloss.NewStyle().Underline(true),
		rule:     lipgloss.NewStyle().Foreground(p.Muted),
	}
	if noColor {
		s.alert = lipgloss.NewStyle().Bold(true)
		s.confirm = lipgloss.NewStyle().Bold(true)
		s.button = lipgloss.NewStyle()
		s.rule = lipgloss.NewStyle()
	}
	return s
}

// Surface draws editor widgets onto a grid of terminal cells. A pass is
// bracketed by Begin and Render; the focused text box is backed by a
// textinput while the window is in INSERT mode.
type Surface struct {
	CellWidth float64
	RowHeight float64

	styles styles
	rows   map[int][]cell
	last   int
	view   int

	in        Input
	next      int
	focusRow  int
	focusKind string
	focusText string

	input  textinput.Model
	seeded int
}

// NewSurface returns a surface mapping cellWidth units to one column and
// rowHeight units to one row.
func NewSurface(cellWidth, rowHeight float64, noColor bool) *Surface {
	if cellWidth <= 0 {
		cellWidth = 10
	}
	if rowHeight <= 0 {
		rowHeight = editor.DefaultRowHeight
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &Surface{
		CellWidth: cellWidth,
		RowHeight: rowHeight,
		styles:    newStyles(noColor),
		input:     ti,
		seeded:    -1,
	}
}

// Begin starts a pass with the given input.
func (s *Surface) Begin(in Input) {
	if in.Focus != s.in.Focus || !in.Insert {
		s.Reset()
	}
	s.in = in
	s.rows = map[int][]cell{}
	s.last = -1
	s.view = 0
	s.next = 0
	s.focusRow = -1
	s.focusKind = ""
	s.focusText = ""
}

// Reset drops the text being edited in INSERT mode.
func (s *Surface) Reset() {
	s.seeded = -1
	s.input.Blur()
	s.input.SetValue("")
}

// Focusables is the number of interactive widgets drawn by the last pass.
func (s *Surface) Focusables() int { return s.next }

// FocusRow is the row of the focused widget, or -1.
func (s *Surface) FocusRow() int { return s.focusRow }

// FocusKind names the focused widget: "button", "text" or "toggle".
func (s *Surface) FocusKind() string { return s.focusKind }

// FocusText is the text of the focused widget.
func (s *Surface) FocusText() string { return s.focusText }

// Rows is the number of rows drawn by the last pass.
func (s *Surface) Rows() int { return s.last + 1 }

// ViewRows is the height of the scroll region opened in the last pass, or 0.
func (s *Surface) ViewRows() int { return s.view }

func (s *Surface) grid(r editor.Rect) (row, col, width int) {
	row = int(math.Round((r.Y - editor.TopMargin) / s.RowHeight))
	col = int(math.Round(r.X / s.CellWidth))
	width = int(r.Width / s.CellWidth)
	return row, col, width
}

func (s *Surface) put(r editor.Rect, text string) { s.draw(r, text, false) }

func (s *Surface) putClipped(r editor.Rect, text string) { s.draw(r, text, true) }

func (s *Surface) draw(r editor.Rect, text string, clip bool) {
	row, col, width := s.grid(r)
	if row < 0 {
		return
	}
	s.rows[row] = append(s.rows[row], cell{col: col, width: width, text: text, clip: clip})
	if row > s.last {
		s.last = row
	}
}

// focus takes the next focus id and reports whether it is the focused one.
func (s *Surface) focus(r editor.Rect, kind, text string) bool {
	id := s.next
	s.next++
	if id != s.in.Focus {
		return false
	}
	s.focusRow, _, _ = s.grid(r)
	s.focusKind = kind
	s.focusText = text
	return true
}

// activated consumes the activation of this pass.
func (s *Surface) activated() bool {
	if !s.in.Activate {
		return false
	}
	s.in.Activate = false
	return true
}

func (s *Surface) styleFor(st editor.Style) lipgloss.Style {
	switch {
	case st.Tone == editor.ToneAlert:
		return s.styles.alert
	case st.Tone == editor.ToneConfirm:
		return s.styles.confirm
	case st.Disabled:
		return s.styles.disabled
	}
	return s.styles.label
}

func (s *Surface) DrawLabel(r editor.Rect, text string, st editor.Style) {
	s.put(r, s.styleFor(st).Render(text))
}

func (s *Surface) DrawButton(r editor.Rect, text string, st editor.Style) bool {
	focused := s.focus(r, "button", text)
	label := "[ " + text + " ]"
	switch {
	case focused:
		s.put(r, s.styles.focused.Render(label))
	case st.Disabled:
		s.put(r, s.styles.disabled.Render(label))
	default:
		s.put(r, s.styles.button.Render(label))
	}
	return focused && s.activated()
}

func (s *Surface) DrawTextBox(r editor.Rect, text string, st editor.Style) string {
	id := s.next
	focused := s.focus(r, "text", text)
	_, _, width := s.grid(r)
	if focused && s.in.Insert && !st.Disabled {
		if s.seeded != id {
			s.input.SetValue(text)
			s.input.CursorEnd()
			s.input.Focus()
			s.seeded = id
		}
		s.input.Width = max(width-1, 1)
		if s.in.Key != nil {
			s.input, _ = s.input.Update(*s.in.Key)
			s.in.Key = nil
		}
		out := s.input.Value()
		s.focusText = out
		s.putClipped(r, s.input.View())
		return out
	}
	shown := text
	if w := lipgloss.Width(shown); w < width {
		shown += strings.Repeat(" ", width-w)
	}
	switch {
	case focused:
		s.putClipped(r, s.styles.focused.Render(shown))
	case st.Disabled:
		s.putClipped(r, s.styles.disabled.Render(shown))
	default:
		s.putClipped(r, s.styles.field.Render(shown))
	}
	return text
}

func (s *Surface) DrawToggle(r editor.Rect, value bool, label string, st editor.Style) bool {
	focused := s.focus(r, "toggle", label)
	if focused && s.activated() {
		value = !value
	}
	box := "[ ]"
	if value {
		box = "[x]"
	}
	if label != "" {
		box += " " + label
	}
	switch {
	case focused:
		s.put(r, s.styles.focused.Render(box))
	case st.Disabled:
		s.put(r, s.styles.disabled.Render(box))
	default:
		s.put(r, s.styles.label.Render(box))
	}
	return value
}

func (s *Surface) DrawSeparator(r editor.Rect, st editor.Style) {
	_, _, width := s.grid(r)
	s.putClipped(r, s.styles.rule.Render(strings.Repeat("─", max(width, 1))))
}

func (s *Surface) BeginScroll(view, content editor.Rect) {
	s.view = int(view.Height / s.RowHeight)
}

func (s *Surface) EndScroll() {}

// Render composes the rows of the last pass. When a scroll region was
// opened, only its rows starting at top are returned.
func (s *Surface) Render(top int) string {
	first, end := 0, s.last+1
	if s.view > 0 {
		first = max(top, 0)
		end = min(first+s.view, s.last+1)
	}
	lines := make([]string, 0, max(end-first, 0))
	for row := first; row < end; row++ {
		lines = append(lines, s.line(row))
	}
	return strings.Join(lines, "\n")
}

func (s *Surface) line(row int) string {
	cells := s.rows[row]
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].col < cells[j].col })
	var b strings.Builder
	at := 0
	for i, c := range cells {
		if c.col > at {
			b.WriteString(strings.Repeat(" ", c.col-at))
			at = c.col
		} else if c.col < at {
			b.WriteByte(' ')
			at++
		}
		limit := 0
		if i+1 < len(cells) {
			limit = max(cells[i+1].col-c.col-1, 1)
		}
		if c.clip && c.width > 0 && (limit == 0 || c.width < limit) {
			limit = c.width
		}
		text := c.text
		if limit > 0 {
			text = lipgloss.NewStyle().MaxWidth(limit).Render(text)
		}
		b.WriteString(text)
		at += lipgloss.Width(text)
	}
	return b.String()
}
