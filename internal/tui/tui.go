package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"propedit/internal/editor"
	"propedit/internal/tui/state"
	"propedit/internal/tui/util"
	"propedit/internal/tui/widgets/diff"
	"propedit/internal/tui/widgets/helpoverlay"
	"propedit/internal/tui/widgets/inputline"
	"propedit/internal/tui/widgets/statusbar"
	"propedit/internal/tui/widgets/tagchips"
)

// Options configures the editor program.
type Options struct {
	Title    string
	Registry *editor.Registry
	// Header and Footer draw host widgets above and below the members of
	// the target.
	Header func(ui *editor.UI) error
	Footer func(ui *editor.UI) error
	// Snapshot serializes the target for the changes panel and the
	// clipboard.
	Snapshot func() (string, error)
	Save     func() error
	// Editors adds or replaces sub-editors by token.
	Editors map[string]SubEditor

	RowHeight float64
	CellWidth float64
	Width     int
	Height    int
	NoColor   bool
	Logger    *slog.Logger
}

// Run opens the editor on target, which must be a non-nil pointer to a
// struct, and blocks until the user quits. A reflection failure in any pass
// ends the program and is returned.
func Run(target any, opts Options) error {
	m, err := newModel(target, opts, false)
	if err != nil {
		return err
	}
	if m.err != nil {
		return m.err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.err
}

// Render runs a single pass over target without input and returns the
// drawn rows. It is used for non-interactive output.
func Render(target any, opts Options) (string, error) {
	opts.Height = 0
	m, err := newModel(target, opts, true)
	if err != nil {
		return "", err
	}
	if m.err != nil {
		return "", m.err
	}
	return m.frame, nil
}

// ===== Model =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)

// chrome is the number of rows around the window content: title, status,
// input line and a spacer.
const chrome = 5

type frameState struct {
	win *Window
	ui  state.UIState
}

type model struct {
	opts    Options
	keys    keyMap
	log     *slog.Logger
	surface *Surface
	queue   *editor.Queue
	editors map[string]SubEditor
	noColor bool
	static  bool

	stack []*frameState
	frame string

	saved   string
	current string

	err error
}

func newModel(target any, opts Options, static bool) (*model, error) {
	if opts.Registry == nil {
		opts.Registry = editor.NewRegistry()
	}
	if _, err := opts.Registry.Members(target); err != nil {
		return nil, err
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Title == "" {
		opts.Title = "Properties"
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	noColor := util.NoColor(opts.NoColor)
	m := &model{
		opts:    opts,
		keys:    defaultKeys(),
		log:     log,
		surface: NewSurface(opts.CellWidth, opts.RowHeight, noColor),
		queue:   &editor.Queue{},
		editors: builtinEditors(noColor),
		noColor: noColor,
		static:  static,
	}
	for tok, se := range opts.Editors {
		m.editors[tok] = se
	}
	if opts.Save == nil {
		m.keys.Save.SetEnabled(false)
	}
	if opts.Snapshot == nil {
		m.keys.Copy.SetEnabled(false)
		m.keys.Diff.SetEnabled(false)
	}

	root := &Window{Title: opts.Title}
	root.Draw = func(ui *editor.UI) error {
		if opts.Header != nil {
			if err := opts.Header(ui); err != nil {
				return err
			}
		}
		if err := ui.RenderObject(target); err != nil {
			return err
		}
		if opts.Footer != nil {
			return opts.Footer(ui)
		}
		return nil
	}
	m.push(root)

	m.snapshot()
	m.saved = m.current
	m.step(Input{})
	return m, nil
}

func (m *model) top() *frameState { return m.stack[len(m.stack)-1] }

func (m *model) push(w *Window) {
	w.state = editor.NewRenderState(m.surface.RowHeight)
	ui := state.UIState{MinCol: 20}
	ui = state.Resize(ui, m.opts.Width, m.opts.Height)
	ui.ViewRows = m.viewRows()
	m.stack = append(m.stack, &frameState{win: w, ui: ui})
	m.surface.Reset()
}

func (m *model) viewRows() int {
	if m.opts.Height <= 0 {
		return 0
	}
	rows := m.opts.Height - chrome
	if len(m.stack) > 0 && m.top().ui.ShowDiff {
		rows /= 2
	}
	return max(rows, 3)
}

func (m *model) title() string {
	parts := make([]string, len(m.stack))
	for i, f := range m.stack {
		parts[i] = f.win.Title
	}
	return strings.Join(parts, " › ")
}

// pass draws f once with in.
func (m *model) pass(f *frameState, in Input) error {
	in.Focus = f.ui.Focus
	in.Insert = f.ui.Mode == state.INSERT
	if m.static {
		// nothing is focused in static output
		in = Input{Focus: -1}
	}
	m.surface.Begin(in)
	width := float64(m.opts.Width) * m.surface.CellWidth
	err := editor.Frame(f.win.state, m.surface, func(ui *editor.UI) error {
		if f.ui.ViewRows > 0 {
			ui.BeginScrollView(float64(f.ui.ViewRows) * m.surface.RowHeight)
			defer ui.EndScrollView()
		}
		return f.win.Draw(ui)
	}, editor.WithRouter(m.queue), editor.WithRegistry(m.opts.Registry), editor.WithLogger(m.log), editor.WithWidth(width))
	if err != nil {
		return err
	}
	f.ui = state.SetFocusables(f.ui, m.surface.Focusables())
	f.ui = state.KeepVisible(f.ui, m.surface.FocusRow())
	f.ui.Pending = f.win.state.Cache.Len()
	f.ui.Blocked = f.win.state.Error
	return nil
}

// step runs an input pass on the active window, opens and closes windows
// requested by it, then settles with a pass without input so the frame
// shows the post-input state.
func (m *model) step(in Input) {
	if err := m.pass(m.top(), in); err != nil {
		m.fail(err)
		return
	}
	m.drain()
	m.closeFinished()

	if err := m.pass(m.top(), Input{}); err != nil {
		m.fail(err)
		return
	}
	m.frame = m.surface.Render(m.top().ui.ScrollV)
	m.snapshot()
}

func (m *model) drain() {
	for {
		req, ok := m.queue.Next()
		if !ok {
			return
		}
		se, ok := m.editors[req.Editor]
		if !ok {
			m.log.Warn("no sub-editor", "editor", req.Editor, "member", req.Member)
			m.top().ui = state.SetNotice(m.top().ui, fmt.Sprintf("No editor for %q", req.Editor))
			continue
		}
		w, err := se(req)
		if err != nil {
			m.log.Warn("sub-editor refused", "editor", req.Editor, "member", req.Member, "err", err)
			m.top().ui = state.SetNotice(m.top().ui, err.Error())
			continue
		}
		m.log.Debug("sub-editor opened", "editor", req.Editor, "member", req.Member)
		m.push(w)
	}
}

func (m *model) closeFinished() {
	for len(m.stack) > 1 && m.top().win.closed {
		m.stack = m.stack[:len(m.stack)-1]
		m.surface.Reset()
	}
}

func (m *model) fail(err error) {
	m.err = err
	m.log.Error("render pass failed", "err", err)
	var se *editor.SchemaError
	if errors.As(err, &se) {
		m.top().ui = state.SetNotice(m.top().ui, se.Error())
	}
}

func (m *model) snapshot() {
	if m.opts.Snapshot == nil {
		return
	}
	cur, err := m.opts.Snapshot()
	if err != nil {
		m.log.Warn("snapshot failed", "err", err)
		return
	}
	m.current = cur
	root := m.stack[0]
	root.ui.Edited = m.current != m.saved
}

func (m *model) Init() tea.Cmd { return nil }

// Update handles all TUI interactions.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.opts.Width, m.opts.Height = msg.Width, msg.Height
		for _, f := range m.stack {
			f.ui = state.Resize(f.ui, msg.Width, msg.Height)
		}
		m.relayout()
		m.step(Input{})

	case tea.KeyMsg:
		if m.err != nil {
			return m, tea.Quit
		}
		if cmd, handled := m.handleKey(msg); handled {
			if m.err != nil {
				return m, tea.Quit
			}
			return m, cmd
		}
	}
	if m.err != nil {
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) relayout() {
	rows := m.viewRows()
	for _, f := range m.stack {
		f.ui.ViewRows = rows
	}
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	f := m.top()
	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}

	if f.ui.Mode == state.INSERT {
		switch {
		case msg.String() == "esc", msg.String() == "enter":
			f.ui = state.ToggleMode(f.ui)
			m.step(Input{})
		case msg.String() == "tab":
			f.ui = state.FocusNext(f.ui)
			m.step(Input{})
		case msg.String() == "shift+tab":
			f.ui = state.FocusPrev(f.ui)
			m.step(Input{})
		default:
			k := msg
			m.step(Input{Key: &k})
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		f.ui = state.ToggleHelp(f.ui)
	case f.ui.ShowHelp:
		// any other key closes the overlay
		f.ui = state.ToggleHelp(f.ui)
	case key.Matches(msg, m.keys.Next):
		f.ui = state.FocusNext(f.ui)
		m.step(Input{})
	case key.Matches(msg, m.keys.Prev):
		f.ui = state.FocusPrev(f.ui)
		m.step(Input{})
	case key.Matches(msg, m.keys.Insert):
		if m.surface.FocusKind() == "text" {
			f.ui = state.ToggleMode(f.ui)
			m.step(Input{})
		}
	case key.Matches(msg, m.keys.Activate):
		if m.surface.FocusKind() == "text" && msg.String() == "enter" {
			f.ui = state.ToggleMode(f.ui)
			m.step(Input{})
			break
		}
		m.step(Input{Activate: true})
	case key.Matches(msg, m.keys.Back):
		if len(m.stack) > 1 {
			f.win.Close()
			m.closeFinished()
			m.step(Input{})
		}
	case key.Matches(msg, m.keys.Diff):
		f.ui = state.ToggleDiff(f.ui)
		m.relayout()
		m.step(Input{})
	case key.Matches(msg, m.keys.View):
		f.ui = state.ToggleView(f.ui)
	case key.Matches(msg, m.keys.Copy):
		m.copySnapshot()
	case key.Matches(msg, m.keys.Save):
		m.save()
	default:
		return nil, false
	}
	return nil, true
}

func (m *model) copySnapshot() {
	f := m.top()
	if err := clipboard.WriteAll(m.current); err != nil {
		m.log.Warn("clipboard unavailable", "err", err)
		f.ui = state.SetNotice(f.ui, "Clipboard unavailable")
		return
	}
	f.ui = state.SetNotice(f.ui, "Copied document")
}

func (m *model) save() {
	f := m.top()
	if err := m.opts.Save(); err != nil {
		m.log.Error("save failed", "err", err)
		f.ui = state.SetNotice(f.ui, "Save failed: "+err.Error())
		return
	}
	m.snapshot()
	m.saved = m.current
	m.stack[0].ui.Edited = false
	m.log.Info("saved document")
	f.ui = state.SetNotice(f.ui, "Saved")
}

func (m *model) View() string {
	f := m.top()
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title()) + "\n")

	root := m.stack[0].ui
	tags := util.ComputeTags(root.Edited, f.ui.Pending, f.ui.Blocked, len(m.stack)-1)
	status := statusbar.NewStatusBar().View(f.ui, "")
	if chips := tagchips.View(tags, m.noColor); chips != "" {
		status += "  " + chips
	}
	b.WriteString(faintStyle.Render(status) + "\n")

	if f.ui.ShowHelp {
		b.WriteString("\n" + helpoverlay.NewHelpOverlay().View(f.ui, m.keys.sections()))
		return b.String()
	}

	b.WriteString("\n" + m.frame + "\n")
	b.WriteString(inputline.NewInputLine().View(f.ui, m.surface.FocusKind(), m.surface.FocusText()))
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()) + "\n")
	}
	if f.ui.ShowDiff {
		b.WriteString("\n" + diff.NewDiffView().View(f.ui, m.saved, m.current))
	}
	return b.String()
}
