package inputline

import (
	"strings"
	"testing"

	"propedit/internal/tui/state"
)

func TestInputLineShowsBufferInInsertMode(t *testing.T) {
	v := NewInputLine()
	out := v.View(state.UIState{Mode: state.INSERT, Focus: 1, Focusables: 4}, "text", "12.5abc")
	if !strings.HasPrefix(out, "[INSERT]  Focus: 2/4  text\n") {
		t.Fatalf("unexpected header %q", out)
	}
	if !strings.Contains(out, "> 12.5abc") {
		t.Fatalf("expected buffer line, got %q", out)
	}
}

func TestInputLineHidesBufferInCmdMode(t *testing.T) {
	out := NewInputLine().View(state.UIState{}, "", "abc")
	if out != "[CMD]  Focus: -\n" {
		t.Fatalf("unexpected output %q", out)
	}
}
