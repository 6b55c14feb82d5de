package statusbar

import (
	"testing"

	"propedit/internal/tui/state"
)

func TestStatusBarComposesParts(t *testing.T) {
	out := NewStatusBar().View(state.UIState{Mode: state.INSERT, ScrollV: 2, Width: 80, Notice: "saved"}, "Body")
	if out != "[INSERT]  Body  V:2  W:80  saved" {
		t.Fatalf("unexpected status %q", out)
	}
}

func TestStatusBarShowsDiffView(t *testing.T) {
	out := NewStatusBar().View(state.UIState{ShowDiff: true, View: state.SideBySide}, "")
	if out != "[CMD]  Side-by-side  V:0  W:0" {
		t.Fatalf("unexpected status %q", out)
	}
}
