package tui

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"propedit/internal/editor"
)

type assetPath string

type textured struct {
	Texture assetPath
}

func TestSuggestPaths(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	for _, name := range []string{"alpha.txt", "beta.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	got := suggestPaths(filepath.Join(dir, "AL"), 8)
	if len(got) != 1 || got[0] != filepath.Join(dir, "alpha.txt") {
		t.Fatalf("expected alpha only, got %v", got)
	}
	if got := suggestPaths(dir, 1); len(got) != 1 {
		t.Fatalf("expected the limit to apply, got %v", got)
	}
	if got := suggestPaths("  ", 8); len(got) != 0 {
		t.Fatalf("expected no suggestions for a blank path, got %v", got)
	}
}

func TestFileEditorGatesApplyOnExistingPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "kerbin.dds")
	if err := os.WriteFile(file, []byte("dds"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	reg := editor.NewRegistry()
	reg.Register(reflect.TypeOf(assetPath("")), editor.KindComposite, editor.EditorFile)
	tgt := &textured{}
	m := newTestModel(t, tgt, Options{Registry: reg})

	press(m, enter)
	if len(m.stack) != 2 {
		t.Fatalf("expected the file picker opened, stack=%d", len(m.stack))
	}
	press(m, enter, typed(filepath.Join(dir, "nope")), esc)
	if !m.top().ui.Blocked {
		t.Fatalf("expected apply blocked for a missing path")
	}

	press(m, enter, backspace, backspace, backspace, backspace, typed("kerbin.dds"), esc)
	if m.top().ui.Blocked {
		t.Fatalf("expected apply enabled for %s", file)
	}
	// apply is the last focusable
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, enter)
	if len(m.stack) != 1 {
		t.Fatalf("expected the picker closed, stack=%d", len(m.stack))
	}
	if tgt.Texture != assetPath(file) {
		t.Fatalf("expected texture %q, got %q", file, tgt.Texture)
	}
}

func TestFileEditorRejectsNonStrings(t *testing.T) {
	_, err := fileEditor(editor.EditRequest{Type: reflect.TypeOf(0), Value: 0})
	if err == nil {
		t.Fatalf("expected an error for a non-string member")
	}
}
