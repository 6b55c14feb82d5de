package state

import "testing"

func TestToggleModeSetsNotice(t *testing.T) {
	s := UIState{Mode: CMD}
	s = ToggleMode(s)
	if s.Mode != INSERT || s.Notice == "" {
		t.Fatalf("expected INSERT mode and notice")
	}
	s = ToggleMode(s)
	if s.Mode != CMD || s.Notice == "" {
		t.Fatalf("expected CMD mode and notice")
	}
}

func TestToggleView(t *testing.T) {
	s := UIState{View: Unified}
	s = ToggleView(s)
	if s.View != SideBySide {
		t.Fatalf("expected SideBySide view")
	}
}

func TestTogglePanels(t *testing.T) {
	s := ToggleHelp(ToggleDiff(UIState{}))
	if !s.ShowDiff || !s.ShowHelp {
		t.Fatalf("expected diff and help shown")
	}
}

func TestResizeFallbackToUnified(t *testing.T) {
	s := UIState{View: SideBySide, MinCol: 20}
	s = Resize(s, 30, 10) // threshold = 2*20+3 = 43; 30 < 43 => unified
	if s.View != Unified {
		t.Fatalf("expected Unified after resize fallback")
	}
	if s.Notice == "" {
		t.Fatalf("expected fallback notice to be set")
	}
	if s.Height != 10 {
		t.Fatalf("expected height recorded")
	}
}

func TestFocusWraps(t *testing.T) {
	s := UIState{Focusables: 3, Focus: 2, Mode: INSERT}
	s = FocusNext(s)
	if s.Focus != 0 || s.Mode != CMD {
		t.Fatalf("expected wrap to 0 in CMD mode, got %d", s.Focus)
	}
	s = FocusPrev(s)
	if s.Focus != 2 {
		t.Fatalf("expected wrap back to 2, got %d", s.Focus)
	}
	s = FocusNext(UIState{})
	if s.Focus != 0 {
		t.Fatalf("expected focus to stay 0 without focusables")
	}
}

func TestSetFocusablesClamps(t *testing.T) {
	s := SetFocusables(UIState{Focus: 9}, 4)
	if s.Focus != 3 {
		t.Fatalf("expected clamp to 3, got %d", s.Focus)
	}
	s = SetFocusables(s, 0)
	if s.Focus != 0 {
		t.Fatalf("expected clamp to 0")
	}
}

func TestKeepVisible(t *testing.T) {
	s := UIState{ViewRows: 5}
	s = KeepVisible(s, 7)
	if s.ScrollV != 3 {
		t.Fatalf("expected scroll 3, got %d", s.ScrollV)
	}
	s = KeepVisible(s, 1)
	if s.ScrollV != 1 {
		t.Fatalf("expected scroll 1, got %d", s.ScrollV)
	}
	s = KeepVisible(s, 4)
	if s.ScrollV != 1 {
		t.Fatalf("expected scroll unchanged, got %d", s.ScrollV)
	}
}
