package tagchips

import (
	"testing"

	"propedit/internal/tui/state"
)

func TestNoColorFallback(t *testing.T) {
	out := View([]state.Tag{{Kind: state.EDITED}, {Kind: state.PENDING, Value: 2}, {Kind: state.BLOCKED}}, true)
	if out != "[Edited] [Pending 2] [Blocked]" {
		t.Fatalf("unexpected chips %q", out)
	}
}

func TestEmpty(t *testing.T) {
	if View(nil, false) != "" {
		t.Fatalf("expected empty output")
	}
}
