package members

import (
	"strings"
	"testing"

	"propedit/internal/editor"
)

type lander struct {
	Name string
	Tint editor.Color
}

func TestListIntegration(t *testing.T) {
	ms, err := editor.NewRegistry().Members(&lander{})
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	out := List(ms, true)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "MEMBER") {
		t.Fatalf("missing header: %q", lines[0])
	}
	if lines[1] != "Name    string      -" || lines[2] != "Tint    color       color" {
		t.Fatalf("unexpected rows %q", lines[1:])
	}
}
