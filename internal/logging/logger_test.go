package logging

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var out []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]any
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", sc.Text(), err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewLoggerWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "propedit.log")
	l, err := NewLogger(path, "debug")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	l.With("window", "Tint").Debug("sub-editor opened", "editor", "color")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e["msg"] != "sub-editor opened" || e["window"] != "Tint" || e["editor"] != "color" {
		t.Fatalf("unexpected entry %v", e)
	}
}

func TestLevelFiltersMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propedit.log")
	l, err := NewLogger(path, "warn")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown")
	_ = l.Close()
	entries := readEntries(t, path)
	if len(entries) != 1 || entries[0]["msg"] != "shown" {
		t.Fatalf("expected only the warning, got %v", entries)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	if err := NopLogger().Close(); err != nil {
		t.Fatalf("expected nop close, got %v", err)
	}
	l, err := NewLogger(filepath.Join(t.TempDir(), "x.log"), "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if l.Closed() {
		t.Fatalf("expected an open logger")
	}
	_ = l.Close()
	if !l.Closed() {
		t.Fatalf("expected the logger closed")
	}
	if err := l.Close(); err != nil {
		t.Fatalf("expected second close to be a no-op, got %v", err)
	}
}
