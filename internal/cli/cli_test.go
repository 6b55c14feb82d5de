package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"propedit/internal/scene"
)

// executeCommand runs a fresh command tree with args and returns the
// captured output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeApp(t, args...)
	return out, err
}

func executeApp(t *testing.T, args ...string) (string, *app, error) {
	t.Helper()
	root, a := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := a.run(root)
	return buf.String(), a, err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("NO_COLOR", "1")
	return dir
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCmd()
	have := map[string]bool{}
	for _, c := range root.Commands() {
		have[c.Name()] = true
	}
	for _, name := range []string{"edit", "show", "init", "version"} {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "propedit "+Version+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestInitWritesSampleAndRefusesOverwrite(t *testing.T) {
	dir := isolate(t)
	out, err := executeCommand(t, "init", "kerbin.json")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Wrote kerbin.json") {
		t.Fatalf("unexpected output %q", out)
	}
	b, err := scene.Load(filepath.Join(dir, "kerbin.json"))
	if err != nil || b.Name != scene.Sample().Name {
		t.Fatalf("expected sample body, got %+v %v", b, err)
	}
	if _, err := executeCommand(t, "init", "kerbin.json"); err == nil {
		t.Fatalf("expected refusal without --force")
	}
	if _, err := executeCommand(t, "init", "kerbin.json", "--force"); err != nil {
		t.Fatalf("expected overwrite with --force, got %v", err)
	}
}

func TestInitWriteConfig(t *testing.T) {
	dir := isolate(t)
	if _, err := executeCommand(t, "init", "--write-config"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "xdg", "propedit", "config.toml")); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "body.toml")); err != nil {
		t.Fatalf("expected default document: %v", err)
	}
}

func TestShowRendersForm(t *testing.T) {
	isolate(t)
	if _, err := executeCommand(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	out, err := executeCommand(t, "show", "body.toml")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Remove atmosphere", "Name", "Kerbin", "Position", "[ Edit ]", "Derive gravity"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in form:\n%s", want, out)
		}
	}
}

func TestShowMembers(t *testing.T) {
	isolate(t)
	if _, err := executeCommand(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	out, err := executeCommand(t, "show", "--members", "body.toml")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Texture") || !strings.Contains(out, "file") {
		t.Fatalf("expected member table, got:\n%s", out)
	}
}

func TestShowMissingFile(t *testing.T) {
	isolate(t)
	if _, err := executeCommand(t, "show", "nope.toml"); err == nil {
		t.Fatalf("expected an error for a missing document")
	}
}

func TestLogFileFlag(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "logs", "propedit.log")
	if _, err := executeCommand(t, "--log-file", logPath, "--log-level", "debug", "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "wrote sample document") {
		t.Fatalf("expected log entry, got %q", data)
	}
}

func TestLogFileClosedWhenCommandFails(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "propedit.log")
	_, a, err := executeApp(t, "--log-file", logPath, "show", "missing.toml")
	if err == nil {
		t.Fatalf("expected show to fail for a missing file")
	}
	if !a.log.Closed() {
		t.Fatalf("expected the log file closed")
	}
	data, rerr := os.ReadFile(logPath)
	if rerr != nil {
		t.Fatalf("expected log file: %v", rerr)
	}
	if !strings.Contains(string(data), "command failed") || !strings.Contains(string(data), "missing.toml") {
		t.Fatalf("expected the failure logged, got %q", data)
	}
}
