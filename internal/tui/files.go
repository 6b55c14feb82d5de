package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"propedit/internal/editor"
)

const maxSuggestions = 8

type filePicker struct {
	path    string
	last    string
	suggest []string
}

// fileEditor edits a path-like string member with directory suggestions.
func fileEditor(req editor.EditRequest) (*Window, error) {
	if req.Type.Kind() != reflect.String {
		return nil, fmt.Errorf("%s: %w", req.Type, editor.ErrUnsupported)
	}
	fp := &filePicker{path: reflect.ValueOf(req.Value).String()}
	w := &Window{Title: req.Member}
	w.Draw = func(ui *editor.UI) error {
		ui.Label("Path")
		ui.SameLine()
		editor.TextField(ui, fp.path, func(v string) { fp.path = v }, editor.Column(editor.RightColumn, ui.Width-editor.RightColumn-20))

		fp.computeSuggestions()
		for _, s := range fp.suggest {
			s := s
			ui.Button(s, func() { fp.path = s }, editor.Column(editor.LeftColumn+20, ui.Width-60))
		}
		ui.Separator(0)
		ui.Button("Cancel", w.Close)

		var err error
		ui.DependencyButton("Apply", "Path not found", func() {
			v := reflect.ValueOf(fp.path).Convert(req.Type)
			err = req.Complete(v.Interface())
			w.Close()
		}, fp.exists)
		return err
	}
	return w, nil
}

// exists reports whether the path can be applied. An empty path clears the
// member.
func (fp *filePicker) exists() bool {
	if strings.TrimSpace(fp.path) == "" {
		return true
	}
	_, err := os.Stat(expandPath(fp.path))
	return err == nil
}

func (fp *filePicker) computeSuggestions() {
	if fp.path == fp.last && fp.suggest != nil {
		return
	}
	fp.last = fp.path
	fp.suggest = suggestPaths(fp.path, maxSuggestions)
}

// suggestPaths lists directory entries matching the last element of in.
func suggestPaths(in string, limit int) []string {
	if strings.TrimSpace(in) == "" {
		return []string{}
	}
	expanded := in
	if strings.HasPrefix(in, "~") {
		expanded = expandPath(in)
	}
	dir := expanded
	base := ""
	if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() {
		dir = filepath.Dir(expanded)
		base = filepath.Base(expanded)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}
	out := []string{}
	home, _ := os.UserHomeDir()
	for _, e := range entries {
		name := e.Name()
		if base != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		cand := filepath.Join(dir, name)
		if home != "" && strings.HasPrefix(cand, home) {
			cand = "~" + strings.TrimPrefix(cand, home)
		}
		out = append(out, cand)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}
