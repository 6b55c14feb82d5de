// Package document loads and saves edited targets as TOML or JSON files.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Format is a document encoding.
type Format string

const (
	TOML Format = "toml"
	JSON Format = "json"
)

// ErrUnknownFormat is returned for paths without a supported extension.
var ErrUnknownFormat = errors.New("unknown document format")

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load decodes the file at path into v, which must be a pointer.
func Load(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	switch f {
	case TOML:
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse document TOML: %w", err)
		}
	case JSON:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse document JSON: %w", err)
		}
	}
	return nil
}

// Encode serializes v in format f.
func Encode(f Format, v any) ([]byte, error) {
	switch f {
	case TOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode document TOML: %w", err)
		}
		return buf.Bytes(), nil
	case JSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode document JSON: %w", err)
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
}

// Save writes v to path, replacing the file atomically.
func Save(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, v)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create document dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// Snapshot returns the TOML text of v, used to diff and copy documents.
func Snapshot(v any) (string, error) {
	data, err := Encode(TOML, v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
