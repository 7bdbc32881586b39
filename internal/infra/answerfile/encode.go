// Package answerfile writes finalized answers for the template renderer.
// Every format keeps the catalog's declaration order.
package answerfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/git-scaffold/internal/domain"
	"gopkg.in/yaml.v3"
)

// ParseFormat returns the canonical name of format.
// An empty format means TOML.
func ParseFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", domain.FormatTOML:
		return domain.FormatTOML, nil
	case domain.FormatYAML, "yml":
		return domain.FormatYAML, nil
	case domain.FormatJSON:
		return domain.FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

// Encode renders answers in the given format.
func Encode(answers *domain.Answers, format string) ([]byte, error) {
	name, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch name {
	case domain.FormatYAML:
		return encodeYAML(answers)
	case domain.FormatJSON:
		return encodeJSON(answers)
	default:
		return encodeTOML(answers)
	}
}

// Write encodes answers to w.
func Write(w io.Writer, answers *domain.Answers, format string) error {
	content, err := Encode(answers, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("write answers: %w", err)
	}
	return nil
}

// WriteFile encodes answers to path, replacing it atomically.
func WriteFile(path string, answers *domain.Answers, format string) error {
	content, err := Encode(answers, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return writeAtomic(path, content, 0o644)
}

// FormatFromPath infers the format from a file extension.
// It returns fallback for unknown or missing extensions.
func FormatFromPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return domain.FormatTOML
	case ".yaml", ".yml":
		return domain.FormatYAML
	case ".json":
		return domain.FormatJSON
	default:
		return fallback
	}
}

// encodeTOML marshals one key at a time; go-toml sorts map keys.
func encodeTOML(answers *domain.Answers) ([]byte, error) {
	var buf bytes.Buffer
	for _, k := range answers.Keys() {
		line, err := toml.Marshal(map[string]string{k: answers.Value(k)})
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", k, err)
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}

func encodeYAML(answers *domain.Answers) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range answers.Keys() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: answers.Value(k)},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeJSON writes the object by hand; encoding/json sorts map keys.
func encodeJSON(answers *domain.Answers) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, k := range answers.Keys() {
		if i > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", k, err)
		}
		value, err := json.Marshal(answers.Value(k))
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", k, err)
		}
		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	if answers.Len() > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
