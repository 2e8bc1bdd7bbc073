package jsondoc

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseFile reads an entire file and parses it as a JSON document.
func ParseFile(path string) (*Value, error) {
	data, err := readWholeFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ParseFileWithComments reads an entire file and parses it as a JSON
// document that may contain /* block */ and // line comments.
func ParseFileWithComments(path string) (*Value, error) {
	data, err := readWholeFile(path)
	if err != nil {
		return nil, err
	}
	return ParseWithComments(data)
}

// SerializeToFile serializes the value tree and writes it to the named
// file, replacing any existing contents.
func (v *Value) SerializeToFile(path string) error {
	out, err := v.Serialize()
	if err != nil {
		return err
	}
	if err := validateFilePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readWholeFile(path string) (string, error) {
	if err := validateFilePath(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// validateFilePath rejects obviously hostile paths before any I/O: NUL
// bytes, excessive length, and parent-directory traversal. Traversal is
// checked after Unicode NFC normalization so visually-confusable forms of
// ".." do not slip through.
func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("file path contains NUL byte")
	}
	if len(path) > maxFilePathLength {
		return fmt.Errorf("file path too long: %d > %d", len(path), maxFilePathLength)
	}
	if strings.Contains(norm.NFC.String(path), "..") {
		return fmt.Errorf("file path contains parent traversal")
	}
	return nil
}
