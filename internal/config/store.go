package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"
)

// DefaultSearchPaths are tried after any explicitly requested files.
var DefaultSearchPaths = []string{"./.foolaunch", "~/.foolaunch", "/etc/foolaunch"}

// Document maps profile names to profile bodies. It is never mutated after load.
type Document map[string]any

// SkippedCandidate records a search path entry that could not be used.
type SkippedCandidate struct {
	Path string
	Err  error
}

// LoadResult is the outcome of a document search.
type LoadResult struct {
	Document Document
	// Source is the file the document was read from, empty if none was usable.
	Source  string
	Skipped []SkippedCandidate
}

// Found reports whether any candidate file was loaded.
func (r LoadResult) Found() bool {
	return r.Source != ""
}

// SearchPaths returns the explicit paths followed by DefaultSearchPaths.
func SearchPaths(explicit ...string) []string {
	paths := make([]string, 0, len(explicit)+len(DefaultSearchPaths))
	paths = append(paths, explicit...)
	return append(paths, DefaultSearchPaths...)
}

// LoadDocument reads the first candidate that can be read and parsed as a
// profile document. Candidates that are missing, unreadable or malformed are
// recorded in Skipped and the search moves on. When nothing is usable the
// result carries an empty document.
func LoadDocument(paths ...string) LoadResult {
	var result LoadResult
	for _, path := range paths {
		doc, err := readDocument(path)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedCandidate{Path: path, Err: err})
			continue
		}
		result.Document = doc
		result.Source = path
		return result
	}
	result.Document = Document{}
	return result
}

func readDocument(path string) (Document, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseDocument(data)
}

// ParseDocument parses a JSON (or YAML) profile document. The top level must
// be an object.
func ParseDocument(data []byte) (Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to parse config: top level is %T, want object", raw)
	}
	return Document(doc), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
