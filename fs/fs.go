// Package fs reads Markdown sources from the filesystem: path resolution,
// glob expansion, bounded reads with encoding fallback, and sanitizing.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve expands a leading ~ to the user's home directory and returns an
// absolute, cleaned path.
func Resolve(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	return abs, nil
}
