package fs

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/markterm"
)

// Expand returns the files named by pattern. A path that exists, or that
// has no glob metacharacters, is returned as is so that Read reports on it
// directly. Otherwise the pattern is matched with ** support and only
// regular files are returned, sorted.
func Expand(pattern string) ([]string, error) {
	if !hasMeta(pattern) {
		return []string{pattern}, nil
	}
	if _, err := os.Lstat(pattern); err == nil {
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, markterm.ErrValidation)
		}
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no files match %s", markterm.ErrNotFound, pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
