// Package chroma exposes the catalog of syntax-highlighting themes that can
// be named with --theme.
package chroma

import (
	"sort"

	"github.com/alecthomas/chroma/v2/styles"
)

// Names returns the registered theme names, sorted.
func Names() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

// Exists reports whether name is a registered theme. Unknown names are
// not an error for the renderer, which falls back to a default theme.
func Exists(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}
