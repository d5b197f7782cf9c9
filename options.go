// Package markterm renders Markdown files as styled terminal output.
//
// The root package holds the domain types shared by the adapters: Options
// collected from the command line, RenderOptions handed to a Renderer, and
// the sentinel errors every layer wraps.
package markterm

const (
	// MaxFileSize is the largest input file accepted, in bytes.
	MaxFileSize int64 = 100 * 1024 * 1024

	// DefaultWidth is used when neither --wrap nor the terminal gives a width.
	DefaultWidth = 80
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitError   = 2
)

// Options carries the user's invocation settings.
type Options struct {
	Path  string // file path or glob pattern
	Wrap  *int   // nil = defer to terminal width
	Theme string // chroma theme for fenced code blocks
	Style string // glamour base style; DefaultStyle = auto-detect
	Pager bool   // page output when stdout is a terminal
}

// WrapWidth returns the configured wrap width, or fallback when unset.
func (o Options) WrapWidth(fallback int) int {
	if o.Wrap != nil {
		return *o.Wrap
	}
	if fallback <= 0 {
		return DefaultWidth
	}
	return fallback
}

// RenderOptions are the resolved settings passed to a Renderer.
type RenderOptions struct {
	Width int
	Theme string
	Style string // concrete style name, never StyleAuto
	Color ColorMode
}

// Renderer turns Markdown source into terminal output.
type Renderer interface {
	Render(source string, opts RenderOptions) (string, error)
}
