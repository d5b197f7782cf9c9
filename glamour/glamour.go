// Package glamour renders Markdown to ANSI-styled terminal output using
// charmbracelet/glamour, with fenced code highlighted by a chroma theme.
package glamour

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/fwojciec/markterm"
	"github.com/muesli/termenv"
)

var _ markterm.Renderer = (*Renderer)(nil)

// Renderer implements markterm.Renderer. The zero value is ready to use.
type Renderer struct{}

// New returns a Renderer.
func New() *Renderer { return &Renderer{} }

// Render renders source with the base style opts.Style, wrapped at
// opts.Width. Fenced code is highlighted with opts.Theme unless the output
// carries no color.
func (r *Renderer) Render(source string, opts markterm.RenderOptions) (string, error) {
	theme := opts.Theme
	if opts.Color == markterm.ColorNone {
		theme = ""
	}
	cfg, err := StyleConfig(opts.Style, theme)
	if err != nil {
		return "", err
	}
	width := opts.Width
	if width <= 0 {
		width = markterm.DefaultWidth
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(cfg),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(profile(opts.Color)),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := tr.Render(source)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return out, nil
}

// StyleConfig returns a copy of the named base style whose fenced code
// blocks are highlighted with theme. An empty theme disables highlighting.
// Styles that never highlight (notty, ascii) are returned unchanged.
func StyleConfig(name, theme string) (ansi.StyleConfig, error) {
	base, ok := styles.DefaultStyles[name]
	if !ok {
		return ansi.StyleConfig{}, fmt.Errorf("unknown style %q (available: %s): %w",
			name, strings.Join(StyleNames(), ", "), markterm.ErrValidation)
	}
	cfg := *base
	if cfg.CodeBlock.Chroma == nil && cfg.CodeBlock.Theme == "" {
		return cfg, nil
	}
	// A custom Chroma palette takes precedence over Theme in glamour.
	cfg.CodeBlock.Chroma = nil
	cfg.CodeBlock.Theme = theme
	return cfg, nil
}

// StyleNames returns the base styles accepted by --style, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles.DefaultStyles)+1)
	names = append(names, markterm.StyleAuto)
	for name := range styles.DefaultStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func profile(c markterm.ColorMode) termenv.Profile {
	switch c {
	case markterm.ColorANSI:
		return termenv.ANSI
	case markterm.ColorANSI256:
		return termenv.ANSI256
	case markterm.ColorTrueColor:
		return termenv.TrueColor
	default:
		return termenv.Ascii
	}
}
