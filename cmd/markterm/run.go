package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fwojciec/markterm"
	bt "github.com/fwojciec/markterm/bubbletea"
	"github.com/fwojciec/markterm/chroma"
	"github.com/fwojciec/markterm/fs"
	"github.com/fwojciec/markterm/goldmark"
	"github.com/fwojciec/markterm/term"
	"github.com/rs/zerolog"
)

// document is one input file after reading and rendering.
type document struct {
	path     string
	source   string
	rendered string
}

// run validates opts, reads every file the path names, renders them with r
// and writes the result to stdout, or pages it when asked and stdout is a
// terminal.
func run(ctx context.Context, opts markterm.Options, r markterm.Renderer, stdout io.Writer, getenv func(string) string) error {
	log := zerolog.Ctx(ctx)

	if err := opts.Validate(); err != nil {
		return err
	}
	if !chroma.Exists(opts.Theme) {
		log.Warn().Str("theme", opts.Theme).Msg("unknown syntax theme, code blocks use the fallback theme")
	}

	path, err := fs.Resolve(opts.Path)
	if err != nil {
		return err
	}
	paths, err := fs.Expand(path)
	if err != nil {
		return err
	}

	info := term.Inspect(stdout)
	dark := false
	if info.TTY && (opts.Style == "" || opts.Style == markterm.StyleAuto) {
		dark = term.DarkBackground(stdout)
	}
	ropts := markterm.RenderOptions{
		Width: opts.WrapWidth(term.Width(info, getenv)),
		Theme: opts.Theme,
		Style: markterm.ResolveStyle(opts.Style, info.TTY, dark),
		Color: info.Color,
	}
	log.Debug().
		Int("width", ropts.Width).
		Str("style", ropts.Style).
		Str("theme", ropts.Theme).
		Stringer("color", ropts.Color).
		Bool("tty", info.TTY).
		Msg("resolved render options")

	docs := make([]document, 0, len(paths))
	for _, p := range paths {
		doc, err := renderFile(ctx, p, r, ropts)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	if opts.Pager && info.TTY {
		return page(ctx, docs)
	}
	for i, doc := range docs {
		if i > 0 {
			if _, err := io.WriteString(stdout, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(stdout, doc.rendered); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func renderFile(ctx context.Context, path string, r markterm.Renderer, opts markterm.RenderOptions) (document, error) {
	text, err := fs.Read(path, markterm.MaxFileSize)
	if err != nil {
		return document{}, err
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(text)).Msg("read file")

	source := fs.Sanitize(text)
	out, err := r.Render(source, opts)
	if err != nil {
		return document{}, fmt.Errorf("rendering markdown: %w", err)
	}
	return document{path: path, source: source, rendered: out}, nil
}

func page(ctx context.Context, docs []document) error {
	var rendered, sources []string
	for _, doc := range docs {
		rendered = append(rendered, doc.rendered)
		sources = append(sources, doc.source)
	}
	source := strings.Join(sources, "\n\n")

	title := goldmark.Title(source)
	if title == "" {
		title = filepath.Base(docs[0].path)
	}
	var headings []string
	for _, h := range goldmark.Headings(source) {
		headings = append(headings, h.Text)
	}

	m := bt.New(strings.Join(rendered, "\n"), title, headings, bt.NewStyles(markterm.DefaultPalette()))
	return bt.Run(ctx, m)
}
