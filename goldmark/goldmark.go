// Package goldmark extracts document structure from Markdown source using
// goldmark's parser. Rendering itself is done by the glamour package.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is an ATX or setext heading with its inline markup flattened.
type Heading struct {
	Level int
	Text  string
}

// Headings returns the document's headings in source order.
func Headings(source string) []Heading {
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  strings.TrimSpace(collectText(h, src)),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// Title returns the text of the first level-1 heading, or of the first
// heading of any level when there is none. Empty when the document has no
// headings.
func Title(source string) string {
	headings := Headings(source)
	for _, h := range headings {
		if h.Level == 1 && h.Text != "" {
			return h.Text
		}
	}
	for _, h := range headings {
		if h.Text != "" {
			return h.Text
		}
	}
	return ""
}

// collectText recursively collects the plain text of a node's inline children.
func collectText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		writeText(c, source, &buf)
	}
	return buf.String()
}

func writeText(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			buf.WriteByte(' ')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.AutoLink:
		buf.Write(n.URL(source))

	case *ast.RawHTML:
		// Tags carry no visible text.

	default:
		// Emphasis, code spans, links and image alt text: recurse.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			writeText(c, source, buf)
		}
	}
}
