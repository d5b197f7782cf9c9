// Package mock provides test doubles for markterm interfaces using function fields.
package mock

import "github.com/fwojciec/markterm"

// Interface compliance checks.
var _ markterm.Renderer = (*Renderer)(nil)

// Renderer is a test double for markterm.Renderer.
// Set RenderFn before calling Render.
type Renderer struct {
	RenderFn func(source string, opts markterm.RenderOptions) (string, error)
}

// Render delegates to RenderFn.
func (r *Renderer) Render(source string, opts markterm.RenderOptions) (string, error) {
	return r.RenderFn(source, opts)
}
