package markterm

import "fmt"

// Validate checks the option values that can be rejected before any I/O.
// Theme is intentionally not checked here: it is passed through to the
// highlighting layer as given.
func (o Options) Validate() error {
	if o.Path == "" {
		return fmt.Errorf("file path is required: %w", ErrValidation)
	}
	if o.Wrap != nil && *o.Wrap <= 0 {
		return fmt.Errorf("--wrap must be a positive integer, got %d: %w", *o.Wrap, ErrValidation)
	}
	return nil
}
