package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/markterm"
	"github.com/fwojciec/markterm/term"
	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w at the named level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, markterm.ErrValidation)
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !term.Inspect(w).TTY,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(lvl), nil
}
