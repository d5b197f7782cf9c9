// Package term inspects the output terminal: whether it is one, how wide it
// is, how many colors it takes and whether its background is dark.
package term

import (
	"io"
	"strconv"
	"strings"

	xterm "github.com/charmbracelet/x/term"
	"github.com/fwojciec/markterm"
	"github.com/muesli/termenv"
)

// Info describes an output stream.
type Info struct {
	TTY   bool
	Width int // 0 when unknown
	Color markterm.ColorMode
}

type fder interface {
	Fd() uintptr
}

// Inspect reports on w. Writers that are not terminals have TTY false and,
// unless CLICOLOR_FORCE says otherwise, ColorNone. NO_COLOR is honored.
func Inspect(w io.Writer) Info {
	var info Info
	if f, ok := w.(fder); ok && xterm.IsTerminal(f.Fd()) {
		info.TTY = true
		if width, _, err := xterm.GetSize(f.Fd()); err == nil {
			info.Width = width
		}
	}
	info.Color = colorMode(termenv.NewOutput(w).EnvColorProfile())
	return info
}

// DarkBackground reports whether the terminal behind w has a dark
// background. It queries the terminal, so call it only for a TTY.
func DarkBackground(w io.Writer) bool {
	return termenv.NewOutput(w).HasDarkBackground()
}

// Width resolves the wrap width used when --wrap is unset: a positive
// COLUMNS value, then the terminal width, then markterm.DefaultWidth.
func Width(info Info, getenv func(string) string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(getenv("COLUMNS"))); err == nil && n > 0 {
		return n
	}
	if info.Width > 0 {
		return info.Width
	}
	return markterm.DefaultWidth
}

func colorMode(p termenv.Profile) markterm.ColorMode {
	switch p {
	case termenv.TrueColor:
		return markterm.ColorTrueColor
	case termenv.ANSI256:
		return markterm.ColorANSI256
	case termenv.ANSI:
		return markterm.ColorANSI
	default:
		return markterm.ColorNone
	}
}
