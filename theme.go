package markterm

// DefaultTheme is the syntax-highlighting theme for fenced code blocks.
const DefaultTheme = "monokai"

// Base style names understood by the renderer.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
	StyleASCII = "ascii"

	DefaultStyle = StyleAuto
)

// ColorMode describes how many colors the output can carry.
type ColorMode int

const (
	ColorNone      ColorMode = iota // Plain text, no escape sequences.
	ColorANSI                       // 16 colors.
	ColorANSI256                    // 256 colors.
	ColorTrueColor                  // 24-bit colors.
)

// String returns the lower-case name of the mode.
func (c ColorMode) String() string {
	switch c {
	case ColorANSI:
		return "ansi"
	case ColorANSI256:
		return "ansi256"
	case ColorTrueColor:
		return "truecolor"
	default:
		return "none"
	}
}

// ResolveStyle replaces StyleAuto with a concrete style for the output.
// Non-terminal output gets StyleNoTTY; terminals get dark or light to match
// their background. Explicit styles are returned unchanged.
func ResolveStyle(style string, tty, dark bool) string {
	if style != "" && style != StyleAuto {
		return style
	}
	switch {
	case !tty:
		return StyleNoTTY
	case dark:
		return StyleDark
	default:
		return StyleLight
	}
}

// Palette maps UI roles to ANSI color indices (0-15). The user's terminal
// theme determines the actual RGB values. It styles markterm's own chrome
// (pager status line, error messages), not the rendered document.
type Palette struct {
	Accent int // Pager title
	Muted  int // Pager status text
	Error  int // Error messages
}

// DefaultPalette returns the default ANSI color mapping.
func DefaultPalette() Palette {
	return Palette{
		Accent: 5,
		Muted:  8,
		Error:  1,
	}
}
