package main

import (
	"github.com/fwojciec/markterm"
	"github.com/spf13/cobra"
)

// config holds flag values. Defaults come from the environment, which is
// only read through the getenv function handed to loadConfig.
type config struct {
	wrap       int
	theme      string
	style      string
	pager      bool
	listThemes bool
	logLevel   string
}

func loadConfig(getenv func(string) string) *config {
	return &config{
		theme:    envOr(getenv, "MARKTERM_THEME", markterm.DefaultTheme),
		style:    envOr(getenv, "MARKTERM_STYLE", markterm.DefaultStyle),
		logLevel: envOr(getenv, "MARKTERM_LOG_LEVEL", "warn"),
	}
}

func (c *config) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&c.wrap, "wrap", 0, "fixed width to wrap content (defaults to terminal width)")
	f.StringVar(&c.theme, "theme", c.theme, "syntax highlighting theme for code blocks")
	f.StringVar(&c.style, "style", c.style, "base style: auto, dark, light, notty, ascii, dracula, pink, tokyo-night")
	f.BoolVar(&c.pager, "pager", false, "page the output when stdout is a terminal")
	f.BoolVar(&c.listThemes, "list-themes", false, "list syntax highlighting themes and exit")
	f.StringVar(&c.logLevel, "log-level", c.logLevel, "log level: debug, info, warn, error")
}

// options converts the parsed flags into markterm.Options. Wrap stays nil
// unless --wrap was given, so that zero can be reported as invalid.
func (c *config) options(cmd *cobra.Command, path string) markterm.Options {
	opts := markterm.Options{
		Path:  path,
		Theme: c.theme,
		Style: c.style,
		Pager: c.pager,
	}
	if cmd.Flags().Changed("wrap") {
		wrap := c.wrap
		opts.Wrap = &wrap
	}
	return opts
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
